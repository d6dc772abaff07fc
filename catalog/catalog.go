/*
Package catalog manages a collection of named race tracks.

A catalog is an ordered list of tracks plus an optional selection. The
selection is a small state machine with states Empty (no track selected) and
Selected(i):

	CreateTrack, Store        → Selected(index of the track)
	DeleteSelected            → Empty
	Advance, Retreat          → Selected(i ± 1, wrapping); from Empty → Selected(0)

Whenever a selection is present it is a valid index into the list of tracks.
Catalogs are persisted as JSON documents with file extension ".tracks".

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catalog

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

const noSelection = -1

// Track is a named race track, defined by an ordered list of control points.
// The order of the points defines the direction of travel.
type Track struct {
	Name   string
	Points []racetrack.Pair
}

// SeedPoints returns the two-point path new tracks start with.
func SeedPoints() []racetrack.Pair {
	return []racetrack.Pair{racetrack.P(-500, -200), racetrack.P(-500, -150)}
}

// NewTrack creates a track with a copy of points.
func NewTrack(name string, points []racetrack.Pair) *Track {
	return &Track{Name: name, Points: slices.Clone(points)}
}

// Clone returns a deep copy of t.
func (t *Track) Clone() *Track {
	return NewTrack(t.Name, t.Points)
}

// Catalog is an ordered collection of tracks with an optional selection.
// The zero value is not usable, use New or Default.
type Catalog struct {
	tracks  []*Track
	current int // index of selected track or noSelection
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{current: noSelection}
}

// Default creates a catalog holding a single seed track, which is selected.
func Default() *Catalog {
	c := New()
	c.CreateTrack()
	return c
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Index returns the index of the selected track, if any.
func (c *Catalog) Index() (int, bool) {
	if c.current == noSelection {
		return 0, false
	}
	return c.current, true
}

// Selected returns a copy of the selected track, if any. Clients change the
// points of the selected track with UpdatePoints.
func (c *Catalog) Selected() (*Track, bool) {
	if c.current == noSelection {
		return nil, false
	}
	return c.tracks[c.current].Clone(), true
}

// Tracks returns copies of all tracks, in order.
func (c *Catalog) Tracks() []*Track {
	return lo.Map(c.tracks, func(t *Track, _ int) *Track { return t.Clone() })
}

// Names returns the names of all tracks, in order.
func (c *Catalog) Names() []string {
	return lo.Map(c.tracks, func(t *Track, _ int) string { return t.Name })
}

func (c *Catalog) indexOf(name string) int {
	return slices.IndexFunc(c.tracks, func(t *Track) bool { return t.Name == name })
}

// CreateTrack appends a new track with the seed path and selects it. The
// track is named "Track n", where n is the new track count, increased until
// the name is unique.
func (c *Catalog) CreateTrack() *Track {
	n := len(c.tracks) + 1
	name := fmt.Sprintf("Track %d", n)
	for c.indexOf(name) >= 0 {
		n++
		name = fmt.Sprintf("Track %d", n)
	}
	return c.Store(NewTrack(name, SeedPoints()))
}

// Store inserts a copy of track and selects it. Unlike a plain ordered list,
// a track with the same name is replaced in place, keeping its position;
// otherwise the track is appended. A nil track is ignored.
// Store returns a copy of the stored track.
func (c *Catalog) Store(track *Track) *Track {
	if track == nil {
		tracer().Errorf("catalog: refusing to store nil track")
		return nil
	}
	track = track.Clone()
	if i := c.indexOf(track.Name); i >= 0 {
		c.tracks[i] = track
		c.current = i
		tracer().Debugf("catalog: replaced track %q at %d", track.Name, i)
		return track.Clone()
	}
	c.tracks = append(c.tracks, track)
	c.current = len(c.tracks) - 1
	tracer().Debugf("catalog: appended track %q at %d", track.Name, c.current)
	return track.Clone()
}

// Select selects the track with the given name. It returns false if there
// is no such track; the selection is unchanged in this case.
func (c *Catalog) Select(name string) bool {
	i := c.indexOf(name)
	if i < 0 {
		return false
	}
	c.current = i
	return true
}

// DeleteSelected removes the selected track. Afterwards nothing is selected,
// there is no automatic selection of a neighbouring track.
// It returns the removed track, if any.
func (c *Catalog) DeleteSelected() (*Track, bool) {
	if c.current == noSelection {
		return nil, false
	}
	t := c.tracks[c.current]
	c.tracks = slices.Delete(c.tracks, c.current, c.current+1)
	c.current = noSelection
	tracer().Debugf("catalog: deleted track %q", t.Name)
	return t, true
}

// Advance selects the next track, wrapping around at the end. Without a
// selection the first track is selected. For an empty catalog Advance is a
// no-op and returns false.
func (c *Catalog) Advance() (*Track, bool) {
	if len(c.tracks) == 0 {
		return nil, false
	}
	if c.current == noSelection {
		c.current = 0
	} else {
		c.current = (c.current + 1) % len(c.tracks)
	}
	return c.tracks[c.current].Clone(), true
}

// Retreat selects the previous track, wrapping around at the start. Without
// a selection the first track is selected. For an empty catalog Retreat is a
// no-op and returns false.
func (c *Catalog) Retreat() (*Track, bool) {
	if len(c.tracks) == 0 {
		return nil, false
	}
	if c.current == noSelection {
		c.current = 0
	} else {
		c.current = (c.current - 1 + len(c.tracks)) % len(c.tracks)
	}
	return c.tracks[c.current].Clone(), true
}

// UpdatePoints replaces the points of the selected track with a copy of
// points. Without a selection it does nothing and returns false.
func (c *Catalog) UpdatePoints(points []racetrack.Pair) bool {
	if c.current == noSelection {
		return false
	}
	c.tracks[c.current].Points = slices.Clone(points)
	return true
}
