/*
Package editor implements interactive authoring of a track's control points.

A Session is driven by synthetic pointer and keyboard input, independent of
any host event loop:

	Press/Release(Primary)    add a control point at the press location
	Press/Release(Secondary)  move the selected control point to the release location
	Delete                    remove the selected point, or the last one
	SelectNext/SelectPrev     cycle the point selection

Pointer positions are given in screen coordinates and converted to world
coordinates by a racetrack.WorldConverter collaborator.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"io"
	"slices"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

const noSelection = -1

// DefaultPoints returns the control points a fresh editor starts with: an
// arch which closes into a loop.
func DefaultPoints() []racetrack.Pair {
	return []racetrack.Pair{
		racetrack.P(-500, -200),
		racetrack.P(-250, 250),
		racetrack.P(250, 250),
		racetrack.P(500, -200),
	}
}

// Session holds the control points of one track under construction.
type Session struct {
	Name     string
	points   []racetrack.Pair
	selected int
	add      Gesture
	move     Gesture
	changed  bool
}

// NewSession creates a session editing a copy of points. A new session
// counts as changed.
func NewSession(name string, points []racetrack.Pair) *Session {
	return &Session{
		Name:     name,
		points:   slices.Clone(points),
		selected: noSelection,
		changed:  true,
	}
}

// FromTrack creates a session editing a copy of a track.
func FromTrack(t *catalog.Track) *Session {
	return NewSession(t.Name, t.Points)
}

// Points returns a copy of the current control points.
func (s *Session) Points() []racetrack.Pair {
	return slices.Clone(s.points)
}

// Len returns the number of control points.
func (s *Session) Len() int {
	return len(s.points)
}

// Selected returns the index of the selected control point, if any.
func (s *Session) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// ClearSelection unselects any control point.
func (s *Session) ClearSelection() {
	s.selected = noSelection
	s.move.Cancel()
}

// Pending returns the screen position of an add-gesture in progress.
func (s *Session) Pending() (racetrack.Pair, bool) {
	return s.add.Pressed()
}

// TakeChanged reports whether the points changed since the last call and
// resets the change flag.
func (s *Session) TakeChanged() bool {
	ch := s.changed
	s.changed = false
	return ch
}

// Press handles a button press at screen position pos. The secondary button
// is ignored without a selected point. It returns true if a gesture started.
func (s *Session) Press(b Button, pos racetrack.Pair) bool {
	switch b {
	case Primary:
		return s.add.Press(pos)
	case Secondary:
		if _, ok := s.Selected(); !ok {
			return false
		}
		return s.move.Press(pos)
	}
	return false
}

// Release handles a button release at screen position pos. Releasing the
// primary button appends a point at the world position of the preceding
// press, releasing the secondary button moves the selected point to the world
// position of the release. If conv cannot convert the position, the gesture
// is abandoned. Release returns true if the points changed.
func (s *Session) Release(b Button, pos racetrack.Pair, conv racetrack.WorldConverter) bool {
	switch b {
	case Primary:
		start, ok := s.add.Release()
		if !ok {
			return false
		}
		world, ok := conv.ToWorld(start)
		if !ok {
			tracer().Debugf("editor: press at %v is outside of the world", start)
			return false
		}
		s.points = append(s.points, world)
		s.changed = true
		return true
	case Secondary:
		if _, ok := s.move.Release(); !ok {
			return false
		}
		i, ok := s.Selected()
		if !ok {
			return false
		}
		world, ok := conv.ToWorld(pos)
		if !ok {
			tracer().Debugf("editor: release at %v is outside of the world", pos)
			return false
		}
		s.points[i] = world
		s.changed = true
		return true
	}
	return false
}

// Delete removes the selected point and clears the selection. Without a
// selection it removes the last point. It returns false if there was no
// point to remove.
func (s *Session) Delete() bool {
	if i, ok := s.Selected(); ok {
		s.points = slices.Delete(s.points, i, i+1)
		s.ClearSelection()
		s.changed = true
		return true
	}
	if len(s.points) == 0 {
		return false
	}
	s.points = s.points[:len(s.points)-1]
	s.changed = true
	return true
}

// SelectNext selects the next control point, wrapping around. Without a
// selection the first point is selected.
func (s *Session) SelectNext() (int, bool) {
	return s.cycle(+1)
}

// SelectPrev selects the previous control point, wrapping around. Without a
// selection the first point is selected.
func (s *Session) SelectPrev() (int, bool) {
	return s.cycle(-1)
}

func (s *Session) cycle(step int) (int, bool) {
	n := len(s.points)
	if n == 0 {
		return 0, false
	}
	if s.selected == noSelection {
		s.selected = 0
	} else {
		s.selected = (s.selected + step + n) % n
	}
	return s.selected, true
}

// Track returns the session's content as a track.
func (s *Session) Track() *catalog.Track {
	return catalog.NewTrack(s.Name, s.points)
}

// Commit copies the points to the selected track of a catalog. It returns
// false if the catalog has no selection.
func (s *Session) Commit(c *catalog.Catalog) bool {
	return c.UpdatePoints(s.points)
}

// Save writes the session as a single-track document.
func (s *Session) Save(w io.Writer) error {
	return s.Track().Save(w)
}

// SaveFile writes the session to a single-track document file.
func (s *Session) SaveFile(path string) error {
	return s.Track().SaveFile(path)
}

// Load replaces the points with those of a single-track document. The name
// of the session is not changed. Malformed input loads the seed path.
func (s *Session) Load(r io.Reader) {
	s.replace(catalog.LoadTrack(r).Points)
}

// LoadFile replaces the points with those of a single-track document file.
func (s *Session) LoadFile(path string) {
	s.replace(catalog.LoadTrackFile(path).Points)
}

func (s *Session) replace(points []racetrack.Pair) {
	s.points = points
	s.ClearSelection()
	s.add.Cancel()
	s.changed = true
}
