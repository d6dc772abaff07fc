/*
Package pipeline recomputes track geometry when its inputs change.

A Builder remembers the name and control points of the track on display.
Whenever they change, the next Tick runs the full chain

	control points → spline.Fit → boundary.Offsets → mesh.Regenerate

and the previously spawned scene parts are retired before the new ones are
inserted. Every run is a full recomputation; nothing is updated incrementally.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pipeline

import (
	"slices"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/boundary"
	"github.com/npillmayer/racetrack/mesh"
	"github.com/npillmayer/racetrack/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// Geometry is the result of one recomputation.
type Geometry struct {
	Track  string
	Points []racetrack.Pair
	Curve  *spline.Curve   // nil for fewer than 2 control points
	Pairs  []boundary.Pair // boundary pairs along Curve
	Ring   *mesh.Ring      // tessellated surface
}

// IsDegenerate is a predicate: is there no curve to display?
func (g *Geometry) IsDegenerate() bool {
	return g == nil || g.Curve == nil
}

// Builder drives the geometry chain for one displayed track.
type Builder struct {
	HalfWidth         float64 // half the track width
	SamplesPerSegment int     // boundary samples per curve segment

	scene   mesh.Scene
	track   string
	points  []racetrack.Pair
	built   string // track the scene holds parts for
	spawned bool
	dirty   bool
}

// NewBuilder creates a builder spawning into scene, with default width and
// resolution. If scene is nil, an in-memory mesh.Registry is used.
func NewBuilder(scene mesh.Scene) *Builder {
	if scene == nil {
		scene = mesh.NewRegistry()
	}
	return &Builder{
		HalfWidth:         boundary.DefaultHalfWidth,
		SamplesPerSegment: boundary.DefaultSamplesPerSegment,
		scene:             scene,
	}
}

// Scene returns the scene the builder spawns into.
func (b *Builder) Scene() mesh.Scene {
	return b.scene
}

// Set hands the builder the track to display. The builder becomes dirty only
// if name or points differ from the previous call.
func (b *Builder) Set(track string, points []racetrack.Pair) bool {
	if track == b.track && slices.Equal(points, b.points) {
		return false
	}
	b.track, b.points = track, slices.Clone(points)
	b.dirty = true
	return true
}

// MarkDirty forces a recomputation on the next Tick, e.g. after changing
// HalfWidth.
func (b *Builder) MarkDirty() {
	b.dirty = true
}

// IsDirty is a predicate: will the next Tick recompute?
func (b *Builder) IsDirty() bool {
	return b.dirty
}

// Tick recomputes the geometry if the builder is dirty. It returns false,
// and no geometry, if nothing changed.
func (b *Builder) Tick() (*Geometry, bool) {
	if !b.dirty {
		return nil, false
	}
	b.dirty = false
	if b.spawned && b.built != b.track {
		n := b.scene.Despawn(b.built)
		tracer().Debugf("pipeline: retired %d parts of track %q", n, b.built)
	}
	g := center(b.track, b.points, b.HalfWidth, b.SamplesPerSegment)
	g.Ring = mesh.Regenerate(b.scene, b.track, g.Pairs)
	b.built, b.spawned = b.track, true
	tracer().Infof("pipeline: track %q rebuilt with %d quads", b.track, g.Ring.N())
	return g, true
}

// Build runs the geometry chain for points without touching any scene.
func Build(track string, points []racetrack.Pair, halfWidth float64, samplesPerSegment int) *Geometry {
	g := center(track, points, halfWidth, samplesPerSegment)
	g.Ring = mesh.Tessellate(g.Pairs)
	return g
}

// center fits the curve and its boundary pairs.
func center(track string, points []racetrack.Pair, halfWidth float64, samplesPerSegment int) *Geometry {
	g := &Geometry{Track: track, Points: slices.Clone(points)}
	g.Curve = spline.Fit(points)
	res := boundary.Resolution(g.Curve, samplesPerSegment)
	g.Pairs = boundary.Offsets(g.Curve, res, halfWidth)
	return g
}
