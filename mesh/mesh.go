/*
Package mesh tessellates the boundary of a track into a closed ring of quads.

Every quad connects two consecutive boundary pairs i and j = (i+1) mod N:

	outer[j] ---- inner[j]
	   |      \      |
	outer[i] ---- inner[i]

Its four vertices are numbered outer[i]=0, inner[i]=1, outer[j]=2, inner[j]=3
and it is drawn as triangles (0,2,3) and (0,1,3). Each quad also yields a
convex collision hull outer[i], outer[j], inner[j], inner[i].

Rings are derived data. They are regenerated from scratch whenever a track
changes; Regenerate retires all parts of the previous ring from a Scene before
spawning the new ones.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mesh

import (
	"github.com/samber/lo"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/boundary"
	"github.com/npillmayer/racetrack/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// Gray is the vertex color of the track surface: a 50% sRGB gray, given as
// linear RGBA.
var Gray = [4]float32{0.214, 0.214, 0.214, 1}

// QuadIndices are the triangle indices of a quad, relative to its first vertex.
var QuadIndices = [6]uint32{0, 2, 3, 0, 1, 3}

// Quad is the piece of track surface between boundary pairs I and (I+1) mod N.
type Quad struct {
	I        int
	Vertices [4]racetrack.Pair // outer[i], inner[i], outer[j], inner[j]
}

// Triangles returns the two triangles of q.
func (q Quad) Triangles() [2][3]racetrack.Pair {
	v := q.Vertices
	return [2][3]racetrack.Pair{{v[0], v[2], v[3]}, {v[0], v[1], v[3]}}
}

// Hull returns the collision hull of q. The vertex order walks around the
// quad, which gives a convex polygon for reasonably smooth tracks.
func (q Quad) Hull() *polygon.Polygon {
	v := q.Vertices
	return polygon.NullPolygon().Knot(v[0]).Knot(v[2]).Knot(v[3]).Knot(v[1]).Cycle()
}

// Ring is the tessellated surface of a track. Positions, Colors and Indices
// are flat buffers for a render collaborator, Hulls are for physics.
type Ring struct {
	Quads     []Quad
	Hulls     []*polygon.Polygon
	Positions [][3]float32
	Colors    [][4]float32
	Indices   []uint32
}

// Tessellate builds the ring of quads for a cyclic sequence of boundary
// pairs. No boundary pairs yield an empty ring.
func Tessellate(pairs []boundary.Pair) *Ring {
	n := len(pairs)
	ring := &Ring{
		Quads:     make([]Quad, 0, n),
		Hulls:     make([]*polygon.Polygon, 0, n),
		Positions: make([][3]float32, 0, 4*n),
		Colors:    make([][4]float32, 0, 4*n),
		Indices:   make([]uint32, 0, 6*n),
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		q := Quad{I: i, Vertices: [4]racetrack.Pair{
			pairs[i].Outer, pairs[i].Inner, pairs[j].Outer, pairs[j].Inner,
		}}
		base := uint32(len(ring.Positions))
		ring.Quads = append(ring.Quads, q)
		ring.Hulls = append(ring.Hulls, q.Hull())
		ring.Positions = append(ring.Positions, lo.Map(q.Vertices[:], func(p racetrack.Pair, _ int) [3]float32 {
			return [3]float32{float32(p.X()), float32(p.Y()), 0}
		})...)
		ring.Colors = append(ring.Colors, Gray, Gray, Gray, Gray)
		ring.Indices = append(ring.Indices, lo.Map(QuadIndices[:], func(k uint32, _ int) uint32 {
			return base + k
		})...)
	}
	tracer().Debugf("tessellated ring of %d quads", n)
	return ring
}

// N returns the number of quads.
func (r *Ring) N() int {
	return len(r.Quads)
}

// TriangleCount returns the number of triangles in the index buffer.
func (r *Ring) TriangleCount() int {
	return len(r.Indices) / 3
}

// IsEmpty returns true if the ring has no geometry.
func (r *Ring) IsEmpty() bool {
	return len(r.Quads) == 0
}

// Contains is a predicate: is p on the track surface?
func (r *Ring) Contains(p racetrack.Pair) bool {
	return lo.SomeBy(r.Hulls, func(h *polygon.Polygon) bool {
		return h.Contains(p)
	})
}

// BoundingBox returns the corners of the box enclosing all of the ring's
// hulls. It returns false for an empty ring.
func (r *Ring) BoundingBox() (racetrack.Pair, racetrack.Pair, bool) {
	return polygon.Bounds(r.Hulls)
}
