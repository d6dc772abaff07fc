/*
Package polygon implements closed polygons, as used for the collision hulls
of track quads.

Polygons are built with a small builder API

	pg := NullPolygon().Knot(racetrack.P(0, 0)).Knot(racetrack.P(1, 3)).Knot(racetrack.P(3, 0)).Cycle()

Predicates and bounding boxes are delegated to package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'racetrack'.
func L() tracing.Trace {
	return tracing.Select("racetrack")
}

// Polygon is a sequence of vertices, connected by straight lines.
type Polygon struct {
	points []racetrack.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p racetrack.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(topleft, bottomright racetrack.Pair) *Polygon {
	x0, y0 := topleft.F()
	x1, y1 := bottomright.F()
	return NullPolygon().
		Knot(racetrack.P(x0, y0)).Knot(racetrack.P(x1, y0)).
		Knot(racetrack.P(x1, y1)).Knot(racetrack.P(x0, y1)).Cycle()
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns vertex (i mod N).
func (pg *Polygon) Pt(i int) racetrack.Pair {
	n := pg.N()
	return pg.points[((i%n)+n)%n]
}

// Points returns a copy of the vertices.
func (pg *Polygon) Points() []racetrack.Pair {
	pts := make([]racetrack.Pair, len(pg.points))
	copy(pts, pg.points)
	return pts
}

// Contour returns the polygon as a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.points {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// BoundingBox returns the lower-left and upper-right corners of the
// polygon's bounding box.
func (pg *Polygon) BoundingBox() (racetrack.Pair, racetrack.Pair) {
	if pg.N() == 0 {
		return racetrack.Origin, racetrack.Origin
	}
	bb := pg.Contour().BoundingBox()
	return racetrack.P(bb.Min.X, bb.Min.Y), racetrack.P(bb.Max.X, bb.Max.Y)
}

// Bounds returns the corners of the bounding box of a set of polygons.
// It returns false if there are no vertices at all.
func Bounds(pgs []*Polygon) (racetrack.Pair, racetrack.Pair, bool) {
	var pp polyclip.Polygon
	for _, pg := range pgs {
		if pg != nil && pg.N() > 0 {
			pp = append(pp, pg.Contour())
		}
	}
	if len(pp) == 0 {
		return racetrack.Origin, racetrack.Origin, false
	}
	bb := pp.BoundingBox()
	return racetrack.P(bb.Min.X, bb.Min.Y), racetrack.P(bb.Max.X, bb.Max.Y), true
}

// Contains is a predicate: is p inside of the polygon?
func (pg *Polygon) Contains(p racetrack.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.Contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// SignedArea returns the area of the polygon, positive for counter-clockwise
// vertex order.
func (pg *Polygon) SignedArea() float64 {
	var a float64
	for i := 0; i < pg.N(); i++ {
		a += pg.Pt(i).Cross(pg.Pt(i + 1))
	}
	return a / 2
}

// IsConvex is a predicate: does the polygon turn in one direction only,
// without self-intersection? Collinear vertices are tolerated, degenerate
// polygons (less than 3 vertices or no area) are not convex.
func (pg *Polygon) IsConvex() bool {
	n := pg.N()
	if n < 3 || racetrack.Is0(pg.SignedArea()) {
		return false
	}
	sign := 0.0
	var turning float64
	for i := 0; i < n; i++ {
		d1 := pg.Pt(i+1) - pg.Pt(i)
		d2 := pg.Pt(i+2) - pg.Pt(i+1)
		cross := d1.Cross(d2)
		if !racetrack.Is0(cross) {
			if sign == 0 {
				sign = math.Copysign(1, cross)
			} else if math.Copysign(1, cross) != sign {
				return false
			}
		}
		if d1 != 0 && d2 != 0 {
			turning += math.Atan2(cross, d1.Dot(d2))
		}
	}
	// a convex polygon winds around exactly once
	return math.Abs(math.Abs(turning)-2*math.Pi) < 1e-6
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y()))
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
