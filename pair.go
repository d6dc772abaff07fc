/*
Package racetrack builds the drivable geometry of closed race tracks from a
handful of user-placed control points.

The root package holds the basic 2D value types shared by all sub-packages:
pairs (points and vectors in the plane), affine transformations and a
viewport for converting between screen and world coordinates.
Sub-packages implement the geometry pipeline

	spline    closed cardinal (Catmull-Rom) curves through control points
	boundary  left/right offset pairs along a sampled curve
	mesh      a closed ring of quads and collision hulls
	catalog   named tracks, selection cycling, .tracks documents
	editor    gesture-driven authoring of control points
	pipeline  dirty-gated recomputation of a track's geometry
	preview   rasterized previews of a track's geometry

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package racetrack

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. It is backed by a complex number, which makes
// rotations and scaling a matter of plain complex arithmetic.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both parts of p neither NaN nor infinite?
func (p Pair) IsFinite() bool {
	x, y := p.F()
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, tolerating differences up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Length returns the euclidian length of p, interpreted as a vector.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Dist returns the distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return (p2 - p).Length()
}

// Dot returns the dot product of p and p2.
func (p Pair) Dot(p2 Pair) float64 {
	return p.X()*p2.X() + p.Y()*p2.Y()
}

// Cross returns the z-part of the cross product of p and p2.
func (p Pair) Cross(p2 Pair) float64 {
	return p.X()*p2.Y() - p.Y()*p2.X()
}

// Unit returns p scaled to length 1. A vector of length ≤ Epsilon (or a
// non-finite one) yields the zero vector.
func (p Pair) Unit() Pair {
	l := p.Length()
	if Is0(l) || math.IsNaN(l) || math.IsInf(l, 0) {
		return Origin
	}
	return P(p.X()/l, p.Y()/l)
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}
