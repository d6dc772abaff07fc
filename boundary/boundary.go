/*
Package boundary derives the left and right edges of a track from its center
curve.

The center curve is sampled at a resolution proportional to its number of
segments. For every sample a tangent is estimated by finite differences of
neighbouring samples, rotated by -90° and scaled by the track's half-width W.
The resulting offset vector points to the outer edge, its opposite to the
inner edge.

Samples with a zero-length tangent (coincident control points) collapse to
the sample position on both sides. They are degenerate, but never an error.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package boundary

import (
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

const (
	// DefaultHalfWidth is the distance of either edge from the center curve.
	DefaultHalfWidth = 20.0
	// DefaultSamplesPerSegment is the number of samples per curve segment.
	DefaultSamplesPerSegment = 5
	// Tension is used for finite difference tangents; it matches the tension
	// of the center curve.
	Tension = spline.DefaultTension
)

// Pair is the pair of edge points at one sample of the center curve.
type Pair struct {
	Center racetrack.Pair // sampled position on the center curve
	Outer  racetrack.Pair // Center + W · normal
	Inner  racetrack.Pair // Center - W · normal
}

// IsDegenerate is a predicate: did the sample have a zero-length tangent?
func (bp Pair) IsDegenerate() bool {
	return bp.Outer == bp.Inner
}

// Resolution returns the number of samples for a curve, scaling with the
// curve's segment count. k < 1 selects DefaultSamplesPerSegment.
func Resolution(curve *spline.Curve, k int) int {
	if curve == nil {
		return 0
	}
	if k < 1 {
		k = DefaultSamplesPerSegment
	}
	return k * curve.Segments()
}

// Offsets samples curve at resolution positions and returns a boundary pair
// per sample. The result is to be read as cyclic: the last pair is adjacent
// to the first one. A nil curve or a resolution ≤ 0 results in an empty
// sequence.
func Offsets(curve *spline.Curve, resolution int, halfWidth float64) []Pair {
	if curve == nil || resolution <= 0 {
		return []Pair{}
	}
	samples := curve.Positions(resolution)
	pairs := make([]Pair, len(samples))
	degenerate := 0
	for i, p := range samples {
		normal := tangent(samples, i).Unit().Rotated(-90 * racetrack.Deg2Rad)
		outer := normal.Scaled(halfWidth)
		inner := outer.Rotated(180 * racetrack.Deg2Rad)
		if normal == 0 {
			degenerate++
		}
		pairs[i] = Pair{Center: p, Outer: p + outer, Inner: p + inner}
	}
	if degenerate > 0 {
		tracer().Debugf("boundary: %d of %d samples with zero-length tangent", degenerate, len(samples))
	}
	return pairs
}

// tangent estimates the tangent at sample i by finite differences: forward
// at the first sample, backward at the last one and central otherwise.
func tangent(samples []racetrack.Pair, i int) racetrack.Pair {
	last := len(samples) - 1
	switch {
	case last < 1:
		return racetrack.Origin
	case i == 0:
		return (samples[1] - samples[0]).Scaled(Tension * 2)
	case i == last:
		return (samples[last] - samples[last-1]).Scaled(Tension * 2)
	}
	return (samples[i+1] - samples[i-1]).Scaled(Tension)
}

// Outline splits boundary pairs into the polylines of the outer and the inner
// edge.
func Outline(pairs []Pair) (outer, inner []racetrack.Pair) {
	outer = make([]racetrack.Pair, len(pairs))
	inner = make([]racetrack.Pair, len(pairs))
	for i, bp := range pairs {
		outer[i], inner[i] = bp.Outer, bp.Inner
	}
	return outer, inner
}
