package spline

import (
	"math"

	"github.com/npillmayer/racetrack"
)

// Sample is a position on a curve together with the curve's derivative at
// that position.
type Sample struct {
	Value      racetrack.Pair
	Derivative racetrack.Pair
}

// locate maps a global curve parameter t ∈ [0, Segments] to a segment and a
// segment-local parameter. Values outside are clamped.
func (c *Curve) locate(t float64) (int, float64) {
	n := c.Segments()
	if math.IsNaN(t) || t <= 0 {
		return 0, 0
	}
	if t >= float64(n) {
		return n - 1, 1
	}
	seg := int(math.Floor(t))
	if seg >= n {
		return n - 1, 1
	}
	return seg, t - float64(seg)
}

// Position returns the point on the curve at global parameter t, where
// t ∈ [0, Segments]. Integral values of t hit the knots.
func (c *Curve) Position(t float64) racetrack.Pair {
	seg, u := c.locate(t)
	p0, c1, c2, p3 := c.Segment(seg)
	return bezier(p0, c1, c2, p3, u)
}

// Velocity returns the derivative of the curve at global parameter t,
// taken with respect to t.
func (c *Curve) Velocity(t float64) racetrack.Pair {
	seg, u := c.locate(t)
	p0, c1, c2, p3 := c.Segment(seg)
	return bezierDerivative(p0, c1, c2, p3, u)
}

// Positions samples the curve at resolution equidistant parameter values
// t = i · Segments/resolution, for 0 ≤ i < resolution. The closing point
// (equal to the first sample) is not repeated. A resolution of 0 or less
// results in an empty sequence.
func (c *Curve) Positions(resolution int) []racetrack.Pair {
	if resolution <= 0 {
		return []racetrack.Pair{}
	}
	step := float64(c.Segments()) / float64(resolution)
	samples := make([]racetrack.Pair, resolution)
	for i := range samples {
		samples[i] = c.Position(float64(i) * step)
	}
	return samples
}

// SampleWithDerivative returns position and derivative at normalized
// parameter u ∈ [0, 1], which is mapped onto the whole loop. It returns
// false for u outside of this interval.
func (c *Curve) SampleWithDerivative(u float64) (Sample, bool) {
	if math.IsNaN(u) || u < 0 || u > 1 {
		return Sample{}, false
	}
	t := u * float64(c.Segments())
	return Sample{Value: c.Position(t), Derivative: c.Velocity(t)}, true
}

// ArcLength approximates the length of the loop by a polygon of
// resolution samples.
func (c *Curve) ArcLength(resolution int) float64 {
	pts := c.Positions(resolution)
	var l float64
	for i := range pts {
		l += pts[i].Dist(pts[(i+1)%len(pts)])
	}
	return l
}

// bezier evaluates a cubic segment in power basis. Equal points yield zero
// coefficients, so a segment between coincident knots is sampled exactly.
func bezier(p0, c1, c2, p3 racetrack.Pair, t float64) racetrack.Pair {
	a := (c1 - p0).Scaled(3)
	b := (c2 - c1 - c1 + p0).Scaled(3)
	c := p3 - p0 + (c1 - c2).Scaled(3)
	return p0 + (a + (b + c.Scaled(t)).Scaled(t)).Scaled(t)
}

func bezierDerivative(p0, c1, c2, p3 racetrack.Pair, t float64) racetrack.Pair {
	mt := 1 - t
	return (c1 - p0).Scaled(3*mt*mt) + (c2 - c1).Scaled(6*mt*t) + (p3 - c2).Scaled(3*t*t)
}
