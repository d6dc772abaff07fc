package spline

import (
	"errors"
	"math/cmplx"

	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// DefaultTension is the tension of a Catmull-Rom spline.
const DefaultTension = 0.5

const _epsilon = 0.0000001

var (
	// ErrTooFewKnots indicates a knot count insufficient for a closed curve.
	ErrTooFewKnots = errors.New("curve has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("curve has invalid knot coordinate")
)

// Curve is a closed cubic spline through a sequence of knots. Curves are
// immutable after fitting and are recomputed whenever the knots change.
type Curve struct {
	knots    []racetrack.Pair // knot i
	tension  float64          // tension of the cardinal spline
	Controls *Controls        // Bézier control points
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []racetrack.Pair // control point i-
	postc []racetrack.Pair // control point i+
}

// SetPreControl sets the incoming control point at knot i.
func (ctrls *Controls) SetPreControl(i int, c racetrack.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, racetrack.Pair(cmplx.NaN()))
	ctrls.prec[i] = c
}

// SetPostControl sets the outgoing control point at knot i.
func (ctrls *Controls) SetPostControl(i int, c racetrack.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, racetrack.Pair(cmplx.NaN()))
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point at knot i, or NaN if unknown.
func (ctrls *Controls) PreControl(i int) racetrack.Pair {
	return getC(ctrls.prec, i, racetrack.Pair(cmplx.NaN()))
}

// PostControl returns the outgoing control point at knot i, or NaN if unknown.
func (ctrls *Controls) PostControl(i int) racetrack.Pair {
	return getC(ctrls.postc, i, racetrack.Pair(cmplx.NaN()))
}

// N returns the number of knots of the curve.
func (c *Curve) N() int {
	return len(c.knots)
}

// Segments returns the number of cubic segments. For a closed curve this
// equals the number of knots.
func (c *Curve) Segments() int {
	return len(c.knots)
}

// Tension returns the tension the curve has been fitted with.
func (c *Curve) Tension() float64 {
	return c.tension
}

// Z returns the knot at position (i mod N). Negative indices count
// backwards from the end.
func (c *Curve) Z(i int) racetrack.Pair {
	n := c.N()
	i = ((i % n) + n) % n
	return c.knots[i]
}

// Knots returns a copy of the knots of the curve.
func (c *Curve) Knots() []racetrack.Pair {
	k := make([]racetrack.Pair, len(c.knots))
	copy(k, c.knots)
	return k
}

// Segment returns the Bézier points of segment i, i.e., the knots z.i and
// z.[i+1] together with their control points.
func (c *Curve) Segment(i int) (p0, c1, c2, p3 racetrack.Pair) {
	n := c.N()
	i = ((i % n) + n) % n
	j := (i + 1) % n
	return c.knots[i], c.Controls.PostControl(i), c.Controls.PreControl(j), c.knots[j]
}
