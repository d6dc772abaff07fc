package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/racetrack"
)

// Validate checks if a sequence of knots is suitable for fitting a closed
// curve. Coincident knots are allowed; they result in zero-length tangents.
func Validate(points []racetrack.Pair) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: closed curve needs at least 2 knots, got %d", ErrTooFewKnots, len(points))
	}
	for i, z := range points {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}

// Fit creates a closed Catmull-Rom spline (tension 1/2) through points.
// With fewer than 2 points there is no curve and Fit returns nil. Invalid
// points (NaN or infinite coordinates) yield nil as well.
//
// Fit is deterministic: identical input results in bit-identical curves.
func Fit(points []racetrack.Pair) *Curve {
	return FitTension(points, DefaultTension)
}

// FitTension creates a closed cardinal spline of a given tension through
// points. Tensions are adapted to lie in (0, 1]; a non-positive tension is
// replaced by DefaultTension.
func FitTension(points []racetrack.Pair, tension float64) *Curve {
	if err := Validate(points); err != nil {
		if errors.Is(err, ErrTooFewKnots) {
			tracer().Debugf("no curve: %v", err)
		} else {
			tracer().Errorf("no curve: %v", err)
		}
		return nil
	}
	if math.IsNaN(tension) || tension <= 0 {
		tracer().Infof("tension %g out of range, using %g", tension, DefaultTension)
		tension = DefaultTension
	} else if tension > 1 {
		tension = 1
	}
	curve := &Curve{
		knots:    make([]racetrack.Pair, len(points)),
		tension:  tension,
		Controls: &Controls{},
	}
	copy(curve.knots, points)
	setControls(curve)
	return curve
}

// MustFit is a helper which panics if points do not describe a curve.
func MustFit(points []racetrack.Pair) *Curve {
	if err := Validate(points); err != nil {
		panic(err)
	}
	return Fit(points)
}

// tangent at knot z.i
func (c *Curve) tangent(i int) racetrack.Pair {
	return (c.Z(i+1) - c.Z(i-1)).Scaled(c.tension)
}

func setControls(c *Curve) {
	n := c.N()
	for i := 0; i < n; i++ {
		m := c.tangent(i).Scaled(1.0 / 3.0)
		c.Controls.SetPostControl(i, c.knots[i]+m)
		c.Controls.SetPreControl(i, c.knots[i]-m)
		if m.Length() <= _epsilon {
			tracer().Debugf("knot %d has a zero-length tangent", i)
		}
	}
}
