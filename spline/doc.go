// Package spline fits closed cardinal splines through the control points of a
// race track.
/*

A cardinal spline passes exactly through each of its knots. The tangent at
knot z.i is derived from the knot's neighbours,

   m.i = s · (z.[i+1] - z.[i-1])

where s is the tension of the spline. For s = 1/2 this is the well known
Catmull-Rom spline, which is what clients get from Fit(...). Race tracks are
loops, therefore the knot sequence is always treated as cyclic: the neighbour
before z.0 is the last knot and the curve returns from the last knot to z.0.
A curve through n knots thus consists of exactly n cubic segments.

Each segment is stored in Bézier form. Between z.i and z.[i+1] the control
points are

   z.i + m.i/3   and   z.[i+1] - m.[i+1]/3

Usage

   curve := spline.Fit(points)
   if curve == nil {
       // fewer than 2 points: no geometry this tick
   }
   samples := curve.Positions(5 * curve.Segments())

Fitting never fails on coincident knots. Those simply produce zero-length
tangents at the affected knots, which downstream consumers have to cope with.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"fmt"
	"strings"
)

// AsString returns a curve -- including spline control points -- as a
// (debugging) string in MetaPost-like notation.
//
// Example, a Catmull-Rom loop through four knots:
//
//	(1,1) .. controls (1.0000,1.3333) and (1.6667,2.0000)
//	  .. (2,2) .. controls (2.3333,2.0000) and (3.0000,1.3333)
//	  .. (3,1) .. controls (3.0000,0.6667) and (2.3333,0.0000)
//	  .. (2,0) .. controls (1.6667,0.0000) and (1.0000,0.6667)
//	  .. cycle
func AsString(curve *Curve) string {
	if curve == nil {
		return "<no curve>"
	}
	var sb strings.Builder
	for i := 0; i < curve.N(); i++ {
		if i > 0 {
			fmt.Fprintf(&sb, " and %s\n  .. ", ptstring(curve.Controls.PreControl(i), true))
		}
		sb.WriteString(ptstring(curve.Z(i), false))
		fmt.Fprintf(&sb, " .. controls %s", ptstring(curve.Controls.PostControl(i), true))
	}
	fmt.Fprintf(&sb, " and %s\n ", ptstring(curve.Controls.PreControl(0), true))
	sb.WriteString(" .. cycle")
	return sb.String()
}
