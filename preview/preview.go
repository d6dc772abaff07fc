/*
Package preview renders track geometry into raster images.

It draws what a host application's render collaborator would display:
the tessellated ring in gray, the center curve as a white polyline and the
control points as green dots. World coordinates are mapped to pixels by a
racetrack.Viewport.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package preview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/npillmayer/racetrack"
	"github.com/npillmayer/racetrack/pipeline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'racetrack'
func tracer() tracing.Trace {
	return tracing.Select("racetrack")
}

// ErrRender is returned if drawing or writing an image fails.
var ErrRender = errors.New("cannot render track")

const (
	// CurveSamplesPerSegment is the polyline resolution of the center curve.
	CurveSamplesPerSegment = 100
	// PointRadius is the radius of a control point dot, in pixels.
	PointRadius = 10.0
)

// Options control what is drawn, and where.
type Options struct {
	Viewport   racetrack.Viewport
	Background gg.RGBA
	Surface    gg.RGBA
	Curve      gg.RGBA
	Points     gg.RGBA
	LineWidth  float64
	HideCurve  bool
	HidePoints bool
}

// DefaultOptions returns options for an image of w × h pixels, centered at
// the world origin.
func DefaultOptions(w, h int) Options {
	return Options{
		Viewport:   racetrack.NewViewport(w, h),
		Background: gg.Black,
		Surface:    gg.RGB(0.5, 0.5, 0.5),
		Curve:      gg.White,
		Points:     gg.RGB(0, 1, 0),
		LineWidth:  2,
	}
}

// Render draws geom into a new drawing context of the viewport's size.
// The caller is responsible for closing the context.
func Render(geom *pipeline.Geometry, opts Options) (*gg.Context, error) {
	vp := opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("%w: viewport of %d × %d pixels", ErrRender, vp.Width, vp.Height)
	}
	dc := gg.NewContext(vp.Width, vp.Height)
	dc.ClearWithColor(opts.Background)
	if geom == nil {
		return dc, nil
	}
	if err := drawRing(dc, geom, opts); err != nil {
		dc.Close()
		return nil, err
	}
	if !opts.HideCurve {
		if err := drawCurve(dc, geom, opts); err != nil {
			dc.Close()
			return nil, err
		}
	}
	if !opts.HidePoints {
		if err := drawPoints(dc, geom, opts); err != nil {
			dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// SavePNG renders geom and writes it to a PNG file.
func SavePNG(geom *pipeline.Geometry, opts Options, path string) error {
	dc, err := Render(geom, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	tracer().Infof("preview: track %q written to %s", geom.Track, path)
	return nil
}

func drawRing(dc *gg.Context, geom *pipeline.Geometry, opts Options) error {
	if geom.Ring == nil {
		return nil
	}
	dc.SetColor(opts.Surface.Color())
	for _, hull := range geom.Ring.Hulls {
		for i, p := range hull.Points() {
			x, y := opts.Viewport.ToScreen(p).F()
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("%w: quad: %v", ErrRender, err)
		}
	}
	return nil
}

func drawCurve(dc *gg.Context, geom *pipeline.Geometry, opts Options) error {
	if geom.Curve == nil {
		return nil
	}
	samples := geom.Curve.Positions(CurveSamplesPerSegment * geom.Curve.Segments())
	for i, p := range samples {
		x, y := opts.Viewport.ToScreen(p).F()
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(opts.Curve.Color())
	dc.SetLineWidth(opts.LineWidth)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%w: curve: %v", ErrRender, err)
	}
	return nil
}

func drawPoints(dc *gg.Context, geom *pipeline.Geometry, opts Options) error {
	dc.SetColor(opts.Points.Color())
	for _, p := range geom.Points {
		x, y := opts.Viewport.ToScreen(p).F()
		dc.DrawCircle(x, y, PointRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("%w: control point: %v", ErrRender, err)
		}
	}
	return nil
}
