package racetrack

// WorldConverter converts positions in screen (device) coordinates into world
// coordinates. It is usually implemented by a camera collaborator; conversion
// may fail, e.g., for a cursor outside of the viewport.
type WorldConverter interface {
	ToWorld(screen Pair) (Pair, bool)
}

// Viewport is a 2D camera looking at world position Center. Screen coordinates
// have their origin at the top-left corner with y growing downwards, world
// coordinates are y-up. Zoom is the number of screen pixels per world unit.
type Viewport struct {
	Center Pair
	Zoom   float64
	Width  int
	Height int
}

var _ WorldConverter = Viewport{}

// NewViewport creates a viewport of w × h pixels, centered at the world origin
// with a zoom of 1.
func NewViewport(w, h int) Viewport {
	return Viewport{Center: Origin, Zoom: 1, Width: w, Height: h}
}

// WorldToScreen returns the transform from world to screen coordinates.
func (vp Viewport) WorldToScreen() AT {
	half := P(float64(vp.Width)/2, float64(vp.Height)/2)
	return Translation(-vp.Center).
		Combine(Scaling(vp.Zoom, -vp.Zoom)).
		Combine(Translation(half))
}

// ToScreen converts a world position to screen coordinates.
func (vp Viewport) ToScreen(world Pair) Pair {
	return vp.WorldToScreen().Transform(world)
}

// ToWorld converts a screen position to world coordinates. It fails for a
// degenerate zoom or for positions outside of the viewport's pixel area.
func (vp Viewport) ToWorld(screen Pair) (Pair, bool) {
	inv, err := vp.WorldToScreen().Inverse()
	if err != nil {
		tracer().Errorf("viewport: %v", err)
		return Origin, false
	}
	if screen.X() < 0 || screen.Y() < 0 ||
		screen.X() > float64(vp.Width) || screen.Y() > float64(vp.Height) {
		return Origin, false
	}
	return inv.Transform(screen), true
}
