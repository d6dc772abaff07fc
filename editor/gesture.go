package editor

import "github.com/npillmayer/racetrack"

// Button identifies a pointer button.
type Button int

// Pointer buttons: Primary adds control points, Secondary moves the selected one.
const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return "unknown"
}

// Gesture is a small state machine tracking a press-then-release motion.
// It is either Idle or Pressed, remembering where the press happened.
// Nested presses are ignored.
type Gesture struct {
	start   racetrack.Pair
	pressed bool
}

// Press starts the gesture at pos. It returns false, leaving the gesture
// untouched, if the gesture is already pressed.
func (g *Gesture) Press(pos racetrack.Pair) bool {
	if g.pressed {
		return false
	}
	g.start, g.pressed = pos, true
	return true
}

// Release ends the gesture and returns the position of the press. It
// returns false if the gesture has not been pressed.
func (g *Gesture) Release() (racetrack.Pair, bool) {
	if !g.pressed {
		return racetrack.Origin, false
	}
	start := g.start
	g.Cancel()
	return start, true
}

// Pressed returns the press position while the gesture is in progress.
func (g *Gesture) Pressed() (racetrack.Pair, bool) {
	return g.start, g.pressed
}

// Cancel returns the gesture to Idle.
func (g *Gesture) Cancel() {
	g.start, g.pressed = racetrack.Origin, false
}
