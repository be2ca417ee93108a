package component

import "github.com/jakecoffman/cp"

// Input stores the device state polled for the current frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	OrbitHeld         bool
	OrbitJustPressed  bool
	OrbitJustReleased bool
	Modifier          bool

	// MouseDelta is the cursor motion since the previous frame in pixels.
	MouseDelta cp.Vector
	// Scroll is the summed wheel notches for the frame.
	Scroll float64

	CopyPressed    bool
	PausePressed   bool
	RestartPressed bool
}

// AnyArrow reports whether any movement key is held.
func (in *Input) AnyArrow() bool {
	return in != nil && (in.Up || in.Down || in.Left || in.Right)
}

var InputComponent = NewComponent[Input]()
