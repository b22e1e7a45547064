package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing, in ticks.
const (
	RepeatDelay    = 30
	RepeatInterval = 3
)

// Poll reads this tick's ebiten input and dispatches it. It must be called
// from the game's Update, before the controller's Update for the frame.
func (s *Source) Poll() {
	if s.pendingW != s.width || s.pendingH != s.height {
		s.DispatchResolution(s.pendingW, s.pendingH)
	}

	for _, key := range s.keys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			s.DispatchKey(key, Pressed)
		case inpututil.IsKeyJustReleased(key):
			s.DispatchKey(key, Released)
		case isRepeating(inpututil.KeyPressDuration(key)):
			s.DispatchKey(key, Repeated)
		}
	}

	mx, my := ebiten.CursorPosition()
	if x, y := float64(mx), float64(my); x != s.cursorX || y != s.cursorY {
		s.DispatchCursor(x, y)
	}

	for _, button := range s.buttons {
		if inpututil.IsMouseButtonJustPressed(button) {
			s.DispatchMouseButton(button, Pressed)
		} else if inpututil.IsMouseButtonJustReleased(button) {
			s.DispatchMouseButton(button, Released)
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		s.DispatchScroll(wx, wy)
	}

	if ebiten.IsWindowBeingClosed() {
		s.DispatchClose()
	}
}

// isRepeating reports whether a key held for d ticks fires a repeat this tick.
func isRepeating(d int) bool {
	return d > RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}
