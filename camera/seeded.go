package camera

import (
	"glfractals/canvas"
	"glfractals/input"
)

// SeededCamera is the Julia view controller. It owns a Camera for the view
// and adds a draggable seed point with its own drag state.
type SeededCamera struct {
	*Camera

	seed        canvas.Point
	sensitivity float64

	dragging   bool
	cursor     canvas.Point
	prevCursor canvas.Point
}

func NewSeeded(res canvas.Resolution, cfg Config) *SeededCamera {
	return &SeededCamera{
		Camera:      New(res, cfg),
		sensitivity: cfg.SeedSensitivity,
	}
}

// Update advances the wrapped camera, then moves the seed using the camera's
// updated transform so camera and seed drags compose within one frame.
func (s *SeededCamera) Update(dt float64) {
	s.Camera.Update(dt)

	if s.dragging {
		delta := s.Camera.ScreenToComplex(s.cursor).Sub(s.Camera.ScreenToComplex(s.prevCursor))
		s.seed = s.seed.Add(delta.Scale(s.sensitivity))
	}

	s.prevCursor = s.cursor
}

func (s *SeededCamera) NotifyKey(event input.Event, state input.ButtonState) {
	s.Camera.NotifyKey(event, state)
	if event == input.ResetCamera && state == input.Pressed {
		s.Reset()
	}
}

func (s *SeededCamera) NotifyMouse(cursorX, cursorY, scrollX, scrollY float64, event input.Event, state input.ButtonState) {
	s.Camera.NotifyMouse(cursorX, cursorY, scrollX, scrollY, event, state)

	if event == input.DragSeed {
		if !s.dragging && state == input.Pressed {
			s.dragging = true
		} else if s.dragging && state == input.Released {
			s.dragging = false
		}
	}

	s.cursor = canvas.Point{X: cursorX, Y: cursorY}
}

// Reset resets the camera and returns the seed to the origin.
func (s *SeededCamera) Reset() {
	s.Camera.Reset()
	s.seed = canvas.Point{}
	s.dragging = false
	s.cursor = canvas.Point{}
	s.prevCursor = canvas.Point{}
}

func (s *SeededCamera) Seed() canvas.Point {
	return s.seed
}

// SeedDragging reports whether a seed drag is in progress.
func (s *SeededCamera) SeedDragging() bool {
	return s.dragging
}

func (s *SeededCamera) StateStrings() []string {
	return append(s.Camera.StateStrings(), "seed: "+s.seed.String())
}

func (s *SeededCamera) ProgramUniforms(u map[string]any) {
	s.Camera.ProgramUniforms(u)
	u["SeedX"] = float32(s.seed.X)
	u["SeedY"] = float32(s.seed.Y)
}
