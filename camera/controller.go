package camera

import (
	"fmt"
	"strings"

	"glfractals/canvas"
	"glfractals/input"
)

// Controller is what the frame loop drives: it listens to the event source,
// advances once per frame and feeds the renderer and overlay.
type Controller interface {
	input.Listener

	Update(dt float64)
	ZoomAt(x, y, scrollY float64)
	ShouldClose() bool
	Reset()

	View() canvas.View
	Iterations() int
	StateStrings() []string
	ProgramUniforms(u map[string]any)
}

var (
	_ Controller = (*Camera)(nil)
	_ Controller = (*SeededCamera)(nil)
)

// Kind selects the fractal, and with it the controller variant.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mandelbrot":
		return Mandelbrot, nil
	case "julia":
		return Julia, nil
	}
	return Mandelbrot, fmt.Errorf("unknown fractal %q", name)
}

// NewController builds the controller for kind.
func NewController(kind Kind, res canvas.Resolution, cfg Config) Controller {
	if kind == Julia {
		return NewSeeded(res, cfg)
	}
	return New(res, cfg)
}
