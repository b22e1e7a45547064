package camera

import (
	"fmt"

	"glfractals/canvas"
	"glfractals/input"
)

// Camera is the Mandelbrot view controller. Input notifications mutate its
// input state immediately; Update folds that state into the view once per
// frame.
type Camera struct {
	cfg Config

	view       canvas.View
	iterations int

	moveUp, moveDown, moveLeft, moveRight bool

	dragging bool

	// Cursors are kept in screen coordinates and converted on use, since the
	// plane-space equivalent changes whenever the view does.
	cursor     canvas.Point
	prevCursor canvas.Point
	zoomFactor float64

	// anchor replaces the cursor as the zoom centre when set by ZoomAt.
	anchor   canvas.Point
	anchored bool

	shouldClose bool
}

// New returns a camera showing the default view at the given resolution.
func New(res canvas.Resolution, cfg Config) *Camera {
	c := &Camera{cfg: cfg}
	c.Reset()
	c.view.Res = res
	return c
}

// Update advances the view by dt seconds of accumulated input.
func (c *Camera) Update(dt float64) {
	// Keep the point under the cursor fixed while zooming.
	if c.zoomFactor != 1 {
		var factor float64
		if c.zoomFactor > 1 {
			factor = -(1/c.cfg.ZoomFactor - 1)
		} else {
			factor = 1 - c.cfg.ZoomFactor
		}
		at := c.cursor
		if c.anchored {
			at = c.anchor
		}
		anchor := c.ScreenToComplex(at).Sub(c.view.Center)
		c.view.Center = c.view.Center.Add(anchor.Scale(factor))
	}
	c.view.Height *= c.zoomFactor

	if c.dragging {
		delta := c.ScreenToComplex(c.cursor).Sub(c.ScreenToComplex(c.prevCursor))
		c.view.Center = c.view.Center.Sub(delta)
	}

	speed := c.view.Height * dt
	c.view.Center.X += speed * (b2f(c.moveRight) - b2f(c.moveLeft))
	c.view.Center.Y += speed * (b2f(c.moveUp) - b2f(c.moveDown))

	c.zoomFactor = 1
	c.anchored = false
	c.prevCursor = c.cursor
}

func (c *Camera) NotifyKey(event input.Event, state input.ButtonState) {
	switch event {
	case input.Exit:
		c.shouldClose = true
	case input.MoveUp:
		c.moveUp = state.Held()
	case input.MoveDown:
		c.moveDown = state.Held()
	case input.MoveLeft:
		c.moveLeft = state.Held()
	case input.MoveRight:
		c.moveRight = state.Held()
	case input.IncreaseIterations:
		if state.Held() {
			c.iterations++
		}
	case input.DecreaseIterations:
		if state.Held() {
			c.iterations = max(0, c.iterations-1)
		}
	case input.ResetCamera:
		if state == input.Pressed {
			c.Reset()
		}
	}
}

func (c *Camera) NotifyMouse(cursorX, cursorY, scrollX, scrollY float64, event input.Event, state input.ButtonState) {
	if event == input.DragCamera {
		if !c.dragging && state == input.Pressed {
			c.dragging = true
		} else if c.dragging && state == input.Released {
			c.dragging = false
		}
	}

	c.cursor = canvas.Point{X: cursorX, Y: cursorY}

	// A later tick before the next Update replaces the pending one.
	if scrollY != 0 {
		c.setZoom(scrollY)
		c.anchored = false
	}
}

// ZoomAt queues one zoom tick anchored at screen point (x, y) without
// touching the cursor, so a drag in progress does not jump.
func (c *Camera) ZoomAt(x, y, scrollY float64) {
	if scrollY == 0 {
		return
	}
	c.setZoom(scrollY)
	c.anchor = canvas.Point{X: x, Y: y}
	c.anchored = true
}

func (c *Camera) setZoom(scrollY float64) {
	if scrollY > 0 {
		c.zoomFactor = c.cfg.ZoomFactor
	} else {
		c.zoomFactor = 1 / c.cfg.ZoomFactor
	}
}

func (c *Camera) NotifyResolution(width, height int) {
	Logger().Debug("resolution changed", "width", width, "height", height)
	c.view.Res = canvas.Resolution{Width: width, Height: height}
}

// NotifyClose always accepts the close request.
func (c *Camera) NotifyClose() bool {
	Logger().Debug("close requested")
	c.shouldClose = true
	return c.shouldClose
}

func (c *Camera) ShouldClose() bool {
	return c.shouldClose
}

// Reset restores the default view and forgets held keys, drags, pending
// zoom and cursor history. The cursor returns to the screen origin.
func (c *Camera) Reset() {
	Logger().Debug("camera reset")
	c.iterations = c.cfg.DefaultIterations

	c.moveUp, c.moveDown, c.moveLeft, c.moveRight = false, false, false, false

	c.view.Height = c.cfg.DefaultHeight
	c.view.Center = canvas.Point{}

	c.zoomFactor = 1
	c.anchored = false
	c.dragging = false
	c.cursor = canvas.Point{}
	c.prevCursor = canvas.Point{}
}

// ScreenToComplex converts a screen point with the current view.
func (c *Camera) ScreenToComplex(p canvas.Point) canvas.Point {
	return c.view.ScreenToComplex(p)
}

func (c *Camera) View() canvas.View             { return c.view }
func (c *Camera) Iterations() int               { return c.iterations }
func (c *Camera) Center() canvas.Point          { return c.view.Center }
func (c *Camera) Height() float64               { return c.view.Height }
func (c *Camera) Width() float64                { return c.view.Width() }
func (c *Camera) Resolution() canvas.Resolution { return c.view.Res }
func (c *Camera) Dragging() bool                { return c.dragging }

// Cursor returns the cursor in plane coordinates.
func (c *Camera) Cursor() canvas.Point {
	return c.ScreenToComplex(c.cursor)
}

// StateStrings returns the diagnostic lines shown on the overlay.
func (c *Camera) StateStrings() []string {
	return []string{
		"mouse: " + c.Cursor().String(),
		"center: " + c.Center().String(),
		fmt.Sprintf("iterations: %d", c.iterations),
	}
}

// ProgramUniforms writes the render parameters into u, keyed by the shader
// uniform names.
func (c *Camera) ProgramUniforms(u map[string]any) {
	u["Iterations"] = float32(c.iterations)
	u["CompWidth"] = float32(c.Width())
	u["CompHeight"] = float32(c.view.Height)
	u["CompCenterX"] = float32(c.view.Center.X)
	u["CompCenterY"] = float32(c.view.Center.Y)
	u["ViewWidth"] = float32(c.view.Res.Width)
	u["ViewHeight"] = float32(c.view.Res.Height)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
