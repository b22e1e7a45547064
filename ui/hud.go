package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

const (
	buttonSize = 30
	buttonGap  = 10
	hudMargin  = 10
)

// HUD is everything drawn over the fractal: a row of buttons in the top-right
// corner and the diagnostic overlay in the top-left.
type HUD struct {
	Buttons []*Button
	Overlay *Overlay

	// ClickButton is the mouse button that presses HUD buttons.
	ClickButton ebiten.MouseButton

	face     font.Face
	drawText DrawTextFunc
}

// NewHUD lays out one button per action, right to left in the order given.
func NewHUD(face font.Face, drawText DrawTextFunc, width int, actions ...*Button) *HUD {
	h := &HUD{
		Buttons:     actions,
		Overlay:     &Overlay{Visible: true},
		ClickButton: ebiten.MouseButtonLeft,
		face:        face,
		drawText:    drawText,
	}
	h.Layout(width)
	return h
}

// Layout places the buttons for a window width.
func (h *HUD) Layout(width int) {
	for i, b := range h.Buttons {
		x := width - hudMargin - (i+1)*buttonSize - i*buttonGap
		b.Bounds = image.Rect(x, hudMargin, x+buttonSize, hudMargin+buttonSize)
	}
}

// ButtonAt returns the button under (x, y), or nil.
func (h *HUD) ButtonAt(x, y float64) *Button {
	for _, b := range h.Buttons {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Captures reports whether a press of button at (x, y) belongs to the HUD
// rather than the canvas.
func (h *HUD) Captures(button ebiten.MouseButton, x, y float64) bool {
	return button == h.ClickButton && h.ButtonAt(x, y) != nil
}

// Handle updates hover state and runs the button under the cursor on a click.
// It reports whether a button was clicked.
func (h *HUD) Handle(x, y float64, clicked bool) bool {
	var hit *Button
	for _, b := range h.Buttons {
		b.hover = b.Contains(x, y)
		if b.hover {
			hit = b
		}
	}
	if !clicked || hit == nil {
		return false
	}
	if hit.Action != nil {
		hit.Action()
	}
	return true
}

func (h *HUD) Update() {
	mx, my := ebiten.CursorPosition()
	h.Handle(float64(mx), float64(my), inpututil.IsMouseButtonJustPressed(h.ClickButton))
}

func (h *HUD) Draw(screen *ebiten.Image) {
	for _, b := range h.Buttons {
		b.Draw(screen, h.face, h.drawText)
	}
	h.Overlay.Draw(screen, h.face, h.drawText)
}
