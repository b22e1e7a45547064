package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	buttonIdle  = color.RGBA{60, 60, 70, 200}
	buttonHover = color.RGBA{90, 90, 110, 220}
)

// Button is a labelled square in screen space. Bounds are assigned by the
// HUD on every layout.
type Button struct {
	Label  string
	Bounds image.Rectangle
	Action func()

	hover bool
}

func (b *Button) Contains(x, y float64) bool {
	return image.Pt(int(x), int(y)).In(b.Bounds)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	fill := buttonIdle
	if b.hover {
		fill = buttonHover
	}
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	if drawText != nil {
		drawText(screen, face, b.Label, r.Min.X+r.Dx()/3, r.Min.Y+r.Dy()/4, color.White)
	}
}
