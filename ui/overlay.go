package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

// Overlay is the diagnostic panel in the top-left corner. Lines are replaced
// every frame with the controller's state strings.
type Overlay struct {
	Lines   []string
	Visible bool
}

const (
	overlayMargin  = 10
	overlayPadding = 8
)

// Bounds returns the panel rectangle for the current lines.
func (o *Overlay) Bounds(lineHeight int, textWidth func(string) int) image.Rectangle {
	w := 0
	for _, l := range o.Lines {
		w = max(w, textWidth(l))
	}
	h := lineHeight * len(o.Lines)
	return image.Rect(overlayMargin, overlayMargin,
		overlayMargin+w+2*overlayPadding, overlayMargin+h+2*overlayPadding)
}

func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

func (o *Overlay) Draw(screen *ebiten.Image, face font.Face, drawText DrawTextFunc) {
	if o == nil || !o.Visible || len(o.Lines) == 0 || drawText == nil {
		return
	}
	lineHeight, textWidth := 16, func(s string) int { return 7 * len(s) }
	if face != nil {
		m := face.Metrics()
		lineHeight = (m.Ascent + m.Descent).Ceil()
		textWidth = func(s string) int { return font.MeasureString(face, s).Ceil() }
	}

	r := o.Bounds(lineHeight, textWidth)
	bg := color.RGBA{20, 20, 25, 180}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	drawText(screen, face, strings.Join(o.Lines, "\n"), r.Min.X+overlayPadding, r.Min.Y+overlayPadding, color.RGBA{230, 230, 230, 255})
}
