package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawAxes overlays the real and imaginary axes and an origin cross for the
// given view. Axes outside the viewport are skipped.
func DrawAxes(screen *ebiten.Image, v View, axisColor, originCross color.Color) {
	w := float32(v.Res.Width)
	h := float32(v.Res.Height)
	origin := v.ComplexToScreen(Point{})
	ox, oy := float32(origin.X), float32(origin.Y)

	if oy >= 0 && oy <= h {
		vector.StrokeLine(screen, 0, oy, w, oy, 1, axisColor, false)
	}
	if ox >= 0 && ox <= w {
		vector.StrokeLine(screen, ox, 0, ox, h, 1, axisColor, false)
	}

	vector.StrokeLine(screen, ox-15, oy, ox+15, oy, 2, originCross, false)
	vector.StrokeLine(screen, ox, oy-15, ox, oy+15, 2, originCross, false)
}
