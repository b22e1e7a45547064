package canvas

import (
	"fmt"
	"math"
)

// Point is a 2D point. Screen points are in pixels with the origin at the
// top-left and y growing downward; plane points are (real, imaginary).
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// String formats the point in scientific notation so it stays legible at
// deep zoom.
func (p Point) String() string {
	return fmt.Sprintf("%e, %e", p.X, p.Y)
}

// Near reports whether both coordinates are within tol of q.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Resolution is the viewport size in pixels.
type Resolution struct {
	Width, Height int
}

// Aspect returns width/height. A zero height yields +Inf or NaN.
func (r Resolution) Aspect() float64 {
	return float64(r.Width) / float64(r.Height)
}

// View maps the viewport onto the complex plane: Center sits in the middle of
// the screen and Height is the vertical extent of plane that is visible.
type View struct {
	Center Point
	Height float64
	Res    Resolution
}

// Width is the horizontal extent of plane that is visible.
func (v View) Width() float64 {
	return v.Res.Aspect() * v.Height
}

func (v View) ScreenToComplex(p Point) Point {
	return ScreenToComplex(p, v.Center, v.Height, v.Res)
}

func (v View) ComplexToScreen(c Point) Point {
	return ComplexToScreen(c, v.Center, v.Height, v.Res)
}

// ScreenToComplex converts a screen point to plane coordinates. The
// resolution must be non-zero.
func ScreenToComplex(p Point, center Point, height float64, res Resolution) Point {
	w := float64(res.Width)
	h := float64(res.Height)
	aspect := w / h
	return Point{
		X: aspect*height*(p.X-w/2)/w + center.X,
		// y is negated because (0,0) is the top left.
		Y: -height*(p.Y-h/2)/h + center.Y,
	}
}

// ComplexToScreen is the inverse of ScreenToComplex.
func ComplexToScreen(c Point, center Point, height float64, res Resolution) Point {
	w := float64(res.Width)
	h := float64(res.Height)
	aspect := w / h
	return Point{
		X: (c.X-center.X)*w/(aspect*height) + w/2,
		Y: -(c.Y-center.Y)*h/height + h/2,
	}
}
