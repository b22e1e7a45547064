package canvas

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestScreenToComplexCenter(t *testing.T) {
	res := Resolution{Width: 800, Height: 600}
	center := Point{X: -0.5, Y: 0.25}

	got := ScreenToComplex(Point{X: 400, Y: 300}, center, 2.5, res)
	if !got.Near(center, eps) {
		t.Errorf("Expected screen center to map to %v, got %v", center, got)
	}
}

func TestScreenToComplexCorners(t *testing.T) {
	tests := []struct {
		name   string
		res    Resolution
		center Point
		height float64
		in     Point
		want   Point
	}{
		{
			name:   "square top-left",
			res:    Resolution{Width: 100, Height: 100},
			height: 2,
			in:     Point{X: 0, Y: 0},
			want:   Point{X: -1, Y: 1},
		},
		{
			name:   "square bottom-right",
			res:    Resolution{Width: 100, Height: 100},
			height: 2,
			in:     Point{X: 100, Y: 100},
			want:   Point{X: 1, Y: -1},
		},
		{
			name:   "wide top-right",
			res:    Resolution{Width: 200, Height: 100},
			height: 2,
			in:     Point{X: 200, Y: 0},
			want:   Point{X: 2, Y: 1},
		},
		{
			name:   "negative center",
			res:    Resolution{Width: 100, Height: 100},
			center: Point{X: -3, Y: -4},
			height: 1,
			in:     Point{X: 75, Y: 25},
			want:   Point{X: -2.75, Y: -3.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToComplex(tt.in, tt.center, tt.height, tt.res)
			if !got.Near(tt.want, eps) {
				t.Errorf("ScreenToComplex(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScreenYAxisIsInverted(t *testing.T) {
	v := View{Height: 2.5, Res: Resolution{Width: 640, Height: 480}}
	upper := v.ScreenToComplex(Point{X: 320, Y: 100})
	lower := v.ScreenToComplex(Point{X: 320, Y: 400})
	if upper.Y <= lower.Y {
		t.Errorf("Expected higher screen point to have larger imaginary part, got %v and %v", upper.Y, lower.Y)
	}
}

func TestComplexToScreenRoundTrip(t *testing.T) {
	v := View{Center: Point{X: 0.3, Y: -1.2}, Height: 0.004, Res: Resolution{Width: 1920, Height: 1080}}
	for _, p := range []Point{{0, 0}, {17, 900}, {1919, 1}, {960, 540}} {
		back := v.ComplexToScreen(v.ScreenToComplex(p))
		if !back.Near(p, 1e-6) {
			t.Errorf("Round trip of %v gave %v", p, back)
		}
	}
}

func TestViewWidth(t *testing.T) {
	v := View{Height: 2.5, Res: Resolution{Width: 1920, Height: 1080}}
	want := 2.5 * 1920.0 / 1080.0
	if math.Abs(v.Width()-want) > eps {
		t.Errorf("Expected width %v, got %v", want, v.Width())
	}
}

func TestPointString(t *testing.T) {
	got := Point{X: 1, Y: -0.00025}.String()
	want := "1.000000e+00, -2.500000e-04"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
