package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"glfractals/camera"
)

// Both shaders map the destination pixel to the plane with the same transform
// the controllers use, then escape-time iterate with the loop capped by the
// Iterations uniform. Colouring is a cosine palette on the escape count.

const mandelbrotShader = `//kage:unit pixels

package main

var Iterations float
var CompWidth float
var CompHeight float
var CompCenterX float
var CompCenterY float
var ViewWidth float
var ViewHeight float

func toPlane(p vec2) vec2 {
	return vec2(
		CompCenterX+(p.x-ViewWidth/2)*CompWidth/ViewWidth,
		CompCenterY+(ViewHeight/2-p.y)*CompHeight/ViewHeight,
	)
}

func palette(n float) vec4 {
	if n >= Iterations {
		return vec4(0, 0, 0, 1)
	}
	t := n / Iterations
	return vec4(0.5+0.5*cos(6.28318*(t+vec3(0.0, 0.33, 0.67))), 1)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := toPlane(dstPos.xy)
	z := vec2(0)
	n := 0.0
	for i := 0; i < 4096; i++ {
		if float(i) >= Iterations {
			break
		}
		z = vec2(z.x*z.x-z.y*z.y, 2*z.x*z.y) + c
		if dot(z, z) > 4 {
			break
		}
		n += 1
	}
	return palette(n)
}
`

const juliaShader = `//kage:unit pixels

package main

var Iterations float
var CompWidth float
var CompHeight float
var CompCenterX float
var CompCenterY float
var ViewWidth float
var ViewHeight float
var SeedX float
var SeedY float

func toPlane(p vec2) vec2 {
	return vec2(
		CompCenterX+(p.x-ViewWidth/2)*CompWidth/ViewWidth,
		CompCenterY+(ViewHeight/2-p.y)*CompHeight/ViewHeight,
	)
}

func palette(n float) vec4 {
	if n >= Iterations {
		return vec4(0, 0, 0, 1)
	}
	t := n / Iterations
	return vec4(0.5+0.5*cos(6.28318*(t+vec3(0.0, 0.33, 0.67))), 1)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := vec2(SeedX, SeedY)
	z := toPlane(dstPos.xy)
	n := 0.0
	for i := 0; i < 4096; i++ {
		if float(i) >= Iterations {
			break
		}
		z = vec2(z.x*z.x-z.y*z.y, 2*z.x*z.y) + c
		if dot(z, z) > 4 {
			break
		}
		n += 1
	}
	return palette(n)
}
`

func shaderSource(kind camera.Kind) []byte {
	if kind == camera.Julia {
		return []byte(juliaShader)
	}
	return []byte(mandelbrotShader)
}

// NewFractalShader compiles the fragment program for kind.
func NewFractalShader(kind camera.Kind) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(shaderSource(kind))
	if err != nil {
		return nil, fmt.Errorf("compiling %s shader: %w", kind, err)
	}
	return s, nil
}
