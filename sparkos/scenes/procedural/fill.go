// Package procedural holds the fill-rate, texture and line benchmarks.
package procedural

import (
	"image/color"
	"math"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/scene"
)

const (
	FillName    = "fill"
	TextureName = "texture"
	LinesName   = "lines"
)

const fillCells = 8

// Fill covers the screen with animated solid rectangles every frame.
type Fill struct {
	w, h int
	top  int
	t    float32
}

func NewFill(env scene.Env) (scene.Scene, error) {
	return &Fill{w: env.Width, h: env.Height}, nil
}

func (f *Fill) Name() string { return FillName }

func (f *Fill) SetTopMargin(px int) { f.top = max(px, 0) }

func (f *Fill) Update(dt float32) { f.t += scene.ClampDelta(dt) }

func (f *Fill) Render(c *gfx.Canvas) {
	area := f.h - f.top
	if area <= 0 {
		return
	}
	cw := (f.w + fillCells - 1) / fillCells
	ch := (area + fillCells - 1) / fillCells
	for j := 0; j < fillCells; j++ {
		for i := 0; i < fillCells; i++ {
			hue := f.t*0.25 + float32(i+j)/(2*fillCells)
			c.FillRect(i*cw, f.top+j*ch, cw, ch, hueColor(hue))
		}
	}
}

// hueColor maps h (wrapping at 1) onto a saturated color wheel.
func hueColor(h float32) color.RGBA {
	h -= float32(math.Floor(float64(h)))
	x := h * 6
	seg := int(x)
	f := x - float32(seg)
	up := uint8(f * 255)
	down := 255 - up
	switch seg {
	case 0:
		return color.RGBA{R: 255, G: up, A: 255}
	case 1:
		return color.RGBA{R: down, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: up, A: 255}
	case 3:
		return color.RGBA{G: down, B: 255, A: 255}
	case 4:
		return color.RGBA{R: up, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: down, A: 255}
	}
}
