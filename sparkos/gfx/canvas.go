// Package gfx is the immediate-mode drawing backend of the benchmark scenes.
//
// A Canvas draws into an RGB565 buffer (a hal framebuffer or an offscreen
// back buffer) and tallies the work it was asked to do.
package gfx

import (
	"errors"
	"image"
	"image/color"

	"sparkbench/hal"
)

var ErrPixelFormat = errors.New("gfx: framebuffer is not RGB565")

// Stats counts submitted work. Each primitive is one draw call.
type Stats struct {
	DrawCalls int
	Vertices  int
	Triangles int
}

func (s Stats) Add(o Stats) Stats {
	return Stats{
		DrawCalls: s.DrawCalls + o.DrawCalls,
		Vertices:  s.Vertices + o.Vertices,
		Triangles: s.Triangles + o.Triangles,
	}
}

// Canvas is a clipped RGB565 drawing surface.
type Canvas struct {
	w, h   int
	stride int
	buf    []byte

	fb    hal.Framebuffer
	stats Stats
	text  *textDisplayer
}

// New returns an offscreen canvas.
func New(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return newCanvas(w, h, w*2, make([]byte, w*2*h), nil)
}

// Wrap draws directly into fb. Present forwards to fb.Present.
func Wrap(fb hal.Framebuffer) (*Canvas, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrPixelFormat
	}
	return newCanvas(fb.Width(), fb.Height(), fb.StrideBytes(), fb.Buffer(), fb), nil
}

func newCanvas(w, h, stride int, buf []byte, fb hal.Framebuffer) *Canvas {
	c := &Canvas{w: w, h: h, stride: stride, buf: buf, fb: fb}
	c.text = &textDisplayer{c: c}
	return c
}

// Size implements quarkgl.Target.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Stats returns the work counted since the last ResetStats.
func (c *Canvas) Stats() Stats { return c.stats }

func (c *Canvas) ResetStats() { c.stats = Stats{} }

// AddStats records work done by another renderer drawing into this canvas.
func (c *Canvas) AddStats(s Stats) { c.stats = c.stats.Add(s) }

func (c *Canvas) count(vertices, triangles int) {
	c.stats.DrawCalls++
	c.stats.Vertices += vertices
	c.stats.Triangles += triangles
}

// Present pushes a wrapped framebuffer to the display. Offscreen canvases
// have nothing to present.
func (c *Canvas) Present() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) offset(x, y int) int { return y*c.stride + x*2 }

func (c *Canvas) put(x, y int, p uint16) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := c.offset(x, y)
	c.buf[i] = byte(p)
	c.buf[i+1] = byte(p >> 8)
}

func (c *Canvas) get(x, y int) uint16 {
	i := c.offset(x, y)
	return uint16(c.buf[i]) | uint16(c.buf[i+1])<<8
}

// Pixel returns the color at (x, y), or transparent black when out of range.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	r, g, b := hal.RGB888(c.get(x, y))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Clear fills the whole canvas. It is not counted as a draw call.
func (c *Canvas) Clear(col color.RGBA) {
	p := hal.RGB565(col.R, col.G, col.B)
	lo, hi := byte(p), byte(p>>8)
	for y := 0; y < c.h; y++ {
		row := c.buf[y*c.stride : y*c.stride+c.w*2]
		for i := 0; i < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

// SetPixel implements quarkgl.Target. It is not counted; the 3D renderer
// reports its own work through AddStats.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	c.put(x, y, hal.RGB565(col.R, col.G, col.B))
}

// CopyFrom copies src into c when both have the same size. It is the present
// step of a double-buffered scene.
func (c *Canvas) CopyFrom(src *Canvas) {
	if src == nil || src.w != c.w || src.h != c.h {
		return
	}
	n := c.w * 2
	for y := 0; y < c.h; y++ {
		copy(c.buf[y*c.stride:y*c.stride+n], src.buf[y*src.stride:y*src.stride+n])
	}
	c.count(4, 2)
}

// RGBA returns a copy of the canvas as an RGBA image.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			r, g, b := hal.RGB888(c.get(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
