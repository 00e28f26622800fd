package gfx

import (
	"errors"
	"image/color"
	"testing"

	"sparkbench/hal"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
)

func countColor(c *Canvas, col color.RGBA) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Pixel(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	c := New(10, 10)
	c.Clear(black)
	c.FillRect(-5, -5, 8, 8, white)
	if got := countColor(c, white); got != 9 {
		t.Fatalf("white pixels = %d, want 9", got)
	}
	c.FillRect(8, 8, 100, 100, red)
	if got := countColor(c, red); got != 4 {
		t.Fatalf("red pixels = %d, want 4", got)
	}
	c.FillRect(50, 50, 3, 3, blue)
	if got := countColor(c, blue); got != 0 {
		t.Fatalf("off-canvas rect drew %d pixels", got)
	}
	want := Stats{DrawCalls: 3, Vertices: 12, Triangles: 6}
	if c.Stats() != want {
		t.Fatalf("Stats() = %+v, want %+v", c.Stats(), want)
	}
}

func TestLine(t *testing.T) {
	c := New(16, 16)
	c.Clear(black)
	c.Line(0, 0, 15, 15, white)
	for i := 0; i < 16; i++ {
		if c.Pixel(i, i) != white {
			t.Fatalf("diagonal pixel %d not set", i)
		}
	}
	c.Line(-20, 3, 40, 3, red)
	if got := countColor(c, red); got != 16 {
		t.Fatalf("clipped line pixels = %d, want 16", got)
	}
	if s := c.Stats(); s.DrawCalls != 2 || s.Vertices != 4 || s.Triangles != 0 {
		t.Fatalf("Stats() = %+v", s)
	}
}

func TestPointAndBlend(t *testing.T) {
	c := New(8, 8)
	c.Clear(black)
	c.Point(4, 4, 2, white)
	if got := countColor(c, white); got != 4 {
		t.Fatalf("Point pixels = %d, want 4", got)
	}

	c.Clear(black)
	c.BlendPoint(1, 1, 1, white, 0.5)
	got := c.Pixel(1, 1)
	if got.R < 0x70 || got.R > 0x90 {
		t.Fatalf("blended pixel = %v, want about half white", got)
	}
	c.BlendPoint(2, 2, 1, white, 0)
	if c.Pixel(2, 2) != black {
		t.Fatalf("zero alpha changed pixel")
	}
	c.BlendPoint(3, 3, 1, white, 1)
	if c.Pixel(3, 3) != white {
		t.Fatalf("full alpha pixel = %v", c.Pixel(3, 3))
	}
}

func TestFillTriangleWindings(t *testing.T) {
	for _, ccw := range []bool{false, true} {
		c := New(20, 20)
		c.Clear(black)
		if ccw {
			c.FillTriangle(0, 0, 0, 10, 10, 0, white)
		} else {
			c.FillTriangle(0, 0, 10, 0, 0, 10, white)
		}
		n := countColor(c, white)
		if n < 50 || n > 70 {
			t.Fatalf("ccw=%v: triangle pixels = %d, want about 60", ccw, n)
		}
		if c.Pixel(9, 9) == white {
			t.Fatalf("ccw=%v: pixel outside triangle set", ccw)
		}
	}
}

func TestCopyFrom(t *testing.T) {
	back := New(4, 4)
	back.Clear(red)
	front := New(4, 4)
	front.CopyFrom(back)
	if got := countColor(front, red); got != 16 {
		t.Fatalf("copied pixels = %d, want 16", got)
	}
	other := New(5, 4)
	other.Clear(blue)
	front.CopyFrom(other)
	if got := countColor(front, red); got != 16 {
		t.Fatalf("mismatched copy changed pixels")
	}
}

func TestRGBA(t *testing.T) {
	c := New(3, 2)
	c.Clear(black)
	c.SetPixel(2, 1, white)
	img := c.RGBA()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != white {
		t.Fatalf("RGBAAt(2,1) = %v, want white", got)
	}
}

func TestStatsReset(t *testing.T) {
	c := New(4, 4)
	c.FillRect(0, 0, 1, 1, white)
	c.AddStats(Stats{DrawCalls: 2, Vertices: 30, Triangles: 10})
	want := Stats{DrawCalls: 3, Vertices: 34, Triangles: 12}
	if c.Stats() != want {
		t.Fatalf("Stats() = %+v, want %+v", c.Stats(), want)
	}
	c.ResetStats()
	if c.Stats() != (Stats{}) {
		t.Fatalf("Stats() after reset = %+v", c.Stats())
	}
}

func TestText(t *testing.T) {
	c := New(64, 16)
	c.Clear(black)
	c.Text(1, 1, "Hi", white)
	if countColor(c, white) == 0 {
		t.Fatalf("Text drew nothing")
	}
	if s := c.Stats(); s.DrawCalls != 1 || s.Vertices != 8 {
		t.Fatalf("Stats() = %+v", s)
	}
	if TextWidth("Hi") <= 0 {
		t.Fatalf("TextWidth() = %d", TextWidth("Hi"))
	}
}

type fakeFB struct {
	w, h     int
	format   hal.PixelFormat
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return f.format }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { f.presents++; return nil }

func TestWrap(t *testing.T) {
	fb := &fakeFB{w: 4, h: 4, format: hal.PixelFormatRGB565, buf: make([]byte, 32)}
	c, err := Wrap(fb)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	c.SetPixel(1, 0, white)
	if fb.buf[2] != 0xFF || fb.buf[3] != 0xFF {
		t.Fatalf("framebuffer bytes = %x, want white at pixel 1", fb.buf[:4])
	}
	if err := c.Present(); err != nil || fb.presents != 1 {
		t.Fatalf("Present() = %v, presents = %d", err, fb.presents)
	}

	if _, err := Wrap(&fakeFB{format: 0}); !errors.Is(err, ErrPixelFormat) {
		t.Fatalf("Wrap(bad format) error = %v", err)
	}
	if _, err := Wrap(nil); !errors.Is(err, ErrPixelFormat) {
		t.Fatalf("Wrap(nil) error = %v", err)
	}
}
