package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// LineHeight is the vertical advance of one line of Text.
	LineHeight = 12

	textAscent = 9
)

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Text draws s with its top-left corner at (x, y). It counts one draw call
// and a quad per glyph.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	n := 0
	for range s {
		n++
	}
	c.stats.DrawCalls++
	c.stats.Vertices += 4 * n
	c.stats.Triangles += 2 * n
	if n == 0 {
		return
	}
	tinyfont.WriteLine(c.text, font, int16(x), int16(y+textAscent), s, col)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

// textDisplayer lets tinyfont draw into a Canvas.
type textDisplayer struct {
	c *Canvas
}

var _ drivers.Displayer = (*textDisplayer)(nil)

func (d *textDisplayer) Size() (x, y int16) {
	return int16(d.c.w), int16(d.c.h)
}

func (d *textDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.c.SetPixel(int(x), int(y), c)
}

func (d *textDisplayer) Display() error { return nil }
