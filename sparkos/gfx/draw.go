package gfx

import (
	"image/color"

	"sparkbench/hal"
)

// FillRect fills the clipped rectangle [x, x+w) x [y, y+h).
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	c.count(4, 2)
	c.fill(x, y, w, h, hal.RGB565(col.R, col.G, col.B))
}

func (c *Canvas) fill(x, y, w, h int, p uint16) {
	x0 := clampInt(x, 0, c.w)
	y0 := clampInt(y, 0, c.h)
	x1 := clampInt(x+w, 0, c.w)
	y1 := clampInt(y+h, 0, c.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	lo, hi := byte(p), byte(p>>8)
	for yy := y0; yy < y1; yy++ {
		row := c.buf[c.offset(x0, yy):c.offset(x1, yy)]
		for i := 0; i < len(row); i += 2 {
			row[i] = lo
			row[i+1] = hi
		}
	}
}

// Line draws a 1px Bresenham line. Off-canvas pixels are skipped.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	c.count(2, 0)
	p := hal.RGB565(col.R, col.G, col.B)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.put(x0, y0, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Point draws a size x size square centered on (x, y).
func (c *Canvas) Point(x, y float32, size int, col color.RGBA) {
	c.count(4, 2)
	if size < 1 {
		size = 1
	}
	px, py := pointOrigin(x, y, size)
	c.fill(px, py, size, size, hal.RGB565(col.R, col.G, col.B))
}

// BlendPoint is Point with alpha in [0, 1] mixed over the existing pixels.
func (c *Canvas) BlendPoint(x, y float32, size int, col color.RGBA, alpha float32) {
	c.count(4, 2)
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		if size < 1 {
			size = 1
		}
		px, py := pointOrigin(x, y, size)
		c.fill(px, py, size, size, hal.RGB565(col.R, col.G, col.B))
		return
	}
	if size < 1 {
		size = 1
	}
	a := uint32(alpha * 256)
	px, py := pointOrigin(x, y, size)
	x0, y0 := clampInt(px, 0, c.w), clampInt(py, 0, c.h)
	x1, y1 := clampInt(px+size, 0, c.w), clampInt(py+size, 0, c.h)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			r, g, b := hal.RGB888(c.get(xx, yy))
			c.put(xx, yy, hal.RGB565(mix(r, col.R, a), mix(g, col.G, a), mix(b, col.B, a)))
		}
	}
}

// FillTriangle fills a triangle of either winding.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col color.RGBA) {
	c.count(3, 1)
	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	minX := clampInt(min(x0, x1, x2), 0, c.w-1)
	maxX := clampInt(max(x0, x1, x2), 0, c.w-1)
	minY := clampInt(min(y0, y1, y2), 0, c.h-1)
	maxY := clampInt(max(y0, y1, y2), 0, c.h-1)
	p := hal.RGB565(col.R, col.G, col.B)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if edge(x1, y1, x2, y2, x, y) < 0 ||
				edge(x2, y2, x0, y0, x, y) < 0 ||
				edge(x0, y0, x1, y1, x, y) < 0 {
				continue
			}
			c.put(x, y, p)
		}
	}
}

func pointOrigin(x, y float32, size int) (int, int) {
	half := float32(size) / 2
	return floorInt(x - half + 0.5), floorInt(y - half + 0.5)
}

func floorInt(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

func mix(dst, src uint8, a uint32) uint8 {
	return uint8((uint32(src)*a + uint32(dst)*(256-a)) >> 8)
}

func edge(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
