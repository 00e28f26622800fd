package space

import (
	"image/color"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/quarkgl"
)

var (
	spaceBG     = color.RGBA{R: 0x00, G: 0x00, B: 0x06, A: 0xFF}
	trailColor  = color.RGBA{R: 0xFF, G: 0x90, B: 0x30, A: 0xFF}
	droneColor  = color.RGBA{R: 0x60, G: 0xE0, B: 0xFF, A: 0xFF}
	enemyColor  = color.RGBA{R: 0xFF, G: 0x50, B: 0x70, A: 0xFF}
	playerColor = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
)

func (s *Scene) Render(c *gfx.Canvas) {
	c.Clear(spaceBG)
	for p := range s.pool.Visible() {
		c.BlendPoint(p.X, p.Y, 1, p.Color, p.Life)
	}
	for _, p := range s.trail.Points() {
		c.BlendPoint(p.X, p.Y, 2, trailColor, p.Alpha)
	}

	s.order = depthOrder(s.order, s.drones[:])
	for _, i := range s.order {
		drawWire(c, &s.drones[i], droneSize, droneColor)
	}
	s.order = depthOrder(s.order, s.enemies[:])
	for _, i := range s.order {
		drawWire(c, &s.enemies[i], enemySize, enemyColor)
	}
	drawWire(c, &s.player, playerSize, playerColor)
}

// depthOrder returns the active entities of list, far to near.
func depthOrder(dst []int, list []entity) []int {
	return quarkgl.DepthOrder(dst, len(list),
		func(i int) bool { return list[i].active },
		func(i int) float32 { return list[i].pos.Z })
}

// drawWire draws e as a pyramid wireframe pointing along +x. Far entities are
// smaller and dimmer.
func drawWire(c *gfx.Canvas, e *entity, size float32, col color.RGBA) {
	near := clampF(e.pos.Z/FarZ, 0, 1)
	scale := 0.6 + 0.4*near
	col = quarkgl.Shade(col, 0.45+0.55*near)

	verts := quarkgl.Pyramid(size)
	var pts [5]quarkgl.Point2
	for i, v := range verts {
		pts[i] = quarkgl.ProjectModel(v, e.pos, e.roll, scale)
	}
	for _, edge := range quarkgl.PyramidEdges {
		a, b := pts[edge[0]], pts[edge[1]]
		c.Line(roundInt(a.X), roundInt(a.Y), roundInt(b.X), roundInt(b.Y), col)
	}
}

func roundInt(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
