package procedural

import (
	"image/color"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/rng"
	"sparkbench/sparkos/scene"
)

const (
	lineCount = 256
	lineSpeed = 90
)

type endpoint struct {
	x, y   float32
	dx, dy float32
}

// Lines bounces line endpoints around the screen.
type Lines struct {
	w, h  float32
	top   float32
	src   *rng.Source
	ends  [lineCount][2]endpoint
	color [lineCount]color.RGBA
}

func NewLines(env scene.Env) (scene.Scene, error) {
	s := &Lines{
		w:   float32(env.Width),
		h:   float32(env.Height),
		src: rng.New(env.Seed),
	}
	for i := range s.ends {
		for k := range s.ends[i] {
			s.ends[i][k] = endpoint{
				x:  s.src.Range(0, s.w),
				y:  s.src.Range(0, s.h),
				dx: s.src.Range(-1, 1),
				dy: s.src.Range(-1, 1),
			}
		}
		s.color[i] = hueColor(float32(i) / lineCount)
	}
	return s, nil
}

func (s *Lines) Name() string { return LinesName }

func (s *Lines) SetTopMargin(px int) {
	s.top = float32(max(px, 0))
}

func (s *Lines) Update(dt float32) {
	dt = scene.ClampDelta(dt)
	if dt == 0 {
		return
	}
	step := dt * lineSpeed
	for i := range s.ends {
		for k := range s.ends[i] {
			bounce(&s.ends[i][k], step, s.top, s.w, s.h)
		}
	}
}

func bounce(e *endpoint, step, top, w, h float32) {
	e.x += e.dx * step
	e.y += e.dy * step
	if e.x < 0 {
		e.x, e.dx = -e.x, -e.dx
	}
	if e.x > w-1 {
		e.x, e.dx = 2*(w-1)-e.x, -e.dx
	}
	if e.y < top {
		e.y, e.dy = 2*top-e.y, -e.dy
	}
	if e.y > h-1 {
		e.y, e.dy = 2*(h-1)-e.y, -e.dy
	}
	e.x = clampF(e.x, 0, w-1)
	e.y = clampF(e.y, top, h-1)
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Lines) Render(c *gfx.Canvas) {
	for i := range s.ends {
		a, b := s.ends[i][0], s.ends[i][1]
		c.Line(int(a.x), int(a.y), int(b.x), int(b.y), s.color[i])
	}
}
