// Package batched is the accelerated-path benchmark. Instead of one draw
// call per particle it rebuilds a single vertex-colored quad mesh every frame
// and submits it once, the way a GL vertex array would be.
package batched

import (
	"fmt"
	"image/color"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/particles"
	"sparkbench/sparkos/quarkgl"
	"sparkbench/sparkos/rng"
	"sparkbench/sparkos/scene"
)

const (
	Name = "batched"

	quadHalf = 1.5
)

var background = color.RGBA{R: 0x02, G: 0x02, B: 0x08, A: 0xFF}

// Scene draws the particle pool as one vertex-colored quad mesh per frame.
type Scene struct {
	w, h float32
	pool *particles.Pool

	r      *quarkgl.Renderer
	s      *quarkgl.Scene
	meshID int

	verts   []quarkgl.Vertex
	indices []uint16
}

func New(env scene.Env) (scene.Scene, error) {
	pool, err := particles.New(particles.Batched, env.Width, env.Height, rng.New(env.Seed))
	if err != nil {
		return nil, fmt.Errorf("batched: %w", err)
	}
	n := pool.Cap()
	if n*4 > 1<<16 {
		return nil, fmt.Errorf("batched: %d particles exceed 16-bit indices", n)
	}

	r := quarkgl.NewRenderer(env.Width, env.Height, false)
	r.Mode = quarkgl.RenderVertexColor
	r.ClearColor = background

	s := quarkgl.NewScene(1)
	s.Light.Off = true
	s.Camera = quarkgl.Camera{
		Position:  quarkgl.V3(0, 0, 1),
		Target:    quarkgl.V3(0, 0, 0),
		Up:        quarkgl.V3(0, 1, 0),
		OrthoSize: float32(env.Height) / 2,
		Near:      0.1,
		Far:       10,
	}

	sc := &Scene{
		w:       float32(env.Width),
		h:       float32(env.Height),
		pool:    pool,
		r:       r,
		s:       s,
		verts:   make([]quarkgl.Vertex, 0, n*4),
		indices: make([]uint16, 0, n*6),
	}
	sc.meshID = s.AddMesh(quarkgl.Mesh{})
	if sc.meshID < 0 {
		return nil, fmt.Errorf("batched: scene full")
	}
	return sc, nil
}

func (s *Scene) Name() string { return Name }

func (s *Scene) SetTopMargin(px int) { s.pool.SetTopMargin(px) }

func (s *Scene) Update(dt float32) {
	dt = scene.ClampDelta(dt)
	if dt == 0 {
		return
	}
	s.pool.Update(dt)
}

// buildBatch refills the vertex and index arrays from the visible particles.
// Screen coordinates are mapped onto the ortho camera with +y up.
func (s *Scene) buildBatch() {
	s.verts = s.verts[:0]
	s.indices = s.indices[:0]
	cx, cy := s.w/2, s.h/2
	for p := range s.pool.Visible() {
		x := p.X - cx
		y := cy - p.Y
		col := quarkgl.Shade(p.Color, 0.35+0.65*p.Life)
		base := uint16(len(s.verts))
		s.verts = append(s.verts,
			quarkgl.Vertex{Pos: quarkgl.V3(x-quadHalf, y-quadHalf, 0), Color: col},
			quarkgl.Vertex{Pos: quarkgl.V3(x+quadHalf, y-quadHalf, 0), Color: col},
			quarkgl.Vertex{Pos: quarkgl.V3(x+quadHalf, y+quadHalf, 0), Color: col},
			quarkgl.Vertex{Pos: quarkgl.V3(x-quadHalf, y+quadHalf, 0), Color: col},
		)
		s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
	}
	s.s.SetGeometry(s.meshID, s.verts, s.indices)
}

func (s *Scene) Render(c *gfx.Canvas) {
	s.buildBatch()
	scene.RenderMeshes(c, s.r, s.s)
}
