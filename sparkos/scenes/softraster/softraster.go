// Package softraster is the software-rasterizer benchmark: a depth-buffered,
// flat-shaded torus spinning over a particle field.
package softraster

import (
	"fmt"
	"image/color"
	"math"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/particles"
	"sparkbench/sparkos/quarkgl"
	"sparkbench/sparkos/rng"
	"sparkbench/sparkos/scene"
)

const Name = "softraster"

var background = color.RGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF}

type Scene struct {
	pool *particles.Pool

	r      *quarkgl.Renderer
	s      *quarkgl.Scene
	meshID int
	angle  float32
}

func New(env scene.Env) (scene.Scene, error) {
	pool, err := particles.New(particles.Software, env.Width, env.Height, rng.New(env.Seed))
	if err != nil {
		return nil, fmt.Errorf("softraster: %w", err)
	}

	r := quarkgl.NewRenderer(env.Width, env.Height, true)
	r.Mode = quarkgl.RenderFlat
	r.NoClear = true

	s := quarkgl.NewScene(1)
	s.Camera.Position = quarkgl.V3(0, 0.2, 3.2)
	s.Camera.Far = 20
	s.Light.Ambient = 0.18
	s.Light.Dir = quarkgl.Normalize(quarkgl.V3(-0.4, 0.9, 0.3))
	s.Light.Amount = 0.85

	mesh := newTorusMesh(1.0, 0.38, 32, 16)
	mesh.Color = quarkgl.RGB(0xFF, 0x99, 0x33)
	id := s.AddMesh(mesh)
	if id < 0 {
		return nil, fmt.Errorf("softraster: scene full")
	}
	return &Scene{pool: pool, r: r, s: s, meshID: id}, nil
}

func (s *Scene) Name() string { return Name }

func (s *Scene) SetTopMargin(px int) { s.pool.SetTopMargin(px) }

// SetWireframe switches between flat shading and edges only.
func (s *Scene) SetWireframe(on bool) {
	if on {
		s.r.Mode = quarkgl.RenderWireframe
		return
	}
	s.r.Mode = quarkgl.RenderFlat
}

func (s *Scene) Update(dt float32) {
	dt = scene.ClampDelta(dt)
	if dt == 0 {
		return
	}
	s.pool.Update(dt)
	s.angle += dt * 2.4
	s.s.SetTransform(s.meshID, quarkgl.RotateY(s.angle).Mul(quarkgl.RotateX(0.65)))
}

func (s *Scene) Render(c *gfx.Canvas) {
	c.Clear(background)
	for p := range s.pool.Visible() {
		c.BlendPoint(p.X, p.Y, 2, p.Color, p.Life)
	}
	scene.RenderMeshes(c, s.r, s.s)
}

func newTorusMesh(major, minor float32, segU, segV int) quarkgl.Mesh {
	segU = max(segU, 3)
	segV = max(segV, 3)

	verts := make([]quarkgl.Vertex, 0, segU*segV)
	indices := make([]uint16, 0, segU*segV*6)

	twoPi := float32(2 * math.Pi)
	for u := 0; u < segU; u++ {
		theta := float64(twoPi * float32(u) / float32(segU))
		ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
		for v := 0; v < segV; v++ {
			phi := float64(twoPi * float32(v) / float32(segV))
			cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))

			r := major + minor*cp
			verts = append(verts, quarkgl.Vertex{Pos: quarkgl.V3(r*ct, minor*sp, r*st)})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16((u%segU)*segV + v%segV)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0, i1 := idx(u, v), idx(u+1, v)
			i2, i3 := idx(u+1, v+1), idx(u, v+1)
			indices = append(indices, i0, i1, i2, i0, i2, i3)
		}
	}
	return quarkgl.Mesh{Vertices: verts, Indices: indices}
}
