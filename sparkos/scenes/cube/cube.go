// Package cube is the double-buffer benchmark: a lit cube over a particle
// field, composed in a back buffer and copied to the screen once per frame.
package cube

import (
	"fmt"
	"image/color"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/particles"
	"sparkbench/sparkos/quarkgl"
	"sparkbench/sparkos/rng"
	"sparkbench/sparkos/scene"
)

const Name = "cube"

var background = color.RGBA{R: 0x04, G: 0x06, B: 0x10, A: 0xFF}

type Scene struct {
	back *gfx.Canvas
	pool *particles.Pool

	r      *quarkgl.Renderer
	s      *quarkgl.Scene
	orbit  quarkgl.Orbit
	meshID int
	angle  float32
}

func New(env scene.Env) (scene.Scene, error) {
	src := rng.New(env.Seed)
	pool, err := particles.New(particles.DoubleBuffer, env.Width, env.Height, src)
	if err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}

	r := quarkgl.NewRenderer(env.Width, env.Height, true)
	r.Mode = quarkgl.RenderFlat
	r.NoClear = true

	s := quarkgl.NewScene(1)
	mesh := newCubeMesh(0.8)
	mesh.Color = quarkgl.RGB(0x40, 0xC0, 0xFF)
	id := s.AddMesh(mesh)
	if id < 0 {
		return nil, fmt.Errorf("cube: scene full")
	}

	sc := &Scene{
		back:   gfx.New(env.Width, env.Height),
		pool:   pool,
		r:      r,
		s:      s,
		meshID: id,
		orbit:  quarkgl.Orbit{Pitch: 0.35, Radius: 3.2},
	}
	sc.orbit.Place(&s.Camera)
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
	s.angle += dt * 1.1
	s.orbit.Turn(dt*0.4, 0)
	s.orbit.Place(&s.s.Camera)
	s.s.SetTransform(s.meshID, quarkgl.RotateY(s.angle).Mul(quarkgl.RotateX(s.angle*0.7)))
}

func (s *Scene) Render(c *gfx.Canvas) {
	b := s.back
	b.ResetStats()
	b.Clear(background)
	for p := range s.pool.Visible() {
		b.Point(p.X, p.Y, 2, p.Color)
	}
	scene.RenderMeshes(b, s.r, s.s)

	c.AddStats(b.Stats())
	c.CopyFrom(b)
}

func newCubeMesh(half float32) quarkgl.Mesh {
	h := half
	corners := [8]quarkgl.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	verts := make([]quarkgl.Vertex, len(corners))
	for i, p := range corners {
		verts[i] = quarkgl.Vertex{Pos: p}
	}
	return quarkgl.Mesh{
		Vertices: verts,
		Indices: []uint16{
			4, 5, 6, 4, 6, 7, // front
			1, 0, 3, 1, 3, 2, // back
			0, 4, 7, 0, 7, 3, // left
			5, 1, 2, 5, 2, 6, // right
			7, 6, 2, 7, 2, 3, // top
			0, 1, 5, 0, 5, 4, // bottom
		},
	}
}
