package quarkgl

// Target is the pixel sink the renderer draws into. Implementations clip
// out-of-bounds writes.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderFlat
	RenderVertexColor
)

// Stats counts the work of the last Render call. Meshes and Triangles count
// what was submitted; Culled counts the submitted triangles rejected for
// crossing the near plane or facing away.
type Stats struct {
	Meshes    int
	Vertices  int
	Triangles int
	Culled    int
}

// Renderer is a software rasterizer. Create it once per target size and
// reuse it; Render does not allocate once the depth buffer is sized.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	// NoClear keeps the target contents so meshes can be drawn over 2D work.
	NoClear bool

	Stats Stats

	depth []float32
	w, h  int
}

// NewRenderer returns a flat-shaded renderer, with a w*h depth buffer when
// depth is set.
func NewRenderer(w, h int, depth bool) *Renderer {
	r := &Renderer{Mode: RenderFlat, Depth: depth, ClearColor: RGB(0, 0, 0)}
	if depth {
		r.sizeDepth(w, h)
	}
	return r
}

func (r *Renderer) sizeDepth(w, h int) {
	n := max(w, 0) * max(h, 0)
	if cap(r.depth) < n {
		r.depth = make([]float32, n)
	}
	r.depth = r.depth[:n]
	for i := range r.depth {
		r.depth[i] = 1
	}
}

// Render draws every enabled mesh of s into t.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	r.Stats = Stats{}
	r.w, r.h = t.Size()
	if r.w <= 0 || r.h <= 0 {
		return
	}
	if !r.NoClear {
		t.Clear(r.ClearColor)
	}
	if r.Depth {
		r.sizeDepth(r.w, r.h)
	}

	vp := s.Camera.Projection(float32(r.w) / float32(r.h)).Mul(s.Camera.View())
	for i := 0; i < s.n; i++ {
		m := &s.meshes[i]
		if !m.Enabled || len(m.Vertices) == 0 || len(m.Indices) < 3 {
			continue
		}
		r.Stats.Meshes++
		r.drawMesh(t, vp.Mul(m.Transform), m, s.Light)
	}
}

// screenVertex is a vertex after the perspective divide.
type screenVertex struct {
	x, y int
	z    float32
}

func (r *Renderer) toScreen(p Vec4) (screenVertex, bool) {
	if p.W <= 0 {
		return screenVertex{}, false
	}
	inv := 1 / p.W
	sx := (p.X*inv*0.5 + 0.5) * float32(r.w-1)
	sy := (0.5 - p.Y*inv*0.5) * float32(r.h-1)
	// NDC z in [-1, 1] maps to [0, 1].
	z := clamp01(p.Z*inv*0.5 + 0.5)
	return screenVertex{x: int(sx + 0.5), y: int(sy + 0.5), z: z}, true
}

func (r *Renderer) drawMesh(t Target, mvp Mat4, m *Mesh, light Light) {
	nv := len(m.Vertices)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		if ia >= nv || ib >= nv || ic >= nv {
			continue
		}
		va, vb, vc := &m.Vertices[ia], &m.Vertices[ib], &m.Vertices[ic]
		r.Stats.Triangles++
		r.Stats.Vertices += 3

		a, okA := r.toScreen(mvp.Apply(va.Pos))
		b, okB := r.toScreen(mvp.Apply(vb.Pos))
		c, okC := r.toScreen(mvp.Apply(vc.Pos))
		if !okA || !okB || !okC {
			r.Stats.Culled++
			continue
		}
		area := edgeFn(a.x, a.y, b.x, b.y, c.x, c.y)
		if area <= 0 && r.Mode != RenderWireframe {
			r.Stats.Culled++
			continue
		}

		col := m.Color
		if !light.Off {
			n := Normalize(Cross(vb.Pos.Sub(va.Pos), vc.Pos.Sub(va.Pos)))
			col = Shade(col, light.intensity(n))
		}

		switch r.Mode {
		case RenderWireframe:
			r.line(t, a, b, col)
			r.line(t, b, c, col)
			r.line(t, c, a, col)
		case RenderVertexColor:
			r.fill(t, a, b, c, area, va.Color, vb.Color, vc.Color, true)
		default:
			r.fill(t, a, b, c, area, col, col, col, false)
		}
	}
}

// depthPass reports whether z is nearer than the stored depth at (x, y) and
// records it when it is.
func (r *Renderer) depthPass(x, y int, z float32) bool {
	if !r.Depth {
		return true
	}
	i := y*r.w + x
	if i < 0 || i >= len(r.depth) || z >= r.depth[i] {
		return false
	}
	r.depth[i] = z
	return true
}

func (r *Renderer) line(t Target, a, b screenVertex, c Color) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx, sx := absInt(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -absInt(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
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

// fill rasterizes a positive-area triangle with barycentric depth and, when
// blend is set, barycentric color.
func (r *Renderer) fill(t Target, a, b, c screenVertex, area int, ca, cb, cc Color, blend bool) {
	minX := max(min(a.x, b.x, c.x), 0)
	maxX := min(max(a.x, b.x, c.x), r.w-1)
	minY := max(min(a.y, b.y, c.y), 0)
	maxY := min(max(a.y, b.y, c.y), r.h-1)
	if minX > maxX || minY > maxY {
		return
	}
	inv := 1 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(b.x, b.y, c.x, c.y, x, y)
			w1 := edgeFn(c.x, c.y, a.x, a.y, x, y)
			w2 := edgeFn(a.x, a.y, b.x, b.y, x, y)
			if w0|w1|w2 < 0 {
				continue
			}
			l0, l1, l2 := float32(w0)*inv, float32(w1)*inv, float32(w2)*inv
			if !r.depthPass(x, y, l0*a.z+l1*b.z+l2*c.z) {
				continue
			}
			if !blend {
				t.SetPixel(x, y, ca)
				continue
			}
			t.SetPixel(x, y, Color{
				R: lerp3(ca.R, cb.R, cc.R, l0, l1, l2),
				G: lerp3(ca.G, cb.G, cc.G, l0, l1, l2),
				B: lerp3(ca.B, cb.B, cc.B, l0, l1, l2),
				A: 0xFF,
			})
		}
	}
}

func lerp3(a, b, c uint8, l0, l1, l2 float32) uint8 {
	v := l0*float32(a) + l1*float32(b) + l2*float32(c)
	return uint8(min(max(v, 0), 255))
}

// edgeFn is twice the signed area of (x0,y0) (x1,y1) (x,y); positive when the
// point is on the inner side of a clockwise screen-space edge.
func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
