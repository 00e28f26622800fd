package quarkgl

// Light selects the shading applied to flat and wireframe meshes.
type Light struct {
	// Off draws material colors unshaded.
	Off bool

	Ambient float32 // 0..1
	Dir     Vec3    // direction the light travels
	Amount  float32 // 0..1, directional share
}

// intensity returns the light reaching a face with unit normal n.
func (l Light) intensity(n Vec3) float32 {
	amb := clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := max(-Dot(n, ld), 0)
	return clamp01(amb + d*clamp01(l.Amount))
}

// Camera describes the viewing transform. OrthoSize > 0 selects an
// orthographic projection of that half-height; otherwise FOVY is used.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVY      float32
	OrthoSize float32

	Near, Far float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) Mat4 {
	if c.OrthoSize > 0 {
		right := c.OrthoSize * aspect
		return Ortho(-right, right, -c.OrthoSize, c.OrthoSize, c.Near, c.Far)
	}
	fov := c.FOVY
	if fov == 0 {
		fov = 1
	}
	return Perspective(fov, aspect, c.Near, c.Far)
}

// Orbit places a camera on a sphere around Target.
type Orbit struct {
	Target     Vec3
	Yaw, Pitch float32
	Radius     float32
}

// Turn adds to the orbit angles.
func (o *Orbit) Turn(dYaw, dPitch float32) {
	o.Yaw += dYaw
	o.Pitch += dPitch
}

// Place moves cam onto the orbit, looking at Target.
func (o *Orbit) Place(cam *Camera) {
	if cam == nil {
		return
	}
	r := o.Radius
	if r <= 0 {
		r = 3
	}
	p := RotateY(o.Yaw).Mul(RotateX(o.Pitch)).Apply(V3(0, 0, r))
	cam.Position = o.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = o.Target
}

// Vertex is a mesh vertex. Color is used by RenderVertexColor.
type Vertex struct {
	Pos   Vec3
	Color Color
}

// Mesh is an indexed triangle list with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16

	Transform Mat4
	Color     Color
}

// Scene holds a camera, a light and a fixed number of mesh slots.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	n      int
}

// NewScene allocates a scene that holds up to maxMeshes meshes.
func NewScene(maxMeshes int) *Scene {
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Up:       V3(0, 1, 0),
			FOVY:     1,
			Near:     0.05,
			Far:      100,
		},
		Light: Light{
			Ambient: 0.25,
			Dir:     Normalize(V3(1, 1, 1)),
			Amount:  0.75,
		},
		meshes: make([]Mesh, max(maxMeshes, 0)),
	}
}

// AddMesh stores m, enabled, and returns its id, or -1 when the scene is full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil || s.n >= len(s.meshes) {
		return -1
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Identity()
	}
	if m.Color == (Color{}) {
		m.Color = RGB(0xCC, 0xCC, 0xCC)
	}
	m.Enabled = true
	id := s.n
	s.meshes[id] = m
	s.n++
	return id
}

func (s *Scene) mesh(id int) *Mesh {
	if s == nil || id < 0 || id >= s.n {
		return nil
	}
	return &s.meshes[id]
}

// SetMeshEnabled shows or hides a mesh. Unknown ids are ignored.
func (s *Scene) SetMeshEnabled(id int, on bool) {
	if m := s.mesh(id); m != nil {
		m.Enabled = on
	}
}

// SetTransform replaces the object transform of a mesh.
func (s *Scene) SetTransform(id int, t Mat4) {
	if m := s.mesh(id); m != nil {
		m.Transform = t
	}
}

// SetGeometry replaces the vertex and index slices of a mesh. The slices
// are referenced, not copied.
func (s *Scene) SetGeometry(id int, verts []Vertex, indices []uint16) {
	if m := s.mesh(id); m != nil {
		m.Vertices = verts
		m.Indices = indices
	}
}
