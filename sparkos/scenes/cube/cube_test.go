package cube

import (
	"testing"

	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/scene"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s, err := New(scene.Env{Width: 96, Height: 96, Seed: 7})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s.(*Scene)
}

func TestRenderCopiesBackBuffer(t *testing.T) {
	s := newTestScene(t)
	c := gfx.New(96, 96)
	s.Update(1.0 / 30)
	s.Render(c)

	if c.Pixel(48, 48) == background {
		t.Fatalf("cube not visible at the center")
	}
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			if c.Pixel(x, y) != s.back.Pixel(x, y) {
				t.Fatalf("front differs from back at (%d, %d)", x, y)
			}
		}
	}

	st := c.Stats()
	if st.Triangles < 2 || st.DrawCalls < 2 {
		t.Fatalf("Stats() = %+v, want mesh and copy counted", st)
	}
}

func TestTopMargin(t *testing.T) {
	s := newTestScene(t)
	s.SetTopMargin(30)
	for i := 0; i < 20; i++ {
		s.Update(0.05)
	}
	for p := range s.pool.Visible() {
		if p.Y < 30 {
			t.Fatalf("particle drawn under the overlay: %+v", p)
		}
	}
}

func TestUpdateZeroDt(t *testing.T) {
	s := newTestScene(t)
	before := s.angle
	s.Update(0)
	s.Update(-1)
	if s.angle != before {
		t.Fatalf("angle changed on dt <= 0")
	}
	if s.Name() != Name {
		t.Fatalf("Name() = %q", s.Name())
	}
}
