// Package scene defines the contract between benchmark scenes and the frame
// driver, plus the HUD overlay drawn on top of them.
package scene

import (
	"sparkbench/hal"
	"sparkbench/sparkos/gfx"
	"sparkbench/sparkos/quarkgl"
)

// Scene is one benchmark. The driver calls Update then Render once per frame
// on a single goroutine.
type Scene interface {
	Name() string

	// SetTopMargin reserves px rows at the top of the screen for the overlay.
	SetTopMargin(px int)

	// Update advances the simulation by dt seconds. dt <= 0 is a no-op.
	Update(dt float32)

	Render(c *gfx.Canvas)
}

// Env is what a Factory gets to build a scene.
type Env struct {
	Width, Height int
	Seed          uint32

	// TexturePath optionally names an image file for textured scenes.
	TexturePath string

	Logger hal.Logger
}

// Factory builds a scene. Errors are initialization failures; a running scene
// never fails.
type Factory func(env Env) (Scene, error)

// ClampDelta turns a caller-supplied dt into a safe step.
func ClampDelta(dt float32) float32 {
	if dt < 0 || dt != dt {
		return 0
	}
	return dt
}

// RenderMeshes draws s into c and reports the renderer's work as canvas
// stats, one draw call per mesh.
func RenderMeshes(c *gfx.Canvas, r *quarkgl.Renderer, s *quarkgl.Scene) {
	if c == nil || r == nil || s == nil {
		return
	}
	r.Render(c, s)
	c.AddStats(gfx.Stats{
		DrawCalls: r.Stats.Meshes,
		Vertices:  r.Stats.Vertices,
		Triangles: r.Stats.Triangles,
	})
}
