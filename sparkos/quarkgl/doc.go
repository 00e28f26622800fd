// Package quarkgl provides a minimal, predictable software 3D engine for the
// benchmark scenes.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Rasterization → Target.
//
// The renderer is software-only and draws into a caller-provided Target. It
// avoids allocations in the render hot path and reports per-frame counts in
// Renderer.Stats.
//
// The package also carries the lightweight wireframe path used by the space
// scene: RotateRoll, ProjectModel and DepthOrder operate on single points and
// index lists rather than meshes.
//
// All math is float32.
package quarkgl
