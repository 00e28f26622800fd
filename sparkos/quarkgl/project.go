package quarkgl

// DepthBias is the share of an entity's depth folded into its model-space z
// before rotation. It is a linear offset, not a perspective divide.
const DepthBias float32 = 0.08

// Point2 is a projected screen-space point.
type Point2 struct {
	X, Y float32
}

// RotateRoll rotates v about the roll (x) axis by angle radians.
// Only y and z change.
func RotateRoll(v Vec3, angle float32) Vec3 {
	c, s := sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// Project places v on screen relative to an origin. z does not contribute.
func Project(v Vec3, originX, originY float32) Point2 {
	return Point2{X: originX + v.X, Y: originY + v.Y}
}

// ProjectModel projects a model-space vertex of an entity at pos with the given
// roll. pos.Z is folded into the vertex z (scaled by DepthBias) before the
// rotation so that depth shifts the apparent tilt of the wireframe.
func ProjectModel(m Vec3, pos Vec3, roll float32, scale float32) Point2 {
	m.Z += pos.Z * DepthBias
	r := RotateRoll(m, roll)
	return Project(r.Mul(scale), pos.X, pos.Y)
}

// Edge is a pair of vertex indices.
type Edge [2]uint8

// PyramidEdges lists the wireframe edges of the vertices returned by Pyramid:
// four apex spokes and the base square.
var PyramidEdges = [8]Edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {2, 3}, {3, 4}, {4, 1},
}

// Pyramid returns the model-space vertices of a pyramid pointing along +x:
// the apex followed by the four base corners.
func Pyramid(size float32) [5]Vec3 {
	h := size / 2
	return [5]Vec3{
		{X: size, Y: 0, Z: 0},
		{X: -h, Y: -h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: h, Z: h},
		{X: -h, Y: -h, Z: h},
	}
}
