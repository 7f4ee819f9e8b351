package component

import "github.com/go-gl/mathgl/mgl32"

type Line struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
	Color mgl32.Vec4
}

type Quad struct {
	Size   mgl32.Vec2
	Offset mgl32.Vec3
	Color  mgl32.Vec4
}

// Lines is the line-paint buffer drawn in the owning entity's space.
type Lines struct {
	Items []Line
}

// Quads is the quad-paint buffer drawn in the owning entity's space.
type Quads struct {
	Items []Quad
}
