package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
)

// Painting accumulates primitives before they are written to an entity.
type Painting struct {
	Lines []component.Line
	Quads []component.Quad
}

func (p *Painting) Line(start, end mgl32.Vec3, color mgl32.Vec4) {
	p.Lines = append(p.Lines, component.Line{Start: start, End: end, Color: color})
}

func (p *Painting) Quad(offset mgl32.Vec3, size mgl32.Vec2, color mgl32.Vec4) {
	p.Quads = append(p.Quads, component.Quad{Offset: offset, Size: size, Color: color})
}

// Box paints the twelve edges of an axis-aligned box.
func (p *Painting) Box(center, size mgl32.Vec3, color mgl32.Vec4) {
	h := size.Mul(0.5)
	corner := func(sx, sy, sz float32) mgl32.Vec3 {
		return center.Add(mgl32.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()})
	}
	p000, p001 := corner(-1, -1, -1), corner(-1, -1, 1)
	p010, p011 := corner(-1, 1, -1), corner(-1, 1, 1)
	p100, p101 := corner(1, -1, -1), corner(1, -1, 1)
	p110, p111 := corner(1, 1, -1), corner(1, 1, 1)

	// bottom
	p.Line(p000, p100, color)
	p.Line(p100, p101, color)
	p.Line(p101, p001, color)
	p.Line(p001, p000, color)
	// top
	p.Line(p010, p110, color)
	p.Line(p110, p111, color)
	p.Line(p111, p011, color)
	p.Line(p011, p010, color)
	// verticals
	p.Line(p000, p010, color)
	p.Line(p100, p110, color)
	p.Line(p101, p111, color)
	p.Line(p001, p011, color)
}

// Sphere paints a wireframe sphere of meridians and parallels.
func (p *Painting) Sphere(center mgl32.Vec3, radius float32, segments int, color mgl32.Vec4) {
	if segments < 2 {
		return
	}
	step := 2 * math.Pi / float64(segments)
	circle := func(j int) (float32, float32) {
		a := float64(j) * step
		return float32(math.Cos(a)), float32(math.Sin(a))
	}

	for i := 0; i < segments; i++ {
		phi := float32(float64(i) * math.Pi / float64(segments))
		rot := mgl32.HomogRotate3DY(phi)
		for j := 0; j < segments; j++ {
			c1, s1 := circle(j)
			c2, s2 := circle(j + 1)
			a := rot.Mul4x1(mgl32.Vec4{c1 * radius, s1 * radius, 0, 1}).Vec3()
			b := rot.Mul4x1(mgl32.Vec4{c2 * radius, s2 * radius, 0, 1}).Vec3()
			p.Line(center.Add(a), center.Add(b), color)
		}
	}

	latSegments := segments / 2
	for i := 1; i < latSegments; i++ {
		phi := float64(i) * math.Pi / float64(latSegments)
		r := radius * float32(math.Sin(phi))
		y := radius * float32(math.Cos(phi))
		for j := 0; j < segments; j++ {
			c1, s1 := circle(j)
			c2, s2 := circle(j + 1)
			p.Line(
				center.Add(mgl32.Vec3{c1 * r, y, s1 * r}),
				center.Add(mgl32.Vec3{c2 * r, y, s2 * r}),
				color,
			)
		}
	}
}

// PaintEntity replaces the entity's Lines and Quads buffers with the painting.
// Buffers the entity does not carry are left alone.
func PaintEntity(c *Context, id ecs.EntityID, painting Painting) {
	if lines, ok := LinesOf(c, id); ok {
		lines.Items = painting.Lines
	}
	if quads, ok := QuadsOf(c, id); ok {
		quads.Items = painting.Quads
	}
}
