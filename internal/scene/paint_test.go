package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = mgl32.Vec4{1, 1, 1, 1}

func TestBoxEdges(t *testing.T) {
	var p Painting
	p.Box(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 2, 2}, white)

	require.Len(t, p.Lines, 12)
	for _, l := range p.Lines {
		for _, v := range []mgl32.Vec3{l.Start, l.End} {
			assert.InDelta(t, 1, abs32(v.X()-1), eps)
			assert.InDelta(t, 1, abs32(v.Y()), eps)
			assert.InDelta(t, 1, abs32(v.Z()), eps)
		}
		// each edge runs along exactly one axis
		d := l.End.Sub(l.Start)
		assert.InDelta(t, 2, d.Len(), eps)
	}
}

func TestSphereLinesOnSurface(t *testing.T) {
	var p Painting
	center := mgl32.Vec3{0, 2, 0}
	p.Sphere(center, 3, 4, white)

	// four meridians of four segments plus one parallel
	require.Len(t, p.Lines, 20)
	for _, l := range p.Lines {
		assert.InDelta(t, 3, l.Start.Sub(center).Len(), 1e-4)
		assert.InDelta(t, 3, l.End.Sub(center).Len(), 1e-4)
	}

	var none Painting
	none.Sphere(center, 1, 1, white)
	assert.Empty(t, none.Lines)
}

func TestPaintEntity(t *testing.T) {
	c := newTestContext(t)
	e := c.Spawn()
	c.AddComponents(e, component.MaskLines)

	var p Painting
	p.Line(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, white)
	p.Quad(mgl32.Vec3{}, mgl32.Vec2{1, 1}, white)
	PaintEntity(c, e, p)

	lines, ok := LinesOf(c, e)
	require.True(t, ok)
	assert.Equal(t, p.Lines, lines.Items)
	assert.False(t, c.World.Has(e, component.KindQuads), "painting must not add buffers")
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
