package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type ProjectionKind uint8

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Camera marks an entity as a viewpoint. FOV is in degrees and overrides the
// perspective's vertical field of view.
type Camera struct {
	Projection   ProjectionKind
	Perspective  PerspectiveCamera
	Orthographic OrthographicCamera
	FOV          float32
}

func DefaultCamera() Camera {
	return Camera{
		Projection: ProjectionPerspective,
		Perspective: PerspectiveCamera{
			YFov:  mgl32.DegToRad(90),
			ZNear: 0.01,
		},
		FOV: 45,
	}
}

// ProjectionMatrix returns the clip-space projection for the given viewport
// aspect ratio. Depth maps to [0, 1].
func (c Camera) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	switch c.Projection {
	case ProjectionOrthographic:
		return c.Orthographic.Matrix()
	default:
		p := c.Perspective
		p.YFov = mgl32.DegToRad(c.FOV)
		return p.Matrix(aspectRatio)
	}
}

// PerspectiveCamera is a right-handed perspective projection. A zero
// AspectRatio follows the viewport; a zero ZFar means an infinite far plane.
type PerspectiveCamera struct {
	AspectRatio float32
	YFov        float32
	ZFar        float32
	ZNear       float32
}

func (p PerspectiveCamera) Matrix(viewportAspectRatio float32) mgl32.Mat4 {
	aspect := p.AspectRatio
	if aspect == 0 {
		aspect = viewportAspectRatio
	}
	f := float32(1 / math.Tan(float64(p.YFov)/2))

	var m mgl32.Mat4
	m[0] = f / aspect
	m[5] = f
	m[11] = -1
	if p.ZFar == 0 {
		m[10] = -1
		m[14] = -p.ZNear
		return m
	}
	m[10] = p.ZFar / (p.ZNear - p.ZFar)
	m[14] = -(p.ZFar * p.ZNear) / (p.ZFar - p.ZNear)
	return m
}

// OrthographicCamera uses glTF conventions: XMag and YMag are half extents.
type OrthographicCamera struct {
	XMag  float32
	YMag  float32
	ZFar  float32
	ZNear float32
}

func (o OrthographicCamera) Matrix() mgl32.Mat4 {
	zSum := o.ZNear + o.ZFar
	zDiff := o.ZNear - o.ZFar
	m := mgl32.Ident4()
	m[0] = 1 / o.XMag
	m[5] = 1 / o.YMag
	m[10] = 2 / zDiff
	m[14] = zSum / zDiff
	return m
}
