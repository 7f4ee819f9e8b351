package component

import "github.com/go-gl/mathgl/mgl32"

// LocalTransform is an entity's placement relative to its parent, or to the
// world for roots.
type LocalTransform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func DefaultLocalTransform() LocalTransform {
	return LocalTransform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes translation × rotation × scale, in that order.
func (t LocalTransform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

func (t LocalTransform) Right() mgl32.Vec3   { return RightOf(t.Matrix()) }
func (t LocalTransform) Up() mgl32.Vec3      { return UpOf(t.Matrix()) }
func (t LocalTransform) Forward() mgl32.Vec3 { return ForwardOf(t.Matrix()) }

// GlobalTransform is the derived world-space matrix of an entity. Only the
// propagation system writes it.
type GlobalTransform struct {
	Matrix mgl32.Mat4
}

func IdentityGlobalTransform() GlobalTransform {
	return GlobalTransform{Matrix: mgl32.Ident4()}
}

func (g GlobalTransform) Translation() mgl32.Vec3 { return g.Matrix.Col(3).Vec3() }
func (g GlobalTransform) Right() mgl32.Vec3       { return RightOf(g.Matrix) }
func (g GlobalTransform) Up() mgl32.Vec3          { return UpOf(g.Matrix) }
func (g GlobalTransform) Forward() mgl32.Vec3     { return ForwardOf(g.Matrix) }

func RightOf(m mgl32.Mat4) mgl32.Vec3 { return m.Col(0).Vec3() }
func UpOf(m mgl32.Mat4) mgl32.Vec3    { return m.Col(1).Vec3() }

// ForwardOf returns -Z of m; cameras look down their negative Z axis.
func ForwardOf(m mgl32.Mat4) mgl32.Vec3 { return m.Col(2).Vec3().Mul(-1) }
