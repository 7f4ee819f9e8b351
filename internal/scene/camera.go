package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
)

// FallbackAspectRatio is used for projections while no viewport exists.
const FallbackAspectRatio float32 = 4.0 / 3.0

const parallelEpsilon = 1e-6

type CameraMatrices struct {
	Position   mgl32.Vec3
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

// NthCamera returns the index-th camera entity, in query order.
func NthCamera(c *Context, index int) (ecs.EntityID, bool) {
	return c.World.QueryNth(component.MaskCamera, index)
}

// CameraMatricesOf derives view and projection for a camera entity. It needs
// Camera, LocalTransform, and GlobalTransform on the entity.
func CameraMatricesOf(c *Context, id ecs.EntityID) (CameraMatrices, bool) {
	cam, ok := CameraOf(c, id)
	if !ok {
		return CameraMatrices{}, false
	}
	local, ok := LocalTransformOf(c, id)
	if !ok {
		return CameraMatrices{}, false
	}
	global, ok := GlobalTransformComponent(c, id)
	if !ok {
		return CameraMatrices{}, false
	}

	rotation := local.Rotation.Normalize()
	position := global.Translation()
	target := position.Add(rotation.Rotate(mgl32.Vec3{0, 0, -1}))
	up := rotation.Rotate(mgl32.Vec3{0, 1, 0})

	aspect, ok := ViewportAspectRatio(c)
	if !ok {
		aspect = FallbackAspectRatio
	}
	return CameraMatrices{
		Position:   position,
		Projection: cam.ProjectionMatrix(aspect),
		View:       mgl32.LookAtV(position, target, up),
	}, true
}

func ActiveCameraMatrices(c *Context) (CameraMatrices, bool) {
	if c.Resources.ActiveCamera.IsZero() {
		return CameraMatrices{}, false
	}
	return CameraMatricesOf(c, c.Resources.ActiveCamera)
}

func NthCameraMatrices(c *Context, index int) (CameraMatrices, bool) {
	id, ok := NthCamera(c, index)
	if !ok {
		return CameraMatrices{}, false
	}
	return CameraMatricesOf(c, id)
}

// LookAtRotation returns the rotation that points -Z from eye toward target
// with +Y kept as close to up as possible. When the view direction is
// parallel to up, -Z (or +X if forward lies on Z) stands in for up.
func LookAtRotation(eye, target, up mgl32.Vec3) mgl32.Quat {
	forward := target.Sub(eye).Normalize()
	up = up.Normalize()
	if float32(math.Abs(float64(forward.Dot(up)))) > 1-parallelEpsilon {
		up = mgl32.Vec3{0, 0, -1}
		if float32(math.Abs(float64(forward.Z()))) > 0.9 {
			up = mgl32.Vec3{1, 0, 0}
		}
	}
	right := forward.Cross(up).Normalize()
	newUp := right.Cross(forward)
	back := forward.Mul(-1)
	m := mgl32.Mat4FromCols(
		right.Vec4(0),
		newUp.Vec4(0),
		back.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	return mgl32.Mat4ToQuat(m).Normalize()
}

// InitializeCameraTransform places a camera at (0, 4, 5) looking at the origin.
func InitializeCameraTransform(c *Context, id ecs.EntityID) {
	local, ok := LocalTransformOf(c, id)
	if !ok {
		return
	}
	local.Translation = mgl32.Vec3{0, 4, 5}
	local.Rotation = LookAtRotation(local.Translation, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// EnsureCameraTransforms gives every camera lacking a LocalTransform a default
// one looking at the origin, plus a GlobalTransform for propagation. When no
// camera is active yet, the first camera becomes active.
func EnsureCameraTransforms(c *Context) int {
	var missing []ecs.EntityID
	c.World.Each(component.MaskCamera, func(id ecs.EntityID) {
		if !c.World.Has(id, component.KindLocalTransform) {
			missing = append(missing, id)
		}
	})
	for _, id := range missing {
		c.World.AddComponents(id, component.MaskTransform)
		InitializeCameraTransform(c, id)
	}
	if !c.World.Alive(c.Resources.ActiveCamera) {
		c.Resources.ActiveCamera = ecs.NoEntity
		if first, ok := NthCamera(c, 0); ok {
			c.Resources.ActiveCamera = first
		}
	}
	return len(missing)
}

// CameraControls tunes keyboard and mouse camera movement.
type CameraControls struct {
	MoveSpeed       float32 // units per second
	LookSensitivity float32 // radians per pixel per second
	PitchLimit      float32 // radians
	ForwardKey      string
	BackwardKey     string
	LeftKey         string
	RightKey        string
	UpKey           string
}

func DefaultCameraControls() CameraControls {
	return CameraControls{
		MoveSpeed:       10,
		LookSensitivity: 1,
		PitchLimit:      mgl32.DegToRad(89),
		ForwardKey:      "KeyW",
		BackwardKey:     "KeyS",
		LeftKey:         "KeyA",
		RightKey:        "KeyD",
		UpKey:           "Space",
	}
}

// MoveActiveCamera translates the active camera along its local axes from the
// held movement keys.
func MoveActiveCamera(c *Context, controls CameraControls) {
	id := c.Resources.ActiveCamera
	if id.IsZero() || c.Resources.UserInterface.WantsKeyboard {
		return
	}
	local, ok := LocalTransformOf(c, id)
	if !ok {
		return
	}
	keys := &c.Resources.Input.Keyboard
	speed := controls.MoveSpeed * c.Resources.Window.DeltaSeconds()

	forward, right, up := local.Forward(), local.Right(), local.Up()
	if keys.IsKeyPressed(controls.ForwardKey) {
		local.Translation = local.Translation.Add(forward.Mul(speed))
	}
	if keys.IsKeyPressed(controls.BackwardKey) {
		local.Translation = local.Translation.Sub(forward.Mul(speed))
	}
	if keys.IsKeyPressed(controls.LeftKey) {
		local.Translation = local.Translation.Sub(right.Mul(speed))
	}
	if keys.IsKeyPressed(controls.RightKey) {
		local.Translation = local.Translation.Add(right.Mul(speed))
	}
	if keys.IsKeyPressed(controls.UpKey) {
		local.Translation = local.Translation.Add(up.Mul(speed))
	}
}

// LookActiveCamera orbits the active camera while the right button is held and
// pans it while the middle button is held.
func LookActiveCamera(c *Context, controls CameraControls) {
	id := c.Resources.ActiveCamera
	if id.IsZero() || c.Resources.UserInterface.WantsPointer {
		return
	}
	local, ok := LocalTransformOf(c, id)
	if !ok {
		return
	}
	mouse := &c.Resources.Input.Mouse
	delta := mouse.PositionDelta.Mul(-c.Resources.Window.DeltaSeconds() * controls.LookSensitivity)
	right, up := local.Right(), local.Up()

	if mouse.State.Contains(RightClicked) {
		yaw := mgl32.QuatRotate(delta.X(), mgl32.Vec3{0, 1, 0})
		local.Rotation = yaw.Mul(local.Rotation)

		currentPitch := float32(math.Asin(float64(mgl32.Clamp(local.Forward().Y(), -1, 1))))
		newPitch := currentPitch + delta.Y()
		if float32(math.Abs(float64(newPitch))) <= controls.PitchLimit {
			pitch := mgl32.QuatRotate(delta.Y(), mgl32.Vec3{1, 0, 0})
			local.Rotation = local.Rotation.Mul(pitch)
		}
	}

	if mouse.State.Contains(MiddleClicked) {
		local.Translation = local.Translation.Add(right.Mul(delta.X())).Add(up.Mul(delta.Y()))
	}
}
