package data

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"github.com/scenekit/scenekit/internal/scene"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// SceneFile is a YAML scene description: a flat entity list whose hierarchy
// is expressed through parent names.
type SceneFile struct {
	ActiveCamera string        `yaml:"active_camera"`
	Entities     []EntityEntry `yaml:"entities"`
}

// EntityEntry describes one entity. Components lists extra kinds by name;
// kinds implied by other fields (name, parent, transform, camera, paint) are
// added automatically.
type EntityEntry struct {
	Name       string          `yaml:"name"`
	Parent     string          `yaml:"parent"`
	Components []string        `yaml:"components"`
	Transform  *TransformEntry `yaml:"transform"`
	Camera     *CameraEntry    `yaml:"camera"`
	Paint      []PaintEntry    `yaml:"paint"`
}

type TransformEntry struct {
	Translation []float32 `yaml:"translation"`
	// Rotation is a quaternion as [x, y, z, w].
	Rotation []float32 `yaml:"rotation"`
	// RotationDegrees is XYZ Euler angles, used when Rotation is empty.
	RotationDegrees []float32 `yaml:"rotation_degrees"`
	LookAt          []float32 `yaml:"look_at"`
	Scale           []float32 `yaml:"scale"`
}

type CameraEntry struct {
	Projection  string  `yaml:"projection"` // "perspective" (default) or "orthographic"
	FOV         float32 `yaml:"fov"`        // degrees
	AspectRatio float32 `yaml:"aspect_ratio"`
	ZNear       float32 `yaml:"z_near"`
	ZFar        float32 `yaml:"z_far"`
	XMag        float32 `yaml:"x_mag"`
	YMag        float32 `yaml:"y_mag"`
}

// PaintEntry is one primitive; exactly one of its fields is set.
type PaintEntry struct {
	Line   *LinePaint   `yaml:"line"`
	Quad   *QuadPaint   `yaml:"quad"`
	Box    *BoxPaint    `yaml:"box"`
	Sphere *SpherePaint `yaml:"sphere"`
}

type LinePaint struct {
	Start []float32 `yaml:"start"`
	End   []float32 `yaml:"end"`
	Color []float32 `yaml:"color"`
}

type QuadPaint struct {
	Offset []float32 `yaml:"offset"`
	Size   []float32 `yaml:"size"`
	Color  []float32 `yaml:"color"`
}

type BoxPaint struct {
	Center []float32 `yaml:"center"`
	Size   []float32 `yaml:"size"`
	Color  []float32 `yaml:"color"`
}

type SpherePaint struct {
	Center   []float32 `yaml:"center"`
	Radius   float32   `yaml:"radius"`
	Segments int       `yaml:"segments"`
	Color    []float32 `yaml:"color"`
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*SceneFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(raw)
}

func ParseScene(raw []byte) (*SceneFile, error) {
	var f SceneFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &f, nil
}

// Spawn creates every entity of the scene in c and returns them keyed by
// NFC-normalised name. Nothing is rolled back on error; callers discard the
// Context.
func (f *SceneFile) Spawn(c *scene.Context, log *zap.Logger) (map[string]ecs.EntityID, error) {
	if log == nil {
		log = zap.NewNop()
	}
	byName := make(map[string]ecs.EntityID, len(f.Entities))
	ids := make([]ecs.EntityID, len(f.Entities))

	for i := range f.Entities {
		e := &f.Entities[i]
		id, err := spawnEntity(c, e)
		if err != nil {
			return nil, fmt.Errorf("entity %d (%q): %w", i, e.Name, err)
		}
		ids[i] = id
		if e.Name == "" {
			continue
		}
		key := norm.NFC.String(e.Name)
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("entity %d: duplicate name %q", i, e.Name)
		}
		byName[key] = id
	}

	for i := range f.Entities {
		e := &f.Entities[i]
		if e.Parent == "" {
			continue
		}
		parent, ok := byName[norm.NFC.String(e.Parent)]
		if !ok {
			return nil, fmt.Errorf("entity %q: unknown parent %q", e.Name, e.Parent)
		}
		if !scene.SetParent(c, ids[i], parent) {
			return nil, fmt.Errorf("entity %q: parent %q would form a cycle", e.Name, e.Parent)
		}
	}

	if f.ActiveCamera != "" {
		id, ok := byName[norm.NFC.String(f.ActiveCamera)]
		if !ok {
			return nil, fmt.Errorf("unknown active camera %q", f.ActiveCamera)
		}
		if !c.World.Has(id, component.KindCamera) {
			return nil, fmt.Errorf("active camera %q has no camera component", f.ActiveCamera)
		}
		c.Resources.ActiveCamera = id
	}

	log.Info("scene spawned",
		zap.Int("entities", len(ids)),
		zap.Int("named", len(byName)),
	)
	return byName, nil
}

func spawnEntity(c *scene.Context, e *EntityEntry) (ecs.EntityID, error) {
	kinds, err := kindsOf(e)
	if err != nil {
		return ecs.NoEntity, err
	}
	id := c.Spawn()
	c.AddComponents(id, kinds)

	if e.Name != "" {
		ecs.Set(c.World, id, component.KindName, component.Name{Value: e.Name})
	}
	if e.Transform != nil {
		if err := applyTransform(c, id, e.Transform); err != nil {
			return ecs.NoEntity, fmt.Errorf("transform: %w", err)
		}
	}
	if e.Camera != nil {
		cam, err := e.Camera.build()
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("camera: %w", err)
		}
		ecs.Set(c.World, id, component.KindCamera, cam)
	}
	if len(e.Paint) > 0 {
		p, err := buildPainting(e.Paint)
		if err != nil {
			return ecs.NoEntity, fmt.Errorf("paint: %w", err)
		}
		scene.PaintEntity(c, id, p)
	}
	return id, nil
}

func kindsOf(e *EntityEntry) (ecs.Mask, error) {
	var m ecs.Mask
	for _, name := range e.Components {
		if name == "transform" {
			m = m.Union(component.MaskTransform)
			continue
		}
		k, ok := component.KindByName(name)
		if !ok {
			return m, fmt.Errorf("unknown component %q", name)
		}
		m = m.With(k)
	}
	if e.Transform != nil || e.Parent != "" {
		m = m.Union(component.MaskTransform)
	}
	if e.Camera != nil {
		m = m.Union(component.MaskCamera)
	}
	for _, p := range e.Paint {
		if p.Quad != nil {
			m = m.Union(component.MaskQuads)
		} else {
			m = m.Union(component.MaskLines)
		}
	}
	// Parent is set once every entity exists.
	return m.Without(component.KindParent), nil
}

func applyTransform(c *scene.Context, id ecs.EntityID, t *TransformEntry) error {
	local, ok := scene.LocalTransformOf(c, id)
	if !ok {
		return fmt.Errorf("entity has no local transform")
	}
	var err error
	if local.Translation, err = vec3(t.Translation, local.Translation); err != nil {
		return fmt.Errorf("translation: %w", err)
	}
	if local.Scale, err = vec3(t.Scale, local.Scale); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	switch {
	case len(t.Rotation) > 0:
		if len(t.Rotation) != 4 {
			return fmt.Errorf("rotation: want 4 components, got %d", len(t.Rotation))
		}
		local.Rotation = mgl32.Quat{
			W: t.Rotation[3],
			V: mgl32.Vec3{t.Rotation[0], t.Rotation[1], t.Rotation[2]},
		}.Normalize()
	case len(t.RotationDegrees) > 0:
		deg, err := vec3(t.RotationDegrees, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("rotation_degrees: %w", err)
		}
		local.Rotation = mgl32.AnglesToQuat(
			mgl32.DegToRad(deg.X()), mgl32.DegToRad(deg.Y()), mgl32.DegToRad(deg.Z()), mgl32.XYZ,
		)
	case len(t.LookAt) > 0:
		target, err := vec3(t.LookAt, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("look_at: %w", err)
		}
		if target.Sub(local.Translation).Len() == 0 {
			return fmt.Errorf("look_at: target equals translation")
		}
		local.Rotation = scene.LookAtRotation(local.Translation, target, mgl32.Vec3{0, 1, 0})
	}
	return nil
}

func (e *CameraEntry) build() (component.Camera, error) {
	cam := component.DefaultCamera()
	switch e.Projection {
	case "", "perspective":
		if e.FOV != 0 {
			cam.FOV = e.FOV
		}
		if e.ZNear != 0 {
			cam.Perspective.ZNear = e.ZNear
		}
		cam.Perspective.ZFar = e.ZFar
		cam.Perspective.AspectRatio = e.AspectRatio
	case "orthographic":
		if e.XMag == 0 || e.YMag == 0 || e.ZFar == e.ZNear {
			return cam, fmt.Errorf("orthographic camera needs x_mag, y_mag and distinct z planes")
		}
		cam.Projection = component.ProjectionOrthographic
		cam.Orthographic = component.OrthographicCamera{
			XMag: e.XMag, YMag: e.YMag, ZNear: e.ZNear, ZFar: e.ZFar,
		}
	default:
		return cam, fmt.Errorf("unknown projection %q", e.Projection)
	}
	return cam, nil
}

func buildPainting(entries []PaintEntry) (scene.Painting, error) {
	var p scene.Painting
	for i, e := range entries {
		if err := e.paint(&p); err != nil {
			return p, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return p, nil
}

func (e PaintEntry) paint(p *scene.Painting) error {
	switch {
	case e.Line != nil:
		start, err := vec3(e.Line.Start, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("line start: %w", err)
		}
		end, err := vec3(e.Line.End, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("line end: %w", err)
		}
		color, err := colorOf(e.Line.Color)
		if err != nil {
			return err
		}
		p.Line(start, end, color)
	case e.Quad != nil:
		offset, err := vec3(e.Quad.Offset, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("quad offset: %w", err)
		}
		if len(e.Quad.Size) != 2 {
			return fmt.Errorf("quad size: want 2 components, got %d", len(e.Quad.Size))
		}
		color, err := colorOf(e.Quad.Color)
		if err != nil {
			return err
		}
		p.Quad(offset, mgl32.Vec2{e.Quad.Size[0], e.Quad.Size[1]}, color)
	case e.Box != nil:
		center, err := vec3(e.Box.Center, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("box center: %w", err)
		}
		size, err := vec3(e.Box.Size, mgl32.Vec3{1, 1, 1})
		if err != nil {
			return fmt.Errorf("box size: %w", err)
		}
		color, err := colorOf(e.Box.Color)
		if err != nil {
			return err
		}
		p.Box(center, size, color)
	case e.Sphere != nil:
		center, err := vec3(e.Sphere.Center, mgl32.Vec3{})
		if err != nil {
			return fmt.Errorf("sphere center: %w", err)
		}
		color, err := colorOf(e.Sphere.Color)
		if err != nil {
			return err
		}
		segments := e.Sphere.Segments
		if segments == 0 {
			segments = 16
		}
		radius := e.Sphere.Radius
		if radius == 0 {
			radius = 1
		}
		p.Sphere(center, radius, segments, color)
	default:
		return fmt.Errorf("empty paint entry")
	}
	return nil
}

func vec3(v []float32, fallback mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return fallback, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return fallback, fmt.Errorf("want 3 components, got %d", len(v))
	}
}

func colorOf(v []float32) (mgl32.Vec4, error) {
	switch len(v) {
	case 0:
		return mgl32.Vec4{1, 1, 1, 1}, nil
	case 3:
		return mgl32.Vec4{v[0], v[1], v[2], 1}, nil
	case 4:
		return mgl32.Vec4{v[0], v[1], v[2], v[3]}, nil
	default:
		return mgl32.Vec4{}, fmt.Errorf("color: want 3 or 4 components, got %d", len(v))
	}
}
