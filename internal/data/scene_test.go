package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"github.com/scenekit/scenekit/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoScene = `
active_camera: eye
entities:
  - name: eye
    camera:
      fov: 60
      z_far: 100
    transform:
      translation: [0, 4, 5]
      look_at: [0, 0, 0]
  - name: root
    transform:
      translation: [1, 0, 0]
  - name: arm
    parent: root
    transform:
      translation: [0, 1, 0]
      rotation_degrees: [0, 90, 0]
    paint:
      - box: {center: [0, 0, 0], size: [1, 1, 1], color: [1, 0, 0]}
      - quad: {size: [2, 2]}
  - name: hand
    parent: arm
    components: [lines]
    transform:
      translation: [0, 0, -1]
  - components: [name]
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndSpawnScene(t *testing.T) {
	f, err := LoadScene(writeScene(t, demoScene))
	require.NoError(t, err)
	require.Len(t, f.Entities, 5)

	c := scene.NewContext(scene.Options{}, nil)
	ids, err := f.Spawn(c, nil)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, 5, c.World.Len())

	eye, root, arm, hand := ids["eye"], ids["root"], ids["arm"], ids["hand"]
	assert.Equal(t, eye, c.Resources.ActiveCamera)

	cam, ok := scene.CameraOf(c, eye)
	require.True(t, ok)
	assert.Equal(t, float32(60), cam.FOV)
	assert.Equal(t, float32(100), cam.Perspective.ZFar)

	parent, ok := scene.ParentOf(c, hand)
	require.True(t, ok)
	assert.Equal(t, arm, parent)
	assert.ElementsMatch(t, []ecs.EntityID{root, arm, hand}, scene.Descendants(c, root))

	lines, ok := scene.LinesOf(c, arm)
	require.True(t, ok)
	assert.Len(t, lines.Items, 12)
	quads, ok := scene.QuadsOf(c, arm)
	require.True(t, ok)
	require.Len(t, quads.Items, 1)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, quads.Items[0].Color)

	scene.UpdateGlobalTransforms(c)
	gt, ok := scene.GlobalTransformComponent(c, hand)
	require.True(t, ok)
	// arm is yawed 90 degrees, so the hand's -Z offset lands on -X
	assert.True(t, gt.Translation().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5), "got %v", gt.Translation())

	local, _ := scene.LocalTransformOf(c, eye)
	want := mgl32.Vec3{0, -4, -5}.Normalize()
	assert.True(t, local.Forward().ApproxEqualThreshold(want, 1e-5))
}

func TestSpawnMatchesNormalizedNames(t *testing.T) {
	f, err := ParseScene([]byte(`
entities:
  - name: "caf\u00e9"
  - name: child
    parent: "cafe\u0301"
`))
	require.NoError(t, err)

	c := scene.NewContext(scene.Options{}, nil)
	ids, err := f.Spawn(c, nil)
	require.NoError(t, err)

	parent, ok := scene.ParentOf(c, ids["child"])
	require.True(t, ok)
	assert.Equal(t, ids["caf\u00e9"], parent)
}

func TestSpawnErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"unknown component", "entities:\n  - components: [mesh]\n", `unknown component "mesh"`},
		{"unknown parent", "entities:\n  - name: a\n    parent: b\n", `unknown parent "b"`},
		{"duplicate name", "entities:\n  - name: a\n  - name: a\n", "duplicate name"},
		{"cycle", "entities:\n  - name: a\n    parent: b\n  - name: b\n    parent: a\n", "cycle"},
		{"self parent", "entities:\n  - name: a\n    parent: a\n", "cycle"},
		{"bad vector", "entities:\n  - transform:\n      translation: [1, 2]\n", "translation"},
		{"bad projection", "entities:\n  - camera:\n      projection: fisheye\n", "fisheye"},
		{"active camera missing", "active_camera: x\nentities: []\n", "unknown active camera"},
		{"active camera not a camera", "active_camera: a\nentities:\n  - name: a\n", "no camera component"},
		{"empty paint", "entities:\n  - paint:\n      - {}\n", "empty paint entry"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseScene([]byte(tc.body))
			require.NoError(t, err)
			_, err = f.Spawn(scene.NewContext(scene.Options{}, nil), nil)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestSpawnLookAtStraightDown(t *testing.T) {
	f, err := ParseScene([]byte(`
entities:
  - name: top
    camera: {}
    transform:
      translation: [0, 5, 0]
      look_at: [0, 0, 0]
  - name: child
    parent: top
    transform:
      translation: [0, 0, -1]
`))
	require.NoError(t, err)
	c := scene.NewContext(scene.Options{}, nil)
	ids, err := f.Spawn(c, nil)
	require.NoError(t, err)

	local, _ := scene.LocalTransformOf(c, ids["top"])
	assert.True(t, local.Forward().ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5), "forward %v", local.Forward())

	scene.UpdateGlobalTransforms(c)
	gt, _ := scene.GlobalTransformComponent(c, ids["child"])
	assert.True(t, gt.Translation().ApproxEqualThreshold(mgl32.Vec3{0, 4, 0}, 1e-5), "got %v", gt.Translation())

	m, ok := scene.CameraMatricesOf(c, ids["top"])
	require.True(t, ok)
	origin := m.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -5, origin.Z(), 1e-4)
}

func TestLoadSceneErrors(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadScene(writeScene(t, "entities: {"))
	assert.ErrorContains(t, err, "parse scene")
}

func TestOrthographicCamera(t *testing.T) {
	f, err := ParseScene([]byte(`
entities:
  - name: top
    camera: {projection: orthographic, x_mag: 10, y_mag: 5, z_near: 0.1, z_far: 50}
`))
	require.NoError(t, err)
	c := scene.NewContext(scene.Options{}, nil)
	ids, err := f.Spawn(c, nil)
	require.NoError(t, err)

	cam, _ := scene.CameraOf(c, ids["top"])
	assert.Equal(t, component.ProjectionOrthographic, cam.Projection)
	assert.Equal(t, float32(10), cam.Orthographic.XMag)
}
