package scene

import (
	"testing"

	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(Options{}, nil)
}

// spawnChain spawns n entities with transforms, each parented to the previous.
func spawnChain(t *testing.T, c *Context, n int) []ecs.EntityID {
	t.Helper()
	ids := make([]ecs.EntityID, n)
	for i := range ids {
		ids[i] = c.Spawn()
		require.True(t, c.AddComponents(ids[i], component.MaskTransform))
		if i > 0 {
			require.True(t, SetParent(c, ids[i], ids[i-1]))
		}
	}
	return ids
}

func setName(t *testing.T, c *Context, id ecs.EntityID, name string) {
	t.Helper()
	require.True(t, ecs.Set(c.World, id, component.KindName, component.Name{Value: name}))
}
