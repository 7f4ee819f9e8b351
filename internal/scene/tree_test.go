package scene

import (
	"testing"

	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDescendantOf(t *testing.T) {
	c := newTestContext(t)
	chain := spawnChain(t, c, 3)
	a, b, cc := chain[0], chain[1], chain[2]

	for _, e := range chain {
		assert.True(t, IsDescendantOf(c, e, e))
	}
	assert.True(t, IsDescendantOf(c, cc, a))
	assert.True(t, IsDescendantOf(c, cc, b))
	assert.True(t, IsDescendantOf(c, b, a))
	assert.False(t, IsDescendantOf(c, a, cc))
	assert.False(t, IsDescendantOf(c, a, b))
}

func TestChildrenAndDescendants(t *testing.T) {
	c := newTestContext(t)
	a, b, cc, d := c.Spawn(), c.Spawn(), c.Spawn(), c.Spawn()
	unrelated := c.Spawn()
	require.True(t, SetParent(c, b, a))
	require.True(t, SetParent(c, cc, a))
	require.True(t, SetParent(c, d, b))

	assert.ElementsMatch(t, []ecs.EntityID{b, cc}, Children(c, a))
	assert.ElementsMatch(t, []ecs.EntityID{d}, Children(c, b))
	assert.Empty(t, Children(c, d))

	assert.ElementsMatch(t, []ecs.EntityID{a, b, cc, d}, Descendants(c, a))
	assert.ElementsMatch(t, []ecs.EntityID{b, d}, Descendants(c, b))
	assert.Equal(t, []ecs.EntityID{unrelated}, Descendants(c, unrelated))
}

func TestSetParentRejectsCycles(t *testing.T) {
	c := newTestContext(t)
	chain := spawnChain(t, c, 3)

	assert.False(t, SetParent(c, chain[0], chain[2]))
	assert.False(t, SetParent(c, chain[0], chain[0]))
	_, hasParent := ParentOf(c, chain[0])
	assert.False(t, hasParent)
}

func TestSetParentRequiresLiveEntities(t *testing.T) {
	c := newTestContext(t)
	a, b := c.Spawn(), c.Spawn()
	c.Destroy(b)
	assert.False(t, SetParent(c, a, b))
	assert.False(t, SetParent(c, b, a))
}

func TestReparentAndClear(t *testing.T) {
	c := newTestContext(t)
	a, b, child := c.Spawn(), c.Spawn(), c.Spawn()
	require.True(t, SetParent(c, child, a))
	require.True(t, SetParent(c, child, b))

	assert.Empty(t, Children(c, a))
	assert.Equal(t, []ecs.EntityID{child}, Children(c, b))

	ClearParent(c, child)
	assert.False(t, c.World.Has(child, component.KindParent))
	assert.Equal(t, 0, Depth(c, child))
}

func TestDepth(t *testing.T) {
	c := newTestContext(t)
	chain := spawnChain(t, c, 4)
	for i, e := range chain {
		assert.Equal(t, i, Depth(c, e))
	}
}

func TestFindByNameNormalizes(t *testing.T) {
	c := newTestContext(t)
	e := c.Spawn()
	setName(t, c, e, "caf\u00e9")
	c.Spawn()

	got, ok := FindByName(c, "cafe\u0301")
	require.True(t, ok)
	assert.Equal(t, e, got)

	_, ok = FindByName(c, "tea")
	assert.False(t, ok)
}
