package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIDPacking(t *testing.T) {
	id := NewEntityID(7, 3)
	assert.Equal(t, uint32(7), id.Index())
	assert.Equal(t, uint32(3), id.Generation())
	assert.Equal(t, "7.3", id.String())
	assert.True(t, NoEntity.IsZero())
}

func TestEntityPoolNeverIssuesZero(t *testing.T) {
	p := NewEntityPool()
	for i := 0; i < 8; i++ {
		id := p.Create()
		assert.False(t, id.IsZero())
		p.Destroy(id)
	}
}

func TestEntityPoolUniqueWhileAlive(t *testing.T) {
	p := NewEntityPool()
	seen := make(map[EntityID]struct{})
	var ids []EntityID
	for i := 0; i < 100; i++ {
		id := p.Create()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range ids[:50] {
		assert.True(t, p.Destroy(id))
	}
	for i := 0; i < 50; i++ {
		id := p.Create()
		_, dup := seen[id]
		assert.False(t, dup, "recycled slot must carry a new generation")
		seen[id] = struct{}{}
	}
	assert.Equal(t, 100, p.Len())
	assert.Equal(t, uint32(100), p.Slots())
}

func TestEntityPoolStaleDestroy(t *testing.T) {
	p := NewEntityPool()
	id := p.Create()
	assert.True(t, p.Destroy(id))
	assert.False(t, p.Destroy(id))
	assert.False(t, p.Alive(id))
	assert.False(t, p.Destroy(NewEntityID(42, 1)))
}
