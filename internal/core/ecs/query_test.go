package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySoundAndComplete(t *testing.T) {
	w := newTestWorld(t)

	compositions := []Mask{
		{},
		MaskOf(kindPosition),
		MaskOf(kindVelocity),
		MaskOf(kindPosition, kindVelocity),
		MaskOf(kindPosition, kindHealth),
		MaskOf(allKinds...),
	}
	ids := make([]EntityID, len(compositions))
	for i, m := range compositions {
		ids[i] = w.Spawn()
		w.AddComponents(ids[i], m)
	}
	// a destroyed entity must never show up
	gone := w.Spawn()
	w.AddComponents(gone, MaskOf(allKinds...))
	w.Destroy(gone)

	for _, required := range compositions {
		var want []EntityID
		for i, m := range compositions {
			if m.ContainsAll(required) {
				want = append(want, ids[i])
			}
		}
		assert.ElementsMatch(t, want, w.Query(required), "required %s", required)
		assert.Equal(t, len(want), w.Count(required))
	}
}

func TestQueryNth(t *testing.T) {
	w := newTestWorld(t)
	a := w.Spawn()
	w.Spawn()
	c := w.Spawn()
	w.AddComponents(a, MaskOf(kindHealth))
	w.AddComponents(c, MaskOf(kindHealth))

	got, ok := w.QueryNth(MaskOf(kindHealth), 0)
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = w.QueryNth(MaskOf(kindHealth), 1)
	require.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = w.QueryNth(MaskOf(kindHealth), 2)
	assert.False(t, ok)
	_, ok = w.QueryNth(MaskOf(kindHealth), -1)
	assert.False(t, ok)
}

func TestEach2(t *testing.T) {
	w := newTestWorld(t)
	moving := w.Spawn()
	still := w.Spawn()
	w.AddComponents(moving, MaskOf(kindPosition))
	w.AddComponents(still, MaskOf(kindPosition))
	Set(w, moving, kindVelocity, velocity{X: 1, Y: 2})

	visited := 0
	Each2(w, kindPosition, kindVelocity, func(id EntityID, p *position, v *velocity) {
		visited++
		p.X += v.X
		p.Y += v.Y
	})
	assert.Equal(t, 1, visited)

	p, _ := Get[position](w, moving, kindPosition)
	assert.Equal(t, position{X: 1, Y: 2}, *p)
	p, _ = Get[position](w, still, kindPosition)
	assert.Equal(t, position{}, *p)
}

func TestEach3(t *testing.T) {
	w := newTestWorld(t)
	e := w.Spawn()
	w.AddComponents(e, MaskOf(allKinds...))
	w.AddComponents(w.Spawn(), MaskOf(kindPosition, kindVelocity))

	visited := 0
	Each3(w, kindPosition, kindVelocity, kindHealth, func(id EntityID, _ *position, _ *velocity, h *health) {
		visited++
		assert.Equal(t, e, id)
		assert.Equal(t, 100, h.HP)
	})
	assert.Equal(t, 1, visited)
}
