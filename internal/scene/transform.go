package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"go.uber.org/zap"
)

// GlobalTransformOf computes the world matrix of entity from its ancestor
// chain: global(e) = global(parent(e)) × local(e), or local(e) for roots.
// An entity without a LocalTransform contributes identity and ends the chain.
//
// The walk is iterative and capped at Options.MaxHierarchyDepth links.
func GlobalTransformOf(c *Context, entity ecs.EntityID) mgl32.Mat4 {
	acc := mgl32.Ident4()
	current := entity
	for depth := 0; ; depth++ {
		local, ok := LocalTransformOf(c, current)
		if !ok {
			return acc
		}
		acc = local.Matrix().Mul4(acc)

		parent, ok := ParentOf(c, current)
		if !ok {
			return acc
		}
		if depth >= c.opts.MaxHierarchyDepth {
			c.log.Warn("parent chain exceeds max depth, truncating",
				zap.Stringer("entity", entity), zap.Int("max_depth", c.opts.MaxHierarchyDepth))
			return acc
		}
		current = parent
	}
}

// UpdateGlobalTransforms recomputes GlobalTransform for every entity holding
// both transform components. Each chain is walked independently every call,
// so the cost is O(entities × depth); nothing is cached across frames.
func UpdateGlobalTransforms(c *Context) int {
	n := 0
	ecs.Each2(c.World, component.KindLocalTransform, component.KindGlobalTransform,
		func(id ecs.EntityID, _ *component.LocalTransform, global *component.GlobalTransform) {
			global.Matrix = GlobalTransformOf(c, id)
			n++
		})
	return n
}
