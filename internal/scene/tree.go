package scene

import (
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// SetParent makes parent the parent of child. It refuses links that would
// close a cycle and reports whether the link was made.
func SetParent(c *Context, child, parent ecs.EntityID) bool {
	if !c.World.Alive(child) || !c.World.Alive(parent) {
		return false
	}
	if IsDescendantOf(c, parent, child) {
		c.log.Warn("parent link would create a cycle",
			zap.Stringer("child", child), zap.Stringer("parent", parent))
		return false
	}
	return ecs.Set(c.World, child, component.KindParent, component.Parent{Entity: parent})
}

// ClearParent turns child into a root.
func ClearParent(c *Context, child ecs.EntityID) {
	c.World.RemoveComponents(child, component.MaskParent)
}

// Children returns the entities whose Parent is target. It is a linear scan.
func Children(c *Context, target ecs.EntityID) []ecs.EntityID {
	var children []ecs.EntityID
	store, err := ecs.StoreOf[component.Parent](c.World, component.KindParent)
	if err != nil {
		return nil
	}
	c.World.Each(component.MaskParent, func(id ecs.EntityID) {
		if p, _ := store.Get(id); p.Entity == target {
			children = append(children, id)
		}
	})
	return children
}

// Descendants returns target and every entity below it, walking the tree
// depth-first with an explicit stack.
func Descendants(c *Context, target ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	visited := make(map[ecs.EntityID]struct{})
	stack := []ecs.EntityID{target}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		out = append(out, id)
		stack = append(stack, Children(c, id)...)
	}
	return out
}

// IsDescendantOf walks up from entity and reports whether ancestor is on the
// chain. Every entity is its own descendant.
func IsDescendantOf(c *Context, entity, ancestor ecs.EntityID) bool {
	if entity == ancestor {
		return true
	}
	current := entity
	for depth := 0; depth < c.opts.MaxHierarchyDepth; depth++ {
		parent, ok := ParentOf(c, current)
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		current = parent
	}
	c.log.Warn("parent chain exceeds max depth",
		zap.Stringer("entity", entity), zap.Int("max_depth", c.opts.MaxHierarchyDepth))
	return false
}

// Depth returns the number of Parent links above entity.
func Depth(c *Context, entity ecs.EntityID) int {
	depth := 0
	for current := entity; depth < c.opts.MaxHierarchyDepth; depth++ {
		parent, ok := ParentOf(c, current)
		if !ok {
			break
		}
		current = parent
	}
	return depth
}

// FindByName returns the first entity whose Name matches name. Names are
// compared in Unicode NFC so composed and decomposed spellings agree.
func FindByName(c *Context, name string) (ecs.EntityID, bool) {
	want := norm.NFC.String(name)
	store, err := ecs.StoreOf[component.Name](c.World, component.KindName)
	if err != nil {
		return ecs.NoEntity, false
	}
	found := ecs.NoEntity
	c.World.Each(component.MaskName, func(id ecs.EntityID) {
		if !found.IsZero() {
			return
		}
		if n, _ := store.Get(id); norm.NFC.String(n.Value) == want {
			found = id
		}
	})
	return found, !found.IsZero()
}
