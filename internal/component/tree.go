package component

import "github.com/scenekit/scenekit/internal/core/ecs"

// Name labels an entity for lookup and debugging.
type Name struct {
	Value string
}

// Parent links an entity to its parent. Entities without it are roots.
// Parent chains must form a forest.
type Parent struct {
	Entity ecs.EntityID
}
