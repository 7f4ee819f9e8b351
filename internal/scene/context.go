// Package scene owns the Context: the ECS World with every component kind
// registered, plus the singleton resource slots shared by frame systems.
// It also implements the hierarchy queries and transform propagation that
// sit on top of the World.
package scene

import (
	"github.com/scenekit/scenekit/internal/component"
	"github.com/scenekit/scenekit/internal/core/ecs"
	"go.uber.org/zap"
)

// DefaultMaxHierarchyDepth caps parent-chain walks when Options leaves it unset.
const DefaultMaxHierarchyDepth = 256

type Options struct {
	// MaxHierarchyDepth bounds every walk up a Parent chain. Chains are
	// expected to be acyclic; the cap turns a cycle into a logged warning
	// instead of an endless loop.
	MaxHierarchyDepth int
	// Headless lets frames run without a renderer attached.
	Headless bool
}

// Context is the aggregate owner of entities, component storages, and
// resources. It is not safe for concurrent use.
type Context struct {
	World     *ecs.World
	Resources Resources

	opts Options
	log  *zap.Logger
}

// Resources are the process-wide singletons that are not addressed by entity.
type Resources struct {
	Window        Window
	Graphics      Graphics
	UserInterface UserInterface
	Input         Input
	// ActiveCamera is the camera entity used for rendering and movement, or
	// ecs.NoEntity.
	ActiveCamera ecs.EntityID
}

func NewContext(opts Options, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxHierarchyDepth <= 0 {
		opts.MaxHierarchyDepth = DefaultMaxHierarchyDepth
	}
	w := ecs.NewWorld(log.Named("ecs"))
	component.RegisterAll(w)
	return &Context{
		World: w,
		Resources: Resources{
			Window:        NewWindow(),
			UserInterface: UserInterface{ScaleFactor: 1},
			Input:         NewInput(),
		},
		opts: opts,
		log:  log,
	}
}

func (c *Context) Options() Options   { return c.opts }
func (c *Context) Logger() *zap.Logger { return c.log }

func (c *Context) Spawn() ecs.EntityID { return c.World.Spawn() }

// Destroy removes id with all of its components. Destroying the active
// camera clears the ActiveCamera slot.
func (c *Context) Destroy(id ecs.EntityID) bool {
	if !c.World.Destroy(id) {
		return false
	}
	if c.Resources.ActiveCamera == id {
		c.Resources.ActiveCamera = ecs.NoEntity
	}
	return true
}

func (c *Context) AddComponents(id ecs.EntityID, kinds ecs.Mask) bool {
	return c.World.AddComponents(id, kinds)
}

func (c *Context) RemoveComponents(id ecs.EntityID, kinds ecs.Mask) bool {
	return c.World.RemoveComponents(id, kinds)
}

func (c *Context) Query(required ecs.Mask) []ecs.EntityID {
	return c.World.Query(required)
}

func (c *Context) QueryNth(required ecs.Mask, n int) (ecs.EntityID, bool) {
	return c.World.QueryNth(required, n)
}

// Typed accessors for the closed component set.

func LocalTransformOf(c *Context, id ecs.EntityID) (*component.LocalTransform, bool) {
	return ecs.Get[component.LocalTransform](c.World, id, component.KindLocalTransform)
}

func GlobalTransformComponent(c *Context, id ecs.EntityID) (*component.GlobalTransform, bool) {
	return ecs.Get[component.GlobalTransform](c.World, id, component.KindGlobalTransform)
}

func ParentOf(c *Context, id ecs.EntityID) (ecs.EntityID, bool) {
	p, ok := ecs.Get[component.Parent](c.World, id, component.KindParent)
	if !ok {
		return ecs.NoEntity, false
	}
	return p.Entity, true
}

func CameraOf(c *Context, id ecs.EntityID) (*component.Camera, bool) {
	return ecs.Get[component.Camera](c.World, id, component.KindCamera)
}

func NameOf(c *Context, id ecs.EntityID) (string, bool) {
	n, ok := ecs.Get[component.Name](c.World, id, component.KindName)
	if !ok {
		return "", false
	}
	return n.Value, true
}

func LinesOf(c *Context, id ecs.EntityID) (*component.Lines, bool) {
	return ecs.Get[component.Lines](c.World, id, component.KindLines)
}

func QuadsOf(c *Context, id ecs.EntityID) (*component.Quads, bool) {
	return ecs.Get[component.Quads](c.World, id, component.KindQuads)
}
