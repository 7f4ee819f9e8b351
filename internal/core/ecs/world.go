package ecs

import (
	"fmt"

	"go.uber.org/zap"
)

// row is the per-slot entry of the mask table.
type row struct {
	id   EntityID
	mask Mask
}

// World is the top-level ECS container. It owns the entity pool, the mask
// table, the component registry, and a deferred destruction queue flushed by
// the cleanup system each frame.
//
// A World is not safe for concurrent use; all systems run on one goroutine.
type World struct {
	pool         *EntityPool
	registry     *Registry
	rows         []row
	destroyQueue []EntityID
	log          *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		pool:         NewEntityPool(),
		registry:     NewRegistry(),
		rows:         make([]row, 0, 256),
		destroyQueue: make([]EntityID, 0, 16),
		log:          log,
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

// Register binds kind to a new typed store and returns it. newFn supplies the
// value inserted by AddComponents; nil means the zero value.
func Register[T any](w *World, kind Kind, newFn func() T) *Store[T] {
	s := NewStore(kind, newFn)
	w.registry.Register(s)
	return s
}

// StoreOf returns the typed store for kind.
func StoreOf[T any](w *World, kind Kind) (*Store[T], error) {
	s := w.registry.Store(kind)
	if s == nil {
		return nil, fmt.Errorf("kind %d: not registered", kind)
	}
	typed, ok := s.(*Store[T])
	if !ok {
		return nil, fmt.Errorf("kind %d: store holds %T", kind, s)
	}
	return typed, nil
}

// Spawn allocates a fresh entity with an empty mask.
func (w *World) Spawn() EntityID {
	id := w.pool.Create()
	idx := int(id.Index())
	if idx >= len(w.rows) {
		w.rows = append(w.rows, make([]row, idx-len(w.rows)+1)...)
	}
	w.rows[idx] = row{id: id}
	return id
}

// Alive reports whether id names a live entity. Ids of freed slots, recycled
// slots, and slots never issued are all rejected.
func (w *World) Alive(id EntityID) bool {
	idx := int(id.Index())
	return !id.IsZero() && idx < len(w.rows) && w.rows[idx].id == id
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.pool.Len() }

// Destroy removes every component of id, clears its mask, and frees the id
// for reuse under a new generation. Destroying a non-live id is a no-op that
// returns false.
func (w *World) Destroy(id EntityID) bool {
	if !w.Alive(id) {
		w.log.Debug("destroy of non-live entity ignored", zap.Stringer("entity", id))
		return false
	}
	r := &w.rows[id.Index()]
	w.registry.RemoveAll(id, r.mask)
	*r = row{}
	return w.pool.Destroy(id)
}

// MarkForDestruction queues an entity for end-of-frame cleanup.
func (w *World) MarkForDestruction(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities and clears their components.
// Called by the cleanup system at the end of each frame.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		if w.Destroy(id) {
			n++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// MaskFor returns the component mask of a live entity.
func (w *World) MaskFor(id EntityID) (Mask, bool) {
	if !w.Alive(id) {
		return Mask{}, false
	}
	return w.rows[id.Index()].mask, true
}

// Has reports whether id is live and carries kind.
func (w *World) Has(id EntityID, kind Kind) bool {
	m, ok := w.MaskFor(id)
	return ok && m.Has(kind)
}

// AddComponents inserts a default value for every kind in kinds that id does
// not carry yet. Kinds already present keep their current value. It returns
// false when id is not live.
func (w *World) AddComponents(id EntityID, kinds Mask) bool {
	if !w.Alive(id) {
		return false
	}
	r := &w.rows[id.Index()]
	for _, k := range kinds.Kinds() {
		if r.mask.Has(k) {
			continue
		}
		s := w.registry.Store(k)
		if s == nil {
			w.log.Warn("add of unregistered component kind", zap.Uint32("kind", uint32(k)))
			continue
		}
		s.InsertDefault(id)
		r.mask = r.mask.With(k)
	}
	return true
}

// RemoveComponents drops the entries and mask bits for kinds.
func (w *World) RemoveComponents(id EntityID, kinds Mask) bool {
	if !w.Alive(id) {
		return false
	}
	r := &w.rows[id.Index()]
	for _, k := range kinds.Kinds() {
		if !r.mask.Has(k) {
			continue
		}
		if s := w.registry.Store(k); s != nil {
			s.Remove(id)
		}
		r.mask = r.mask.Without(k)
	}
	return true
}

// Get returns the component of kind held by id. The pointer is owned by the
// store: callers may mutate through it but must not keep it past a remove or
// destroy of the entity. Absence is reported by ok == false, never by panic.
func Get[T any](w *World, id EntityID, kind Kind) (*T, bool) {
	if !w.Has(id, kind) {
		return nil, false
	}
	s, err := StoreOf[T](w, kind)
	if err != nil {
		w.log.Error("component accessor type mismatch", zap.Error(err))
		return nil, false
	}
	return s.Get(id)
}

// Set stores value as id's component of kind, adding the kind if missing.
func Set[T any](w *World, id EntityID, kind Kind, value T) bool {
	if !w.Alive(id) {
		return false
	}
	s, err := StoreOf[T](w, kind)
	if err != nil {
		w.log.Error("component accessor type mismatch", zap.Error(err))
		return false
	}
	s.Set(id, value)
	r := &w.rows[id.Index()]
	r.mask = r.mask.With(kind)
	return true
}
