package ecs

import "fmt"

// Registry maps each registered Kind to its store and supports bulk cleanup
// on entity destroy.
type Registry struct {
	stores [MaxKinds]Storage
	kinds  Mask
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a store to its kind. Registering a kind twice, or a kind
// outside [0, MaxKinds), is a build-time mistake and panics.
func (r *Registry) Register(store Storage) {
	k := store.Kind()
	if k >= MaxKinds {
		panic(fmt.Sprintf("ecs: kind %d exceeds MaxKinds (%d)", k, MaxKinds))
	}
	if r.stores[k] != nil {
		panic(fmt.Sprintf("ecs: kind %d registered twice", k))
	}
	r.stores[k] = store
	r.kinds = r.kinds.With(k)
}

// Store returns the store registered for k, or nil.
func (r *Registry) Store(k Kind) Storage {
	if k >= MaxKinds {
		return nil
	}
	return r.stores[k]
}

// Kinds returns the mask of every registered kind.
func (r *Registry) Kinds() Mask { return r.kinds }

// RemoveAll clears the given entity from every store named in m.
func (r *Registry) RemoveAll(id EntityID, m Mask) {
	for _, k := range m.Kinds() {
		if s := r.stores[k]; s != nil {
			s.Remove(id)
		}
	}
}
