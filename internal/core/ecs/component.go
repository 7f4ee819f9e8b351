package ecs

// Storage is implemented by every component store so the World can add,
// remove, and bulk-clear entries without knowing the value type.
type Storage interface {
	Kind() Kind
	Has(id EntityID) bool
	Remove(id EntityID)
	Len() int
	// InsertDefault adds a default-constructed value unless one exists.
	// It reports whether a value was inserted.
	InsertDefault(id EntityID) bool
}

// Store is a sparse, typed map store for one component kind.
// Values are stored behind pointers so Get results survive map growth.
type Store[T any] struct {
	kind  Kind
	data  map[EntityID]*T
	newFn func() T
}

// NewStore creates a store whose default values come from newFn. A nil newFn
// means the zero value of T.
func NewStore[T any](kind Kind, newFn func() T) *Store[T] {
	if newFn == nil {
		newFn = func() T {
			var zero T
			return zero
		}
	}
	return &Store[T]{
		kind:  kind,
		data:  make(map[EntityID]*T, 64),
		newFn: newFn,
	}
}

func (s *Store[T]) Kind() Kind { return s.kind }

func (s *Store[T]) Set(id EntityID, c T) {
	if p, ok := s.data[id]; ok {
		*p = c
		return
	}
	s.data[id] = &c
}

func (s *Store[T]) InsertDefault(id EntityID) bool {
	if _, ok := s.data[id]; ok {
		return false
	}
	v := s.newFn()
	s.data[id] = &v
	return true
}

// Get returns a pointer owned by the store. It stays valid until the entry
// is removed.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits entries in unspecified order.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
