package ecs

// Query returns every live entity whose mask is a superset of required, in
// slot order. The order is stable within one call only.
func (w *World) Query(required Mask) []EntityID {
	var out []EntityID
	w.Each(required, func(id EntityID) {
		out = append(out, id)
	})
	return out
}

// QueryNth returns the n-th entity Query would return.
func (w *World) QueryNth(required Mask, n int) (EntityID, bool) {
	if n < 0 {
		return NoEntity, false
	}
	for i := range w.rows {
		r := &w.rows[i]
		if r.id.IsZero() || !r.mask.ContainsAll(required) {
			continue
		}
		if n == 0 {
			return r.id, true
		}
		n--
	}
	return NoEntity, false
}

// Each visits matching entities without allocating. fn may mutate components
// but must not spawn or destroy entities; use MarkForDestruction instead.
func (w *World) Each(required Mask, fn func(EntityID)) {
	for i := range w.rows {
		r := &w.rows[i]
		if r.id.IsZero() || !r.mask.ContainsAll(required) {
			continue
		}
		fn(r.id)
	}
}

// Count returns how many entities match required.
func (w *World) Count(required Mask) int {
	n := 0
	w.Each(required, func(EntityID) { n++ })
	return n
}

// Each2 iterates over entities that have both kind ka (type A) and kb (type B).
func Each2[A, B any](w *World, ka, kb Kind, fn func(EntityID, *A, *B)) {
	sa, err := StoreOf[A](w, ka)
	if err != nil {
		return
	}
	sb, err := StoreOf[B](w, kb)
	if err != nil {
		return
	}
	w.Each(MaskOf(ka, kb), func(id EntityID) {
		a, _ := sa.Get(id)
		b, _ := sb.Get(id)
		fn(id, a, b)
	})
}

// Each3 iterates over entities that have kinds ka, kb, and kc.
func Each3[A, B, C any](w *World, ka, kb, kc Kind, fn func(EntityID, *A, *B, *C)) {
	sa, err := StoreOf[A](w, ka)
	if err != nil {
		return
	}
	sb, err := StoreOf[B](w, kb)
	if err != nil {
		return
	}
	sc, err := StoreOf[C](w, kc)
	if err != nil {
		return
	}
	w.Each(MaskOf(ka, kb, kc), func(id EntityID) {
		a, _ := sa.Get(id)
		b, _ := sb.Get(id)
		c, _ := sc.Get(id)
		fn(id, a, b, c)
	})
}
