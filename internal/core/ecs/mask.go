package ecs

import (
	"fmt"
	"strings"

	"github.com/TheBitDrifter/mask"
)

// Kind is the bit reserved for one component type.
type Kind uint32

// MaxKinds bounds the closed set of component kinds a World can register.
const MaxKinds = 64

// Mask is a fixed-width bitset with one bit per component Kind. It tags an
// entity's composition and doubles as a query predicate.
type Mask struct {
	bits mask.Mask
}

// MaskOf builds a mask with the given kinds set.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m.bits.Mark(uint32(k))
	}
	return m
}

// Has reports whether bit k is set.
func (m Mask) Has(k Kind) bool {
	var bit mask.Mask
	bit.Mark(uint32(k))
	return m.bits.ContainsAll(bit)
}

// ContainsAll reports whether m is a superset of other.
func (m Mask) ContainsAll(other Mask) bool {
	return m.bits.ContainsAll(other.bits)
}

// ContainsAny reports whether m and other share at least one kind.
func (m Mask) ContainsAny(other Mask) bool {
	return m.bits.ContainsAny(other.bits)
}

func (m Mask) With(k Kind) Mask {
	m.bits.Mark(uint32(k))
	return m
}

func (m Mask) Without(k Kind) Mask {
	m.bits.Unmark(uint32(k))
	return m
}

// Union returns the kinds set in either mask.
func (m Mask) Union(other Mask) Mask {
	for _, k := range other.Kinds() {
		m.bits.Mark(uint32(k))
	}
	return m
}

func (m Mask) IsEmpty() bool {
	return m == Mask{}
}

// Kinds lists the set kinds in ascending order.
func (m Mask) Kinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < MaxKinds; k++ {
		if m.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (m Mask) String() string {
	kinds := m.Kinds()
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%d", k)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
