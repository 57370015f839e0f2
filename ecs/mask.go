package ecs

import "math/bits"

// MaxComponentKinds is the capability mask width. Registering more component
// kinds than this is a configuration error reported at registration time,
// never during a tick.
const MaxComponentKinds = 64

// Mask is a per-entity capability bitmask. Bit k set means component kind k
// is attached and its table slot holds meaningful data; bit k clear means the
// slot contents are stale and must not be read.
type Mask uint64

// With returns the mask with the given kind bit set.
func (m Mask) With(kind uint8) Mask {
	return m | 1<<kind
}

// Without returns the mask with the given kind bit cleared.
func (m Mask) Without(kind uint8) Mask {
	return m &^ (1 << kind)
}

// Has reports whether the given kind bit is set.
func (m Mask) Has(kind uint8) bool {
	return m&(1<<kind) != 0
}

// Contains reports whether every bit of required is set in m.
// An entity qualifies for a query iff its mask Contains the required mask.
func (m Mask) Contains(required Mask) bool {
	return m&required == required
}

// Count returns the number of set kind bits.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
