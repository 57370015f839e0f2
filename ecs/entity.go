package ecs

// Entity encodes both the slot generation (upper 32 bits) and the slot index
// (lower 32 bits). The zero Entity is never issued and is always dead.
type Entity uint64

// NewEntity creates an Entity from a slot index and generation
func NewEntity(index uint32, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the entity.
// A recycled slot is reissued with a higher generation, so a handle held
// across Destroy no longer matches and is rejected as invalid.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}
