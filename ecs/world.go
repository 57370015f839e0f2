package ecs

import "reflect"

// World owns all simulation state: the entity slots, their capability masks,
// the registered component tables, and world-level singletons. Systems never
// touch ambient globals; every operation goes through a World, so independent
// worlds can coexist without interference.
type World struct {
	capacity    int
	generations []uint32
	masks       []Mask
	alive       []bool
	free        []uint32
	next        uint32
	live        int

	tables []iTable
	kinds  map[reflect.Type]uint8

	singletons map[reflect.Type]any
}

// NewWorld creates a world with a fixed entity capacity. All component tables
// registered against it are pre-allocated to this capacity; the world never
// grows.
func NewWorld(capacity int) *World {
	if capacity <= 0 {
		panic("ecs: world capacity must be positive")
	}
	return &World{
		capacity:    capacity,
		generations: make([]uint32, capacity),
		masks:       make([]Mask, capacity),
		alive:       make([]bool, capacity),
		kinds:       make(map[reflect.Type]uint8),
		singletons:  make(map[reflect.Type]any),
	}
}

// Capacity returns the fixed entity capacity.
func (w *World) Capacity() int {
	return w.capacity
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return w.live
}

// Create issues a fresh or recycled entity identifier with an empty
// capability mask. It fails with ErrCapacityExceeded when no slot is free.
func (w *World) Create() (Entity, error) {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else if int(w.next) < w.capacity {
		index = w.next
		w.next++
	} else {
		return 0, ErrCapacityExceeded
	}

	w.generations[index]++
	w.masks[index] = 0
	w.alive[index] = true
	w.live++
	return NewEntity(index, w.generations[index]), nil
}

// Destroy clears the entity's capability mask and returns its slot to the
// recycling pool. It fails with ErrInvalidEntity if the entity is already
// dead, stale, or out of range. During a tick, systems must route destruction
// through Commands instead of calling this directly.
func (w *World) Destroy(e Entity) error {
	index, ok := w.slot(e)
	if !ok {
		return ErrInvalidEntity
	}

	w.masks[index] = 0
	w.alive[index] = false
	w.live--
	w.free = append(w.free, index)
	return nil
}

// Alive reports whether the entity identifier refers to a live slot with a
// matching generation.
func (w *World) Alive(e Entity) bool {
	_, ok := w.slot(e)
	return ok
}

// MaskOf returns the entity's capability mask, or false for dead entities.
func (w *World) MaskOf(e Entity) (Mask, bool) {
	index, ok := w.slot(e)
	if !ok {
		return 0, false
	}
	return w.masks[index], true
}

// slot validates an identifier and resolves it to a slot index.
func (w *World) slot(e Entity) (uint32, bool) {
	index := e.Index()
	if index >= w.next {
		return 0, false
	}
	if !w.alive[index] || w.generations[index] != e.Generation() {
		return 0, false
	}
	return index, true
}

// entityAt reconstructs the identifier currently occupying a live slot.
func (w *World) entityAt(index uint32) Entity {
	return NewEntity(index, w.generations[index])
}

// Entities returns all live entity identifiers in ascending slot order.
// Intended for tooling; systems should select entities through queries.
func (w *World) Entities() []Entity {
	entities := make([]Entity, 0, w.live)
	for index := uint32(0); index < w.next; index++ {
		if w.alive[index] {
			entities = append(entities, w.entityAt(index))
		}
	}
	return entities
}

// Component returns a pointer to the entity's component of the given type as
// an any, or nil if the entity is dead or the component is not attached.
// Typed access through Table.Get is preferred; this reflective form exists
// for tooling such as inspectors.
func (w *World) Component(e Entity, compType reflect.Type) any {
	index, ok := w.slot(e)
	if !ok {
		return nil
	}
	kind, ok := w.kinds[compType]
	if !ok || !w.masks[index].Has(kind) {
		return nil
	}
	return w.tables[kind].itemAt(index)
}

// KindOf returns the capability bit assigned to a registered component type.
func (w *World) KindOf(compType reflect.Type) (uint8, bool) {
	kind, ok := w.kinds[compType]
	return kind, ok
}

// ComponentTypes returns the registered component types in kind-bit order.
func (w *World) ComponentTypes() []reflect.Type {
	types := make([]reflect.Type, len(w.tables))
	for i, table := range w.tables {
		types[i] = table.componentType()
	}
	return types
}
