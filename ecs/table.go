package ecs

import (
	"reflect"
	"unsafe"
)

// Table stores one component kind as a dense, pre-allocated array indexed by
// entity slot. Membership lives in the entity's capability mask, so access is
// a bounds-free array index regardless of how many kinds exist.
type Table[T any] struct {
	world *World
	kind  uint8
	data  []T
}

// RegisterTable registers component type T with the world and returns its
// table. Registration assigns the next free capability bit; it fails with
// ErrTooManyComponents once the mask width is exhausted and with
// ErrComponentRegistered if T was already registered. All tables must be
// registered before the first tick runs.
func RegisterTable[T any](w *World) (*Table[T], error) {
	compType := reflect.TypeFor[T]()
	if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
		compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
		panic("ecs: components must be plain data, not pointers, maps, channels, or functions")
	}

	if _, exists := w.kinds[compType]; exists {
		return nil, ErrComponentRegistered
	}
	if len(w.tables) >= MaxComponentKinds {
		return nil, ErrTooManyComponents
	}

	table := &Table[T]{
		world: w,
		kind:  uint8(len(w.tables)),
		data:  make([]T, w.capacity),
	}
	w.kinds[compType] = table.kind
	w.tables = append(w.tables, table)
	return table, nil
}

// MustRegisterTable is RegisterTable for static setup paths where a
// registration failure is a programming error.
func MustRegisterTable[T any](w *World) *Table[T] {
	table, err := RegisterTable[T](w)
	if err != nil {
		panic(err)
	}
	return table
}

// TableFor returns the already-registered table for component type T.
func TableFor[T any](w *World) (*Table[T], bool) {
	kind, ok := w.kinds[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	table, ok := w.tables[kind].(*Table[T])
	return table, ok
}

// Kind returns the capability bit assigned to this component kind.
func (t *Table[T]) Kind() uint8 {
	return t.kind
}

// Mask returns the single-bit mask for this component kind.
func (t *Table[T]) Mask() Mask {
	return Mask(0).With(t.kind)
}

// Set writes component data for a live entity and then publishes it by
// setting the capability bit. The data is fully written before the bit flips,
// so a reader never observes the bit without valid slot contents.
func (t *Table[T]) Set(e Entity, value T) error {
	index, ok := t.world.slot(e)
	if !ok {
		return ErrInvalidEntity
	}

	t.data[index] = value
	t.world.masks[index] = t.world.masks[index].With(t.kind)
	return nil
}

// Get returns the stored component value. It fails with ErrInvalidEntity for
// dead entities and ErrComponentNotPresent when the capability bit is clear;
// stale slot contents are never returned.
func (t *Table[T]) Get(e Entity) (T, error) {
	var zero T
	index, ok := t.world.slot(e)
	if !ok {
		return zero, ErrInvalidEntity
	}
	if !t.world.masks[index].Has(t.kind) {
		return zero, ErrComponentNotPresent
	}
	return t.data[index], nil
}

// Mut returns a pointer into the entity's dense slot for in-place mutation.
func (t *Table[T]) Mut(e Entity) (*T, error) {
	index, ok := t.world.slot(e)
	if !ok {
		return nil, ErrInvalidEntity
	}
	if !t.world.masks[index].Has(t.kind) {
		return nil, ErrComponentNotPresent
	}
	return &t.data[index], nil
}

// Has reports whether the component is attached to a live entity.
func (t *Table[T]) Has(e Entity) bool {
	index, ok := t.world.slot(e)
	return ok && t.world.masks[index].Has(t.kind)
}

// Remove clears the capability bit. Removing an absent component is a no-op;
// removing from a dead entity fails with ErrInvalidEntity. The slot's value
// is unspecified until the next Set.
func (t *Table[T]) Remove(e Entity) error {
	index, ok := t.world.slot(e)
	if !ok {
		return ErrInvalidEntity
	}

	t.world.masks[index] = t.world.masks[index].Without(t.kind)
	return nil
}

func (t *Table[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (t *Table[T]) kindBit() uint8 {
	return t.kind
}

func (t *Table[T]) slotPtr(index uint32) unsafe.Pointer {
	return unsafe.Pointer(&t.data[index])
}

func (t *Table[T]) itemAt(index uint32) any {
	return &t.data[index]
}
