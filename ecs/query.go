package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// Query selects entities whose capability mask covers a required set of
// component kinds. The type T must be a struct with pointer fields, one per
// component type; embedded fields are always required, and named fields can
// be marked optional with the `ecs:"optional"` struct tag.
//
// The required mask is computed once at Init, and iteration always scans
// entity slots in ascending order, so results are deterministic across ticks.
type Query[T any] struct {
	world       *World
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	tables      []iTable
	required    Mask
}

// NewQuery creates a query bound to the given world. All component types
// referenced by T must already be registered.
func NewQuery[T any](world *World) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init initializes or re-initializes the query against a world.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(world *World) {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	q.world = world
	q.types = q.types[:0]
	q.optional = q.optional[:0]
	q.fieldOffset = q.fieldOffset[:0]
	q.tables = q.tables[:0]
	q.required = 0

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types")
		}

		componentType := field.Type.Elem()
		kind, ok := world.kinds[componentType]
		if !ok {
			panic("component type " + componentType.String() + " not registered")
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		if !isOptional {
			q.required = q.required.With(kind)
		}

		q.types = append(q.types, componentType)
		q.optional = append(q.optional, isOptional)
		q.fieldOffset = append(q.fieldOffset, field.Offset)
		q.tables = append(q.tables, world.tables[kind])
	}
}

// Required returns the capability mask an entity must cover to qualify.
func (q *Query[T]) Required() Mask {
	return q.required
}

// populate points T's fields at the entity's dense slots using the
// pre-computed field offsets, avoiding reflection in the hot path.
func (q *Query[T]) populate(resultPtr unsafe.Pointer, index uint32, mask Mask) {
	for i, table := range q.tables {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + q.fieldOffset[i])
		if q.optional[i] && !mask.Has(table.kindBit()) {
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = table.slotPtr(index)
	}
}

// Iter returns an iterator over qualifying entities and their populated view
// structs. Fields point directly into the component tables, so mutations
// through them are visible immediately.
func (q *Query[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		w := q.world

		var result T
		resultPtr := unsafe.Pointer(&result)

		for index := uint32(0); index < w.next; index++ {
			if !w.alive[index] || !w.masks[index].Contains(q.required) {
				continue
			}

			q.populate(resultPtr, index, w.masks[index])
			if !yield(w.entityAt(index), result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Get returns a populated view struct for one entity, or nil if the entity
// is dead or missing a required component.
func (q *Query[T]) Get(e Entity) *T {
	index, ok := q.world.slot(e)
	if !ok {
		return nil
	}
	mask := q.world.masks[index]
	if !mask.Contains(q.required) {
		return nil
	}

	var result T
	q.populate(unsafe.Pointer(&result), index, mask)
	return &result
}

// Count returns the number of qualifying entities.
func (q *Query[T]) Count() int {
	w := q.world
	n := 0
	for index := uint32(0); index < w.next; index++ {
		if w.alive[index] && w.masks[index].Contains(q.required) {
			n++
		}
	}
	return n
}
