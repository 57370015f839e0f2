package ecs

import (
	"reflect"
	"unsafe"
)

// iTable is the type-erased view of a component table, used by the world and
// by reflection-driven queries.
type iTable interface {
	componentType() reflect.Type
	kindBit() uint8
	// slotPtr returns the address of the dense slot for an index. Whether the
	// slot holds meaningful data is decided by the capability mask alone.
	slotPtr(index uint32) unsafe.Pointer
	// itemAt returns the slot as a typed pointer boxed in an any.
	itemAt(index uint32) any
}
