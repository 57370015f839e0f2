package ecs

import "errors"

var (
	// ErrCapacityExceeded indicates the entity pool is exhausted.
	ErrCapacityExceeded = errors.New("ecs: entity capacity exceeded")
	// ErrInvalidEntity signals an operation on a dead, stale, or out-of-range identifier.
	ErrInvalidEntity = errors.New("ecs: invalid entity")
	// ErrComponentNotPresent is returned when reading a component that is not attached.
	ErrComponentNotPresent = errors.New("ecs: component not present")
	// ErrTooManyComponents indicates the number of registered component kinds
	// exceeds the capability mask width.
	ErrTooManyComponents = errors.New("ecs: too many component kinds")
	// ErrComponentRegistered indicates an attempt to register the same component type twice.
	ErrComponentRegistered = errors.New("ecs: component type already registered")
	// ErrLoopNotIdle is returned when Run is called on a loop that already started.
	ErrLoopNotIdle = errors.New("ecs: loop already started")
)
