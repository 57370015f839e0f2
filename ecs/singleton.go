package ecs

import "reflect"

// AddSingleton stores a single world-level instance of T, not associated with
// any entity. Use this for shared simulation state such as input snapshots or
// tuning parameters. If the singleton already exists its value is replaced in
// place, so pointers handed out earlier stay valid.
func AddSingleton[T any](w *World, value T) *T {
	t := reflect.TypeFor[T]()
	if existing, ok := w.singletons[t]; ok {
		ptr := existing.(*T)
		*ptr = value
		return ptr
	}

	v := value
	w.singletons[t] = &v
	return &v
}

// GetSingleton returns the world's singleton of type T, or nil if none was
// added.
func GetSingleton[T any](w *World) *T {
	if existing, ok := w.singletons[reflect.TypeFor[T]()]; ok {
		return existing.(*T)
	}
	return nil
}

// Singleton provides access to a world-level component instance from within
// a system. Declare it as a struct field and the Scheduler initializes it at
// registration, creating a zero-valued instance if none exists yet.
type Singleton[T any] struct {
	ptr *T
}

// NewSingleton creates a Singleton accessor for the given world. If an
// initializer is provided and the singleton does not exist yet, it is created
// with that value; otherwise a zero value is used. The singleton is
// guaranteed to exist in the world after the call.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	ptr := GetSingleton[T](w)
	if ptr == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		ptr = AddSingleton(w, value)
	}
	return &Singleton[T]{ptr: ptr}
}

// Init binds the accessor to a world, creating the singleton if missing.
// Called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(w *World) {
	s.ptr = GetSingleton[T](w)
	if s.ptr == nil {
		var zero T
		s.ptr = AddSingleton(w, zero)
	}
}

// Get returns a pointer to the singleton instance.
func (s *Singleton[T]) Get() *T {
	return s.ptr
}

// Exists reports whether the accessor has been bound to a world instance.
func (s *Singleton[T]) Exists() bool {
	return s.ptr != nil
}
