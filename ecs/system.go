package ecs

// System represents per-tick behavior that operates on entities with specific
// components. User-defined systems implement this interface and can include
// Query and Singleton fields, which the Scheduler initializes at
// registration, as well as custom state fields that persist between ticks.
//
// Systems must route entity destruction and deferred attach/detach through
// frame.Commands rather than mutating the world structurally mid-scan.
type System interface {
	Execute(frame *UpdateFrame)
}
