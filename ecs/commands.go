package ecs

import "github.com/kamstrup/intmap"

// Commands buffers structural changes requested during a tick so they can be
// applied once every system has run. A system iterating the world therefore
// never observes an entity destroyed or restructured by an earlier system in
// the same tick.
type Commands struct {
	destroys []Entity
	sets     []componentCommand
	removes  []componentCommand
	spawns   []spawnCommand
	defers   []func()
}

// componentCommand captures a deferred attach or detach as a closure so the
// buffer stays type-erased while the table access stays generic.
type componentCommand struct {
	entity Entity
	apply  func()
}

type spawnCommand struct {
	init func(w *World, e Entity)
}

func newCommands() *Commands {
	return &Commands{}
}

// Destroy queues an entity destruction, applied after all systems have run.
func (c *Commands) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Spawn queues an entity creation. The init callback runs at flush with the
// fresh identifier, typically to attach components. A creation that fails
// with ErrCapacityExceeded is dropped silently; spawn from the embedding
// application directly when the failure must be observed.
func (c *Commands) Spawn(init func(w *World, e Entity)) {
	c.spawns = append(c.spawns, spawnCommand{init: init})
}

// Defer queues an arbitrary side effect to run at the end of the tick, after
// all structural changes have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// SetComponent queues a deferred component attach.
func SetComponent[T any](c *Commands, table *Table[T], e Entity, value T) {
	c.sets = append(c.sets, componentCommand{
		entity: e,
		apply:  func() { _ = table.Set(e, value) },
	})
}

// RemoveComponent queues a deferred component detach.
func RemoveComponent[T any](c *Commands, table *Table[T], e Entity) {
	c.removes = append(c.removes, componentCommand{
		entity: e,
		apply:  func() { _ = table.Remove(e) },
	})
}

// Flush applies all buffered commands to the world and resets the buffer.
// Destructions win: attaches and detaches against an entity destroyed in the
// same tick are dropped.
func (c *Commands) Flush(w *World) {
	destroyed := intmap.NewSet[Entity](len(c.destroys))

	for _, e := range c.destroys {
		if err := w.Destroy(e); err == nil {
			destroyed.Add(e)
		}
	}

	for _, cmd := range c.removes {
		if !destroyed.Has(cmd.entity) {
			cmd.apply()
		}
	}

	for _, cmd := range c.sets {
		if !destroyed.Has(cmd.entity) {
			cmd.apply()
		}
	}

	for _, cmd := range c.spawns {
		e, err := w.Create()
		if err != nil {
			continue
		}
		if cmd.init != nil {
			cmd.init(w, e)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.destroys = c.destroys[:0]
	c.sets = c.sets[:0]
	c.removes = c.removes[:0]
	c.spawns = c.spawns[:0]
	c.defers = c.defers[:0]
}
