package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandRecorder struct {
	act func(frame *ecs.UpdateFrame)
}

func (s *commandRecorder) Execute(frame *ecs.UpdateFrame) {
	if s.act != nil {
		s.act(frame)
	}
}

func runOnce(tw *testWorld, act func(frame *ecs.UpdateFrame)) {
	scheduler := ecs.NewScheduler(tw.world)
	scheduler.Register(&commandRecorder{act: act})
	scheduler.Once(1.0)
}

func TestCommandsDeferredDestroy(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)

	runOnce(tw, func(frame *ecs.UpdateFrame) {
		frame.Commands.Destroy(e)
		// Still alive inside the tick
		assert.True(t, frame.World.Alive(e))
	})

	assert.False(t, tw.world.Alive(e))
}

func TestCommandsDeferredSetAndRemove(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)
	require.NoError(t, tw.velocities.Set(e, Velocity{DX: 1}))

	runOnce(tw, func(frame *ecs.UpdateFrame) {
		ecs.SetComponent(frame.Commands, tw.positions, e, Position{X: 42})
		ecs.RemoveComponent(frame.Commands, tw.velocities, e)

		// Neither change is visible mid-tick
		assert.False(t, tw.positions.Has(e))
		assert.True(t, tw.velocities.Has(e))
	})

	pos, err := tw.positions.Get(e)
	require.NoError(t, err)
	assert.Equal(t, 42.0, pos.X)
	assert.False(t, tw.velocities.Has(e))
}

func TestCommandsDestroyWinsOverSet(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)

	runOnce(tw, func(frame *ecs.UpdateFrame) {
		ecs.SetComponent(frame.Commands, tw.positions, e, Position{X: 1})
		frame.Commands.Destroy(e)
	})

	assert.False(t, tw.world.Alive(e))

	// The slot must not have been re-populated for a dead entity; a recycled
	// successor starts clean.
	fresh, err := tw.world.Create()
	require.NoError(t, err)
	require.Equal(t, e.Index(), fresh.Index())
	assert.False(t, tw.positions.Has(fresh))
}

func TestCommandsSpawn(t *testing.T) {
	tw := newTestWorld()

	var spawned ecs.Entity
	runOnce(tw, func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(func(w *ecs.World, e ecs.Entity) {
			spawned = e
			_ = tw.positions.Set(e, Position{X: 5})
		})
		assert.Equal(t, 0, frame.World.Count())
	})

	require.NotZero(t, spawned)
	assert.True(t, tw.world.Alive(spawned))
	pos, err := tw.positions.Get(spawned)
	require.NoError(t, err)
	assert.Equal(t, 5.0, pos.X)
}

func TestCommandsDuplicateDestroy(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)

	runOnce(tw, func(frame *ecs.UpdateFrame) {
		frame.Commands.Destroy(e)
		frame.Commands.Destroy(e)
	})

	assert.False(t, tw.world.Alive(e))
	assert.Equal(t, 0, tw.world.Count())
}

func TestCommandsDefer(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)

	var sawDestroyed bool
	runOnce(tw, func(frame *ecs.UpdateFrame) {
		frame.Commands.Destroy(e)
		frame.Commands.Defer(func() {
			// Deferred effects run after structural changes
			sawDestroyed = !tw.world.Alive(e)
		})
	})

	assert.True(t, sawDestroyed)
}

func TestCommandsBufferResets(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)

	calls := 0
	first := true
	scheduler.Register(&commandRecorder{act: func(frame *ecs.UpdateFrame) {
		if first {
			first = false
			frame.Commands.Defer(func() { calls++ })
		}
	}})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	assert.Equal(t, 1, calls, "flushed commands must not replay on later ticks")
}
