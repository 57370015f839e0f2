package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndAlive(t *testing.T) {
	tw := newTestWorld()

	e, err := tw.world.Create()
	require.NoError(t, err)

	assert.True(t, tw.world.Alive(e))
	assert.Equal(t, 1, tw.world.Count())

	// Fresh entities carry an empty capability mask
	mask, ok := tw.world.MaskOf(e)
	require.True(t, ok)
	assert.Equal(t, ecs.Mask(0), mask)
}

func TestDestroy(t *testing.T) {
	tw := newTestWorld()
	e := mustCreate(tw)

	require.NoError(t, tw.world.Destroy(e))
	assert.False(t, tw.world.Alive(e))
	assert.Equal(t, 0, tw.world.Count())

	// Destroying again reports an invalid entity
	assert.ErrorIs(t, tw.world.Destroy(e), ecs.ErrInvalidEntity)
}

func TestDestroyOutOfRange(t *testing.T) {
	tw := newTestWorld()

	assert.ErrorIs(t, tw.world.Destroy(ecs.NewEntity(uint32(testCapacity)+10, 1)), ecs.ErrInvalidEntity)
	assert.ErrorIs(t, tw.world.Destroy(ecs.NewEntity(0, 1)), ecs.ErrInvalidEntity)
}

func TestCapacityExhaustion(t *testing.T) {
	tw := newTestWorld()

	entities := make([]ecs.Entity, 0, testCapacity)
	for i := 0; i < testCapacity; i++ {
		e, err := tw.world.Create()
		require.NoError(t, err)
		entities = append(entities, e)
	}

	// One past capacity must fail
	_, err := tw.world.Create()
	assert.ErrorIs(t, err, ecs.ErrCapacityExceeded)

	// After one destruction, one more create succeeds and reuses the slot
	require.NoError(t, tw.world.Destroy(entities[17]))
	e, err := tw.world.Create()
	require.NoError(t, err)
	assert.Equal(t, entities[17].Index(), e.Index())
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	tw := newTestWorld()

	stale := mustCreate(tw)
	require.NoError(t, tw.positions.Set(stale, Position{X: 1}))
	require.NoError(t, tw.world.Destroy(stale))

	fresh, err := tw.world.Create()
	require.NoError(t, err)
	require.Equal(t, stale.Index(), fresh.Index())
	assert.Greater(t, fresh.Generation(), stale.Generation())

	// The stale handle no longer reaches the recycled slot
	assert.False(t, tw.world.Alive(stale))
	assert.ErrorIs(t, tw.positions.Set(stale, Position{X: 2}), ecs.ErrInvalidEntity)
	_, err = tw.positions.Get(stale)
	assert.ErrorIs(t, err, ecs.ErrInvalidEntity)

	// And the fresh one starts with a clean mask
	assert.False(t, tw.positions.Has(fresh))
}

func TestRecyclingManyTimes(t *testing.T) {
	tw := newTestWorld()

	seen := make(map[ecs.Entity]bool)
	for i := 0; i < 100; i++ {
		e := mustCreate(tw)
		assert.False(t, seen[e], "identifier reissued while a prior holder existed")
		seen[e] = true
		require.NoError(t, tw.world.Destroy(e))
	}
}
