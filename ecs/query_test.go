package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryIteration(t *testing.T) {
	tw := newTestWorld()

	moving := mustCreate(tw)
	require.NoError(t, tw.positions.Set(moving, Position{X: 1}))
	require.NoError(t, tw.velocities.Set(moving, Velocity{DX: 2}))

	still := mustCreate(tw)
	require.NoError(t, tw.positions.Set(still, Position{X: 10}))

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](tw.world)

	found := 0
	for e, item := range query.Iter() {
		found++
		assert.Equal(t, moving, e)
		assert.Equal(t, 1.0, item.Position.X)
		assert.Equal(t, 2.0, item.Velocity.DX)
	}
	assert.Equal(t, 1, found)
	assert.Equal(t, 1, query.Count())
}

func TestQueryMutatesInPlace(t *testing.T) {
	tw := newTestWorld()

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{X: 5}))

	query := ecs.NewQuery[struct{ *Position }](tw.world)
	for _, item := range query.Iter() {
		item.Position.X += 100
	}

	pos, err := tw.positions.Get(e)
	require.NoError(t, err)
	assert.Equal(t, 105.0, pos.X)
}

func TestQueryRequiredMask(t *testing.T) {
	tw := newTestWorld()

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](tw.world)

	expected := tw.positions.Mask() | tw.velocities.Mask()
	assert.Equal(t, expected, query.Required())
}

func TestQueryOptionalField(t *testing.T) {
	tw := newTestWorld()

	named := mustCreate(tw)
	require.NoError(t, tw.positions.Set(named, Position{X: 1}))
	require.NoError(t, tw.names.Set(named, Name{Value: "alpha"}))

	anonymous := mustCreate(tw)
	require.NoError(t, tw.positions.Set(anonymous, Position{X: 2}))

	query := ecs.NewQuery[struct {
		*Position
		Label *Name `ecs:"optional"`
	}](tw.world)

	// Optional kinds do not join the required mask
	assert.Equal(t, tw.positions.Mask(), query.Required())

	byEntity := map[ecs.Entity]*Name{}
	for e, item := range query.Iter() {
		byEntity[e] = item.Label
	}

	require.Len(t, byEntity, 2)
	require.NotNil(t, byEntity[named])
	assert.Equal(t, "alpha", byEntity[named].Value)
	assert.Nil(t, byEntity[anonymous])
}

func TestQueryOrderIsAscendingAndStable(t *testing.T) {
	tw := newTestWorld()

	var spawned []ecs.Entity
	for i := 0; i < 20; i++ {
		e := mustCreate(tw)
		require.NoError(t, tw.positions.Set(e, Position{X: float64(i)}))
		spawned = append(spawned, e)
	}

	// Punch holes so the scan has to skip dead slots
	require.NoError(t, tw.world.Destroy(spawned[3]))
	require.NoError(t, tw.world.Destroy(spawned[11]))

	query := ecs.NewQuery[struct{ *Position }](tw.world)

	collect := func() []ecs.Entity {
		var order []ecs.Entity
		for e := range query.Iter() {
			order = append(order, e)
		}
		return order
	}

	first := collect()
	second := collect()
	require.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Index(), first[i].Index())
	}
}

func TestQueryGet(t *testing.T) {
	tw := newTestWorld()

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{X: 7}))

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](tw.world)

	assert.Nil(t, query.Get(e), "entity missing a required component")

	require.NoError(t, tw.velocities.Set(e, Velocity{DX: 1}))
	item := query.Get(e)
	require.NotNil(t, item)
	assert.Equal(t, 7.0, item.Position.X)

	require.NoError(t, tw.world.Destroy(e))
	assert.Nil(t, query.Get(e))
}

func TestQueryPanicsOnBadViewTypes(t *testing.T) {
	tw := newTestWorld()

	assert.Panics(t, func() {
		ecs.NewQuery[int](tw.world)
	})

	assert.Panics(t, func() {
		ecs.NewQuery[struct{ P Position }](tw.world)
	})

	assert.Panics(t, func() {
		ecs.NewQuery[struct{ *AI }](tw.world)
	})

	assert.Panics(t, func() {
		ecs.NewQuery[struct {
			V *Position `ecs:"bogus"`
		}](tw.world)
	})
}

func TestQuerySkipsDetachedComponents(t *testing.T) {
	tw := newTestWorld()

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{X: 1}))
	require.NoError(t, tw.velocities.Set(e, Velocity{DX: 1}))

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](tw.world)
	require.Equal(t, 1, query.Count())

	require.NoError(t, tw.velocities.Remove(e))
	assert.Equal(t, 0, query.Count())
}
