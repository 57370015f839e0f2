package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for _, item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime
		item.Position.Z += item.Velocity.DZ * frame.DeltaTime
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	ExecuteCount int
	TotalHealth  int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for _, item := range s.Entities.Iter() {
		s.TotalHealth += item.Health.Current
	}
}

func TestSchedulerExecutesInOrder(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)

	var order []string
	scheduler.Register(systemFunc(func(*ecs.UpdateFrame) { order = append(order, "a") }))
	scheduler.Register(systemFunc(func(*ecs.UpdateFrame) { order = append(order, "b") }))
	scheduler.Register(systemFunc(func(*ecs.UpdateFrame) { order = append(order, "c") }))

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, order)
}

// systemFunc adapts a plain function to the System interface for tests.
type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }

func TestSchedulerInitializesQueries(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)

	movement := &MovementSystem{}
	health := &HealthSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{}))
	require.NoError(t, tw.velocities.Set(e, Velocity{DX: 1}))

	h := mustCreate(tw)
	require.NoError(t, tw.healths.Set(h, Health{Current: 40, Max: 100}))

	scheduler.Once(1.0)

	assert.Equal(t, 1, movement.ExecuteCount)
	assert.Equal(t, 1, health.ExecuteCount)
	assert.Equal(t, 40, health.TotalHealth)
}

// A body with position and velocity advances by velocity*dt in one tick.
func TestKinematicsTick(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)
	scheduler.Register(&MovementSystem{})

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{X: 0, Y: 0, Z: 0}))
	require.NoError(t, tw.velocities.Set(e, Velocity{DX: 1, DY: 0, DZ: 0}))

	scheduler.Once(1.0)

	pos, err := tw.positions.Get(e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 0, Z: 0}, pos)
}

// A body without velocity is skipped by the mask test; no error, no motion.
func TestKinematicsSkipsPartialEntities(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)
	scheduler.Register(&MovementSystem{})

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{X: 3}))

	scheduler.Once(1.0)

	pos, err := tw.positions.Get(e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 3}, pos)
}

type destroyerSystem struct {
	target ecs.Entity
}

func (s *destroyerSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Destroy(s.target)
}

type witnessSystem struct {
	target    ecs.Entity
	aliveSeen []bool
}

func (s *witnessSystem) Execute(frame *ecs.UpdateFrame) {
	s.aliveSeen = append(s.aliveSeen, frame.World.Alive(s.target))
}

// Destruction requested mid-tick is applied only after every system of that
// tick has run; a later system still observes the entity alive.
func TestStructuralChangesAreDeferred(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)

	e := mustCreate(tw)
	require.NoError(t, tw.positions.Set(e, Position{}))

	witness := &witnessSystem{target: e}
	scheduler.Register(&destroyerSystem{target: e})
	scheduler.Register(witness)

	scheduler.Once(1.0)
	require.Equal(t, []bool{true}, witness.aliveSeen)
	assert.False(t, tw.world.Alive(e), "destruction applied at end of tick")

	scheduler.Once(1.0)
	assert.Equal(t, []bool{true, false}, witness.aliveSeen)
}

func TestSchedulerStats(t *testing.T) {
	tw := newTestWorld()
	scheduler := ecs.NewScheduler(tw.world)

	scheduler.Register(&MovementSystem{})
	scheduler.Register(&HealthSystem{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)
	scheduler.Once(1.0)

	stats := scheduler.GetStats()
	require.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "HealthSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(3), sys.ExecutionCount)
		assert.GreaterOrEqual(t, sys.MaxDuration, sys.MinDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
	}
}

// Two runs fed the identical create/attach sequence and the identical tick
// sequence end with identical component tables.
func TestDeterministicRuns(t *testing.T) {
	run := func() []Position {
		tw := newTestWorld()
		scheduler := ecs.NewScheduler(tw.world)
		scheduler.Register(&MovementSystem{})

		for i := 0; i < 50; i++ {
			e := mustCreate(tw)
			require.NoError(t, tw.positions.Set(e, Position{X: float64(i)}))
			if i%3 == 0 {
				require.NoError(t, tw.velocities.Set(e, Velocity{DX: float64(i), DY: 0.5}))
			}
			if i%7 == 0 {
				require.NoError(t, tw.world.Destroy(e))
			}
		}

		for tick := 0; tick < 10; tick++ {
			scheduler.Once(1.0 / 60.0)
		}

		var result []Position
		query := ecs.NewQuery[struct{ *Position }](tw.world)
		for _, item := range query.Iter() {
			result = append(result, *item.Position)
		}
		return result
	}

	assert.Equal(t, run(), run())
}
