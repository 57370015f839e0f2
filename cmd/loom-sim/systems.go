package main

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/plus3/loom/ecs"
)

type ClockSystem struct {
	Clock ecs.Singleton[SimClock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Elapsed += frame.DeltaTime
	clock.Ticks++
}

// MovementSystem integrates velocities and bounces particles off the bounds.
type MovementSystem struct {
	Bounds ecs.Singleton[Bounds]
	Moving ecs.Query[struct {
		Position *Position
		Velocity *Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	bounds := s.Bounds.Get()
	for _, item := range s.Moving.Iter() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime

		if item.Position.X < 0 || item.Position.X > bounds.X {
			item.Velocity.DX = -item.Velocity.DX
		}
		if item.Position.Y < 0 || item.Position.Y > bounds.Y {
			item.Velocity.DY = -item.Velocity.DY
		}
	}
}

// LifetimeSystem counts lifetimes down and queues expired entities for
// destruction at the end of the tick.
type LifetimeSystem struct {
	Expiring ecs.Query[struct {
		Lifetime *Lifetime
	}]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	for entity, item := range s.Expiring.Iter() {
		item.Lifetime.Remaining -= frame.DeltaTime
		if item.Lifetime.Remaining <= 0 {
			frame.Commands.Destroy(entity)
		}
	}
}

// SpawnSystem tops the world up with fresh particles every tick.
type SpawnSystem struct {
	cfg SimulationConfig
}

func NewSpawnSystem(cfg SimulationConfig) *SpawnSystem {
	return &SpawnSystem{cfg: cfg}
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	for i := 0; i < s.cfg.SpawnPerTick; i++ {
		frame.Commands.Spawn(spawnParticle(s.cfg))
	}
}

func spawnParticle(cfg SimulationConfig) func(w *ecs.World, e ecs.Entity) {
	return func(w *ecs.World, e ecs.Entity) {
		positions, _ := ecs.TableFor[Position](w)
		velocities, _ := ecs.TableFor[Velocity](w)
		lifetimes, _ := ecs.TableFor[Lifetime](w)

		positions.Set(e, Position{
			X: rand.Float64() * cfg.BoundX,
			Y: rand.Float64() * cfg.BoundY,
		})
		velocities.Set(e, Velocity{
			DX: rand.Float64()*100 - 50,
			DY: rand.Float64()*100 - 50,
		})
		lifetimes.Set(e, Lifetime{
			Remaining: cfg.MinLifetime + rand.Float64()*(cfg.MaxLifetime-cfg.MinLifetime),
		})
	}
}

// StatsSystem periodically logs world occupancy and per-system timings.
type StatsSystem struct {
	Log           *zap.Logger
	Clock         ecs.Singleton[SimClock]
	intervalTicks uint64
	sinceLast     uint64
}

func NewStatsSystem(log *zap.Logger, intervalTicks uint64) *StatsSystem {
	if intervalTicks == 0 {
		intervalTicks = 1
	}
	return &StatsSystem{Log: log, intervalTicks: intervalTicks}
}

func (s *StatsSystem) Execute(frame *ecs.UpdateFrame) {
	s.sinceLast++
	if s.sinceLast < s.intervalTicks {
		return
	}
	s.sinceLast = 0

	clock := s.Clock.Get()
	stats := frame.World.CollectStats()
	s.Log.Info("simulation stats",
		zap.Uint64("ticks", clock.Ticks),
		zap.Float64("simulated_seconds", clock.Elapsed),
		zap.Int("entities", stats.TotalEntityCount),
		zap.Int("capacity", stats.Capacity),
	)
}
