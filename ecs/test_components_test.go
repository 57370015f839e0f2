package ecs_test

import "github.com/plus3/loom/ecs"

// Common test component types
type Position struct {
	X, Y, Z float64
}

type Velocity struct {
	DX, DY, DZ float64
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Lifetime struct {
	Remaining float64
}

type AI struct {
	State int
}

type Flag struct{}

const testCapacity = 256

type testWorld struct {
	world      *ecs.World
	positions  *ecs.Table[Position]
	velocities *ecs.Table[Velocity]
	names      *ecs.Table[Name]
	healths    *ecs.Table[Health]
	lifetimes  *ecs.Table[Lifetime]
}

func newTestWorld() *testWorld {
	w := ecs.NewWorld(testCapacity)
	return &testWorld{
		world:      w,
		positions:  ecs.MustRegisterTable[Position](w),
		velocities: ecs.MustRegisterTable[Velocity](w),
		names:      ecs.MustRegisterTable[Name](w),
		healths:    ecs.MustRegisterTable[Health](w),
		lifetimes:  ecs.MustRegisterTable[Lifetime](w),
	}
}

func mustCreate(tw *testWorld) ecs.Entity {
	e, err := tw.world.Create()
	if err != nil {
		panic(err)
	}
	return e
}
