package ecs_test

import (
	"fmt"

	"github.com/plus3/loom/ecs"
)

// ExampleSingleton demonstrates world-level state shared across systems
// without attaching it to any entity.
func ExampleSingleton() {
	world := ecs.NewWorld(64)
	velocities := ecs.MustRegisterTable[Velocity](world)

	ecs.AddSingleton(world, Gravity{Y: -10})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&gravitySystem{})

	e, _ := world.Create()
	velocities.Set(e, Velocity{})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	vel, _ := velocities.Get(e)
	fmt.Printf("fall speed after 2s: %.0f\n", vel.DY)

	// Output:
	// fall speed after 2s: -20
}
