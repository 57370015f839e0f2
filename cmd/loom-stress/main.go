package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/loom/ecs"
)

//go:generate go run github.com/plus3/loom/cmd/stressgen -components 16 -systems 8 -out generated.go

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	capacity := flag.Int("capacity", 1<<17, "The fixed entity capacity of the world.")
	tick := flag.Duration("tick", 16*time.Millisecond, "The fixed simulation timestep.")
	profileMode := flag.String("profile", "", "Write a profile for this run: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("Unknown profile mode %q, want cpu or mem.", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup World, Scheduler, and Loop
	world := ecs.NewWorld(*capacity)
	RegisterAllGeneratedComponents(world)
	scheduler := ecs.NewScheduler(world)
	RegisterAllGeneratedSystems(scheduler)
	loop := ecs.NewLoop(scheduler, *tick, 4**tick)

	// 2. Populate the world with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		numComponents := rand.Intn(5) + 1
		if err := SpawnRandomEntity(world, numComponents); err != nil {
			log.Fatalf("Failed to spawn entity %d: %v", i, err)
		}
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		Tick:           *tick,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s at a %s tick...\n", *duration, *tick)

	startTime := time.Now()
	deadline := startTime.Add(*duration)
	lastFrameTime := startTime

	for time.Now().Before(deadline) {
		now := time.Now()
		elapsed := now.Sub(lastFrameTime)
		lastFrameTime = now

		stepStart := time.Now()
		ran := loop.Step(elapsed)
		stepDuration := time.Since(stepStart)

		if ran > 0 {
			report.TickTime.Samples = append(report.TickTime.Samples, stepDuration/time.Duration(ran))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = int64(loop.Ticks())
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
