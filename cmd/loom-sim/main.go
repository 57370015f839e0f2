// Command loom-sim runs a headless particle simulation on a fixed-timestep
// loop. It exists as a runnable end-to-end exercise of the world, scheduler,
// command buffer, and loop working together under a real configuration.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/loom/ecs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("LOOM_SIM_CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	world := ecs.NewWorld(cfg.Simulation.Capacity)
	positions := ecs.MustRegisterTable[Position](world)
	velocities := ecs.MustRegisterTable[Velocity](world)
	lifetimes := ecs.MustRegisterTable[Lifetime](world)
	ecs.AddSingleton(world, SimClock{})
	ecs.AddSingleton(world, Bounds{X: cfg.Simulation.BoundX, Y: cfg.Simulation.BoundY})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&LifetimeSystem{})
	scheduler.Register(NewSpawnSystem(cfg.Simulation))
	statsTicks := uint64(cfg.Simulation.StatsInterval / cfg.Simulation.Tick)
	scheduler.Register(NewStatsSystem(log, statsTicks))

	for i := 0; i < cfg.Simulation.InitialEntities; i++ {
		entity, err := world.Create()
		if err != nil {
			return fmt.Errorf("populate world: %w", err)
		}
		positions.Set(entity, Position{
			X: rand.Float64() * cfg.Simulation.BoundX,
			Y: rand.Float64() * cfg.Simulation.BoundY,
		})
		velocities.Set(entity, Velocity{
			DX: rand.Float64()*100 - 50,
			DY: rand.Float64()*100 - 50,
		})
		lifetimes.Set(entity, Lifetime{
			Remaining: cfg.Simulation.MinLifetime +
				rand.Float64()*(cfg.Simulation.MaxLifetime-cfg.Simulation.MinLifetime),
		})
	}

	loop := ecs.NewLoop(scheduler, cfg.Simulation.Tick, cfg.Simulation.MaxBacklog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.Simulation.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Simulation.Duration)
		defer cancel()
	}

	log.Info("simulation starting",
		zap.Duration("tick", cfg.Simulation.Tick),
		zap.Int("capacity", cfg.Simulation.Capacity),
		zap.Int("initial_entities", cfg.Simulation.InitialEntities),
	)

	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("run loop: %w", err)
	}

	stats := world.CollectStats()
	log.Info("simulation stopped",
		zap.Uint64("ticks", loop.Ticks()),
		zap.Int("entities", stats.TotalEntityCount),
	)
	for _, sys := range scheduler.GetStats().Systems {
		log.Info("system timings",
			zap.String("system", sys.Name),
			zap.Duration("avg", sys.AvgDuration),
			zap.Duration("max", sys.MaxDuration),
		)
	}
	return nil
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
