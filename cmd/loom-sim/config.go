package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Capacity        int           `toml:"capacity"`
	Tick            time.Duration `toml:"tick"`
	MaxBacklog      time.Duration `toml:"max_backlog"`
	Duration        time.Duration `toml:"duration"` // 0 = run until interrupted
	InitialEntities int           `toml:"initial_entities"`
	SpawnPerTick    int           `toml:"spawn_per_tick"`
	BoundX          float64       `toml:"bound_x"`
	BoundY          float64       `toml:"bound_y"`
	MinLifetime     float64       `toml:"min_lifetime"`
	MaxLifetime     float64       `toml:"max_lifetime"`
	StatsInterval   time.Duration `toml:"stats_interval"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Capacity:        1 << 14,
			Tick:            50 * time.Millisecond,
			MaxBacklog:      250 * time.Millisecond,
			Duration:        0,
			InitialEntities: 1000,
			SpawnPerTick:    5,
			BoundX:          1000,
			BoundY:          1000,
			MinLifetime:     2,
			MaxLifetime:     20,
			StatsInterval:   5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
