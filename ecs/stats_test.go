package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
)

func TestWorldStats(t *testing.T) {
	tw := newTestWorld()

	stats := tw.world.CollectStats()
	if stats.TotalEntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.TotalEntityCount)
	}
	if stats.KindCount != 5 {
		t.Errorf("expected 5 component kinds, got %d", stats.KindCount)
	}
	if stats.Capacity != testCapacity {
		t.Errorf("expected capacity %d, got %d", testCapacity, stats.Capacity)
	}

	a := mustCreate(tw)
	b := mustCreate(tw)
	c := mustCreate(tw)
	_ = tw.positions.Set(a, Position{})
	_ = tw.positions.Set(b, Position{})
	_ = tw.velocities.Set(b, Velocity{})
	_ = tw.names.Set(c, Name{Value: "idle"})

	ecs.AddSingleton(tw.world, Gravity{Y: -9.81})

	stats = tw.world.CollectStats()
	if stats.TotalEntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.TotalEntityCount)
	}
	if stats.SingletonCount != 1 {
		t.Errorf("expected 1 singleton, got %d", stats.SingletonCount)
	}

	counts := map[string]int{}
	for _, kind := range stats.KindBreakdown {
		counts[kind.TypeName] = kind.EntityCount
	}
	if counts["ecs_test.Position"] != 2 {
		t.Errorf("expected 2 positions, got %d", counts["ecs_test.Position"])
	}
	if counts["ecs_test.Velocity"] != 1 {
		t.Errorf("expected 1 velocity, got %d", counts["ecs_test.Velocity"])
	}
	if counts["ecs_test.Health"] != 0 {
		t.Errorf("expected 0 healths, got %d", counts["ecs_test.Health"])
	}
}

func TestWorldStatsAfterDestroy(t *testing.T) {
	tw := newTestWorld()

	a := mustCreate(tw)
	b := mustCreate(tw)
	_ = tw.positions.Set(a, Position{})
	_ = tw.positions.Set(b, Position{})

	if err := tw.world.Destroy(a); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}

	stats := tw.world.CollectStats()
	if stats.TotalEntityCount != 1 {
		t.Errorf("expected 1 entity, got %d", stats.TotalEntityCount)
	}
	if stats.KindBreakdown[0].EntityCount != 1 {
		t.Errorf("expected 1 position after destroy, got %d", stats.KindBreakdown[0].EntityCount)
	}
}
