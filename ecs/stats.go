package ecs

// WorldStats is a point-in-time summary of world occupancy.
type WorldStats struct {
	TotalEntityCount int
	Capacity         int
	KindCount        int
	SingletonCount   int
	KindBreakdown    []KindStats
	SingletonTypes   []string
}

// KindStats describes the population of one component kind.
type KindStats struct {
	Kind        uint8
	TypeName    string
	EntityCount int
}

// CollectStats scans the capability masks and returns per-kind population
// counts. The scan is linear in capacity; intended for tooling and reports,
// not per-entity hot paths.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		TotalEntityCount: w.live,
		Capacity:         w.capacity,
		KindCount:        len(w.tables),
		SingletonCount:   len(w.singletons),
		KindBreakdown:    make([]KindStats, len(w.tables)),
	}

	for i, table := range w.tables {
		stats.KindBreakdown[i] = KindStats{
			Kind:     uint8(i),
			TypeName: table.componentType().String(),
		}
	}

	for index := uint32(0); index < w.next; index++ {
		if !w.alive[index] {
			continue
		}
		mask := w.masks[index]
		for kind := range w.tables {
			if mask.Has(uint8(kind)) {
				stats.KindBreakdown[kind].EntityCount++
			}
		}
	}

	for t := range w.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
