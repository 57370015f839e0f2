package debugui

import (
	"github.com/plus3/loom/ecs"
)

// EntityBrowserComponent lists live entities with their masks and component
// kinds, with filtering, sorting, and paging.
type EntityBrowserComponent struct {
	cache              *entityBrowserCache
	selectedEntity     ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspectorComponent shows and edits the components attached to the
// entity selected in the browser.
type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
}

// KindViewerComponent shows the registered component kinds, their capability
// bits, and their populations.
type KindViewerComponent struct {
	sortColumn    int
	sortAscending bool
}

// QueryDebuggerComponent builds a required mask from checked kinds and lists
// the entities whose capability mask covers it.
type QueryDebuggerComponent struct {
	selectedKinds map[uint8]bool
	maxResults    int
}

// PerformanceStatsComponent plots frame times and summarizes world occupancy
// and per-system scheduler timings.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
