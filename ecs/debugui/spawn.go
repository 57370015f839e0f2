package debugui

import (
	"fmt"

	"github.com/plus3/loom/ecs"
)

// RegisterDebugUIComponents registers the component tables and singletons the
// debug panels need. Call this once before SpawnDebugUI.
func RegisterDebugUIComponents(world *ecs.World) error {
	if _, err := ecs.RegisterTable[ImguiItem](world); err != nil {
		return fmt.Errorf("register debug ui components: %w", err)
	}
	ecs.AddSingleton(world, ImguiInputState{})
	return nil
}

// SpawnDebugUI creates one entity per debug panel, each carrying an ImguiItem
// render closure. The entity browser's selection feeds the component
// inspector. Pass a nil scheduler to omit per-system timings from the
// performance panel.
func SpawnDebugUI(world *ecs.World, scheduler *ecs.Scheduler) error {
	browser := NewEntityBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	kindViewer := NewKindViewerComponent()
	perfStats := NewPerformanceStatsComponent(120)
	queryDebugger := NewQueryDebuggerComponent()
	frameTimer := NewFrameTimer()

	panels := []func(){
		func() { browser.Render(world) },
		func() { inspector.Render(world, browser.GetSelectedEntity()) },
		func() { kindViewer.Render(world) },
		func() { perfStats.Render(world, scheduler, frameTimer.GetDeltaTime()) },
		func() { queryDebugger.Render(world) },
	}

	items, ok := ecs.TableFor[ImguiItem](world)
	if !ok {
		return fmt.Errorf("spawn debug ui: ImguiItem table not registered")
	}
	for _, render := range panels {
		entity, err := world.Create()
		if err != nil {
			return fmt.Errorf("spawn debug ui: %w", err)
		}
		if err := items.Set(entity, ImguiItem{Render: render}); err != nil {
			return fmt.Errorf("spawn debug ui: %w", err)
		}
	}
	return nil
}
