package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/loom/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	Entity     ecs.Entity
	Generation uint32
	Mask       ecs.Mask
	KindNames  []string
}

type entityBrowserCache struct {
	entities      []EntityInfo
	lastLiveCount int
	sortColumn    int
	sortAscending bool
	valid         bool
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &entityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
			lastLiveCount: -1,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(world)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.cache.valid = false
		eb.rebuildCacheIfNeeded(world)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Generation")
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(filteredEntities) {
			endIdx = len(filteredEntities)
		}

		for i := startIdx; i < endIdx; i++ {
			info := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntity == info.Entity
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.Entity.Index()), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntity = info.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Generation))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%016X", uint64(info.Mask)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.KindNames, ", "))
		}

		imgui.EndTable()
	}

	filteredEntities := eb.getFilteredEntities()

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

func (eb *EntityBrowserComponent) rebuildCacheIfNeeded(world *ecs.World) {
	if world.Count() != eb.cache.lastLiveCount {
		eb.cache.valid = false
		eb.cache.lastLiveCount = world.Count()
	}

	if !eb.cache.valid {
		eb.rebuildCache(world)
	}
}

func (eb *EntityBrowserComponent) rebuildCache(world *ecs.World) {
	eb.cache.entities = eb.cache.entities[:0]

	types := world.ComponentTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}

	for _, e := range world.Entities() {
		mask, ok := world.MaskOf(e)
		if !ok {
			continue
		}

		kindNames := make([]string, 0, mask.Count())
		for kind := range names {
			if mask.Has(uint8(kind)) {
				kindNames = append(kindNames, names[kind])
			}
		}

		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			Entity:     e,
			Generation: e.Generation(),
			Mask:       mask,
			KindNames:  kindNames,
		})
	}

	eb.cache.valid = true
	eb.sortEntities()
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.Entity.Index() < b.Entity.Index()
		case 1:
			less = a.Generation < b.Generation
		case 2:
			less = a.Mask < b.Mask
		case 3:
			less = strings.Join(a.KindNames, ",") < strings.Join(b.KindNames, ",")
		default:
			less = a.Entity.Index() < b.Entity.Index()
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserComponent) getFilteredEntities() []EntityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, info := range eb.cache.entities {
		slotStr := fmt.Sprintf("%d", info.Entity.Index())
		maskStr := fmt.Sprintf("0x%x", uint64(info.Mask))
		kindsStr := strings.ToLower(strings.Join(info.KindNames, " "))

		if !strings.Contains(slotStr, filterLower) &&
			!strings.Contains(maskStr, filterLower) &&
			!strings.Contains(kindsStr, filterLower) {
			continue
		}

		filtered = append(filtered, info)
	}

	return filtered
}

// GetSelectedEntity returns the entity selected in the browser, if any.
func (eb *EntityBrowserComponent) GetSelectedEntity() ecs.Entity {
	return eb.selectedEntity
}
