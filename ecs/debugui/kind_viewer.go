package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/loom/ecs"
)

func NewKindViewerComponent() KindViewerComponent {
	return KindViewerComponent{
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render draws one row per registered component kind with its capability bit
// and population, plus a bar proportional to the most populated kind.
func (kv *KindViewerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Kind Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := world.CollectStats()
	kinds := make([]ecs.KindStats, len(stats.KindBreakdown))
	copy(kinds, stats.KindBreakdown)

	maxEntityCount := 0
	for _, kind := range kinds {
		if kind.EntityCount > maxEntityCount {
			maxEntityCount = kind.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("KindTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Bit")
		imgui.TableSetupColumn("Component Type")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			kv.sortColumn = int(spec.ColumnIndex())
			kv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		sort.Slice(kinds, func(i, j int) bool {
			a, b := kinds[i], kinds[j]
			var less bool
			switch kv.sortColumn {
			case 0:
				less = a.Kind < b.Kind
			case 1:
				less = a.TypeName < b.TypeName
			case 2:
				less = a.EntityCount < b.EntityCount
			default:
				less = a.Kind < b.Kind
			}
			if !kv.sortAscending {
				return !less
			}
			return less
		})

		for _, kind := range kinds {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", kind.Kind))

			imgui.TableNextColumn()
			imgui.Text(kind.TypeName)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", kind.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(kind.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("%d / %d kind bits in use", stats.KindCount, ecs.MaxComponentKinds))

	imgui.End()
}
