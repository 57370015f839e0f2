package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/loom/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedKinds: make(map[uint8]bool),
		maxResults:    50,
	}
}

// Render builds a required capability mask from the checked kinds and lists
// the entities whose mask covers it, the same superset test systems use.
func (qd *QueryDebuggerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Required kinds:")
	for kind, compType := range world.ComponentTypes() {
		checked := qd.selectedKinds[uint8(kind)]
		if imgui.Checkbox(fmt.Sprintf("%s##kind%d", compType.String(), kind), &checked) {
			qd.selectedKinds[uint8(kind)] = checked
		}
	}

	var required ecs.Mask
	for kind, checked := range qd.selectedKinds {
		if checked {
			required = required.With(kind)
		}
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Required mask: 0x%016X", uint64(required)))

	matches := make([]ecs.Entity, 0, qd.maxResults)
	total := 0
	for _, e := range world.Entities() {
		mask, ok := world.MaskOf(e)
		if !ok || !mask.Contains(required) {
			continue
		}
		total++
		if len(matches) < qd.maxResults {
			matches = append(matches, e)
		}
	}

	imgui.Text(fmt.Sprintf("Matching entities: %d", total))
	if total > len(matches) {
		imgui.Text(fmt.Sprintf("(showing first %d)", len(matches)))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("QueryResults", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Mask")
		imgui.TableHeadersRow()

		for _, e := range matches {
			mask, _ := world.MaskOf(e)
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.Index()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%016X", uint64(mask)))
		}

		imgui.EndTable()
	}

	imgui.End()
}
