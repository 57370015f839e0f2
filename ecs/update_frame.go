package ecs

// UpdateFrame carries per-tick context into systems. DeltaTime is always the
// configured tick size in seconds when driven by a Loop; systems never
// observe a different delta.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
