package generator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/geometry"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// backfill resolves every open door on the golden path rooms into a terminal room or a sealed
// door. Terminals it attaches are not themselves backfilled.
func (o *orchestrator) backfill(ctx context.Context, g *graph.Graph, path []*graph.Room) error {
	for _, r := range path {
		for !r.OpenDoors.IsEmpty() {
			if err := ctx.Err(); err != nil {
				return err
			}

			flag, err := pickDoor(o.roller, r.OpenDoors)
			if err != nil {
				return err
			}
			r.OpenDoors = r.OpenDoors.Without(flag)

			point, direction, ok := geometry.VectorsFor(r.Template, r.Transform, flag)
			if !ok {
				continue
			}

			target := r.Grid.Add(geometry.GridStep(direction, flag))
			if g.IsOccupied(target) {
				o.seal(ctx, g, r, flag, point, direction, "collision")
				continue
			}

			terminal, found, err := o.catalog.Random(o.roller, entities.RoomTypeTerminal, o.maxTries)
			if err != nil {
				return err
			}
			if !found {
				o.seal(ctx, g, r, flag, point, direction, "no terminal template")
				continue
			}

			if err := o.attachTerminal(ctx, g, r, terminal, point, direction, target); err != nil {
				return err
			}
		}
	}

	return nil
}

func (o *orchestrator) seal(ctx context.Context, g *graph.Graph, r *graph.Room, flag entities.DoorFlag,
	point, direction spatial.Vector, reason string) {
	o.addDoor(ctx, g, r.ID, point, direction, true)
	o.stats.SealedDoors++

	slog.Debug("Sealed door",
		"room_id", r.ID,
		"door", flag.String(),
		"reason", reason,
	)
}

// attachTerminal places terminal behind the doorway at point. The new exit door on r is the
// terminal's entrance.
func (o *orchestrator) attachTerminal(ctx context.Context, g *graph.Graph, r *graph.Room, terminal *entities.RoomTemplate,
	point, direction spatial.Vector, grid spatial.GridCoord) error {
	at := geometry.TransformFrom(terminal, point, direction)

	t := graph.NewRoom(terminal, at, grid, r.PathIndex)
	t.OpenDoors = terminal.Doors.Without(geometry.EntranceFlag)
	if _, err := g.AddRoom(t); err != nil {
		return err
	}

	t.Level = o.loadLevel(ctx, terminal, at)

	t.Entrance = o.addDoor(ctx, g, r.ID, point, direction, false)
	if err := g.AddExit(r.ID, t.Entrance); err != nil {
		return err
	}

	t.Manager = o.spawn(ctx, o.managerType, at)
	o.stats.TerminalRooms++

	slog.Debug("Attached terminal",
		"room_id", r.ID,
		"terminal_id", t.ID,
		"template_id", terminal.ID,
		"grid", grid.String(),
	)

	return nil
}
