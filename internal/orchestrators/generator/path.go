package generator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/geometry"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/pkg/rng"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// maxDoorDraws bounds the bit rejection sampling in pickDoor before it falls back to the lowest
// candidate
const maxDoorDraws = 64

// exit is a doorway chosen on a placed room
type exit struct {
	flag      entities.DoorFlag
	point     spatial.Vector
	direction spatial.Vector
	grid      spatial.GridCoord
}

// buildPath places the golden path and returns its rooms in order. The final room gets no exit.
// The path stops early when no exit is free or no template of the next type can be drawn.
func (o *orchestrator) buildPath(ctx context.Context, g *graph.Graph) ([]*graph.Room, error) {
	template, ok, err := o.catalog.Random(o.roller, entities.RoomTypeStart, o.maxTries)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Warn("No start template in catalog, level left empty", "level_id", g.ID)
		return nil, nil
	}

	at := o.origin
	grid := spatial.GridCoord{}
	entrance := graph.NoDoor
	var path []*graph.Room

	for remaining := o.length; remaining > 0; remaining-- {
		if err := ctx.Err(); err != nil {
			return path, errors.Wrap(err, "generation cancelled")
		}

		r, err := o.placeRoom(ctx, g, template, at, grid, len(path), entrance)
		if err != nil {
			return path, err
		}
		if err := g.MarkPath(r.ID); err != nil {
			return path, err
		}
		path = append(path, r)

		if remaining == 1 {
			break
		}

		next, found, err := o.findExit(g, r)
		if err != nil {
			return path, err
		}
		if !found {
			slog.Info("Golden path blocked, every exit collides",
				"level_id", g.ID,
				"room_id", r.ID,
				"path_rooms", len(path),
			)
			break
		}

		nextType := entities.RoomTypeConnector
		if remaining-1 == 1 {
			nextType = entities.RoomTypeBoss
		}

		template, ok, err = o.catalog.Random(o.roller, nextType, o.maxTries)
		if err != nil {
			return path, err
		}
		if !ok {
			slog.Info("No template for next room, golden path capped",
				"level_id", g.ID,
				"room_type", nextType,
				"path_rooms", len(path),
			)
			break
		}

		entrance = o.addDoor(ctx, g, r.ID, next.point, next.direction, false)
		if err := g.AddExit(r.ID, entrance); err != nil {
			return path, err
		}
		r.OpenDoors = r.OpenDoors.Without(next.flag)

		at = geometry.TransformFrom(template, next.point, next.direction)
		grid = next.grid
	}

	return path, nil
}

// findExit picks an open door on r whose neighbouring cell is free. Doors leading into occupied
// cells are skipped but stay open for the backfill pass to seal. Each attempt excludes one slot,
// so a room is resolved in at most DoorSlots attempts.
func (o *orchestrator) findExit(g *graph.Graph, r *graph.Room) (exit, bool, error) {
	var excluded entities.DoorMask

	for attempt := 0; attempt < entities.DoorSlots; attempt++ {
		candidates := r.OpenDoors.Minus(excluded)
		if candidates.IsEmpty() {
			break
		}

		flag, err := pickDoor(o.roller, candidates)
		if err != nil {
			return exit{}, false, err
		}
		excluded = excluded.With(flag)

		point, direction, ok := geometry.VectorsFor(r.Template, r.Transform, flag)
		if !ok {
			continue
		}

		target := r.Grid.Add(geometry.GridStep(direction, flag))
		if g.IsOccupied(target) {
			slog.Debug("Exit collides with placed room",
				"room_id", r.ID,
				"door", flag.String(),
				"grid", target.String(),
			)
			continue
		}

		return exit{flag: flag, point: point, direction: direction, grid: target}, true, nil
	}

	return exit{}, false, nil
}

// pickDoor draws door slots until one lands in candidates. candidates must not be empty.
func pickDoor(roller dice.Roller, candidates entities.DoorMask) (entities.DoorFlag, error) {
	for i := 0; i < maxDoorDraws; i++ {
		pos, err := rng.Intn(roller, entities.DoorSlots)
		if err != nil {
			return 0, errors.Wrap(err, "failed to draw door slot")
		}
		if flag := entities.FlagAt(pos); candidates.Has(flag) {
			return flag, nil
		}
	}

	return candidates.Lowest(), nil
}
