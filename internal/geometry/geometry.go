// Package geometry maps room doors to world positions and back.
package geometry

import (
	"math"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// EntranceFlag is the door every placed room is entered through. TransformFrom orients a room so
// this door faces back at the doorway it was attached to.
const EntranceFlag = entities.DoorLowerSouth

// LocalDirection returns the unit direction of a door in the room's local frame
func LocalDirection(flag entities.DoorFlag) spatial.Vector {
	switch flag.Compass() {
	case entities.CompassNorth:
		return spatial.North
	case entities.CompassSouth:
		return spatial.South
	case entities.CompassEast:
		return spatial.East
	default:
		return spatial.West
	}
}

// VectorsFor returns the world position and direction of a door on a room placed at roomTransform.
// ok is false when flag is not a single door the template exposes.
func VectorsFor(template *entities.RoomTemplate, roomTransform spatial.Transform, flag entities.DoorFlag) (point, direction spatial.Vector, ok bool) {
	if template == nil || !flag.Valid() || !template.Doors.Has(flag) {
		return spatial.Zero, spatial.Zero, false
	}

	direction = roomTransform.Rotate(LocalDirection(flag))
	point = roomTransform.Position.Add(direction.Scale(template.HalfExtent()))

	if flag.IsUpper() {
		point = point.Add(spatial.Up.Scale(template.HeightExtent()))
	}

	return point, direction, true
}

// TransformFrom returns the transform that attaches template to a doorway at entryPoint facing
// entryDirection. A zero direction is treated as north.
func TransformFrom(template *entities.RoomTemplate, entryPoint, entryDirection spatial.Vector) spatial.Transform {
	dir := entryDirection.SafeNormal()
	if dir == spatial.Zero {
		dir = spatial.North
	}

	return spatial.Transform{
		Position: entryPoint.Add(dir.Scale(template.HalfExtent())),
		Yaw:      spatial.YawFacing(dir),
	}
}

// GridStep is the grid offset from a room to the cell behind one of its doors. Upper doors lead
// one story up.
func GridStep(direction spatial.Vector, flag entities.DoorFlag) spatial.GridCoord {
	step := spatial.GridCoord{
		X: int(math.Round(direction.X)),
		Y: int(math.Round(direction.Y)),
	}
	if flag.IsUpper() {
		step.Z = 1
	}
	return step
}
