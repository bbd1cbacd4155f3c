package catalog

import (
	"github.com/KirkDiggler/descent/internal/entities"
)

// DemoTemplates is a small tileset covering every room type and both stories
func DemoTemplates() []*entities.RoomTemplate {
	lower := []entities.DoorFlag{
		entities.DoorLowerNorth, entities.DoorLowerSouth, entities.DoorLowerEast, entities.DoorLowerWest,
	}

	crossroads := entities.NewRoomTemplate("crossroads", entities.RoomTypeConnector, lower...)

	corridor := entities.NewRoomTemplate("corridor", entities.RoomTypeConnector,
		entities.DoorLowerSouth, entities.DoorLowerNorth)

	bend := entities.NewRoomTemplate("bend", entities.RoomTypeConnector,
		entities.DoorLowerSouth, entities.DoorLowerEast)

	stairwell := entities.NewRoomTemplate("stairwell", entities.RoomTypeConnector,
		entities.DoorLowerSouth, entities.DoorUpperNorth, entities.DoorUpperWest)
	stairwell.Height = 16

	gallery := entities.NewRoomTemplate("gallery", entities.RoomTypeConnector, entities.AllDoorFlags()...)

	closet := entities.NewRoomTemplate("closet", entities.RoomTypeTerminal, entities.DoorLowerSouth)
	closet.Size = 10
	closet.Height = 6

	shrine := entities.NewRoomTemplate("shrine", entities.RoomTypeTerminal, entities.DoorLowerSouth)

	return []*entities.RoomTemplate{
		entities.NewRoomTemplate("entry-hall", entities.RoomTypeStart, lower...),
		crossroads,
		corridor,
		bend,
		stairwell,
		gallery,
		closet,
		shrine,
		entities.NewRoomTemplate("throne-room", entities.RoomTypeBoss, entities.DoorLowerSouth),
	}
}
