package testutils

import (
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/testutils/builders"
)

// Template IDs used by the fixture tilesets
const (
	TestStartID     = "start-hall"
	TestConnectorID = "corridor"
	TestBossID      = "boss-lair"
	TestTerminalID  = "dead-end"
)

// CreateLinearTileset returns one start, connector and boss template whose only exits lead north.
// With a roller that always picks the first candidate it produces a straight line of rooms.
func CreateLinearTileset() []*entities.RoomTemplate {
	return []*entities.RoomTemplate{
		builders.NewRoomTemplateBuilder().WithID(TestStartID).AsStart().
			WithDoors(entities.DoorLowerSouth, entities.DoorLowerNorth).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestConnectorID).AsConnector().
			WithDoors(entities.DoorLowerSouth, entities.DoorLowerNorth).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestBossID).AsBoss().Build(),
	}
}

// CreateBranchingTileset returns templates exposing every lower door plus a terminal and no boss
func CreateBranchingTileset() []*entities.RoomTemplate {
	lower := []entities.DoorFlag{
		entities.DoorLowerNorth, entities.DoorLowerSouth, entities.DoorLowerEast, entities.DoorLowerWest,
	}
	return []*entities.RoomTemplate{
		builders.NewRoomTemplateBuilder().WithID(TestStartID).AsStart().WithDoors(lower...).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestConnectorID).AsConnector().WithDoors(lower...).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestTerminalID).AsTerminal().Build(),
	}
}

// CreateFullTileset returns a tileset exercising every door slot and room type
func CreateFullTileset() []*entities.RoomTemplate {
	return []*entities.RoomTemplate{
		builders.NewRoomTemplateBuilder().WithID(TestStartID).AsStart().
			WithDoors(entities.AllDoorFlags()...).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestConnectorID).AsConnector().
			WithDoors(entities.AllDoorFlags()...).Build(),
		builders.NewRoomTemplateBuilder().WithID("stairwell").AsConnector().
			WithDoors(entities.DoorLowerSouth, entities.DoorUpperNorth, entities.DoorUpperEast).Build(),
		builders.NewRoomTemplateBuilder().WithID(TestTerminalID).AsTerminal().Build(),
		builders.NewRoomTemplateBuilder().WithID(TestBossID).AsBoss().Build(),
	}
}
