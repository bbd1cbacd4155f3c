// Package graph holds a generated level: rooms and doors stored in an arena and referenced by
// stable handles. The Graph is the only owner; rooms and doors refer to each other by ID.
package graph

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/descent/internal/collision"
	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// RoomID is a handle to a room in a Graph
type RoomID int

// DoorID is a handle to a door in a Graph
type DoorID int

// Sentinel handles
const (
	NoRoom RoomID = -1
	NoDoor DoorID = -1
)

// Room is a placed instance of a RoomTemplate
type Room struct {
	ID        RoomID
	Template  *entities.RoomTemplate
	Transform spatial.Transform
	Grid      spatial.GridCoord

	// OpenDoors are the template's doorways not yet resolved into an exit or a seal
	OpenDoors entities.DoorMask

	// PathIndex is the golden path position; terminals share the index of the room they hang off
	PathIndex int

	Entrance DoorID
	Exits    []DoorID

	Level   engine.LevelHandle
	Manager engine.Actor
}

// NewRoom creates an unattached room with no entrance
func NewRoom(template *entities.RoomTemplate, transform spatial.Transform, grid spatial.GridCoord, pathIndex int) *Room {
	room := &Room{
		ID:        NoRoom,
		Template:  template,
		Transform: transform,
		Grid:      grid,
		PathIndex: pathIndex,
		Entrance:  NoDoor,
	}
	if template != nil {
		room.OpenDoors = template.Doors
	}
	return room
}

// GetID returns the room's entity ID
func (r *Room) GetID() string {
	return fmt.Sprintf("room_%d", r.ID)
}

// GetType returns the entity type
func (r *Room) GetType() string {
	return "room"
}

// Graph is a generated level
type Graph struct {
	ID          string
	GeneratedAt time.Time

	rooms    []*Room
	doors    []*Door
	path     []RoomID
	occupied *collision.Tracker
}

// New creates an empty graph
func New(id string, generatedAt time.Time) *Graph {
	return &Graph{
		ID:          id,
		GeneratedAt: generatedAt,
		occupied:    collision.NewTracker(),
	}
}

// AddRoom stores room, assigns its ID and marks its grid cell occupied.
// Returns errors.AlreadyExists if another room holds the cell.
func (g *Graph) AddRoom(room *Room) (RoomID, error) {
	if room == nil || room.Template == nil {
		return NoRoom, errors.InvalidArgument("room and template are required")
	}
	if g.occupied.IsOccupied(room.Grid) {
		return NoRoom, errors.AlreadyExistsf("grid cell %s already holds a room", room.Grid).
			WithMeta("template_id", room.Template.ID)
	}

	room.ID = RoomID(len(g.rooms))
	g.rooms = append(g.rooms, room)
	g.occupied.Occupy(room.Grid)

	return room.ID, nil
}

// AddDoor stores door and assigns its ID
func (g *Graph) AddDoor(door *Door) DoorID {
	door.ID = DoorID(len(g.doors))
	g.doors = append(g.doors, door)
	return door.ID
}

// AddExit records door as an exit of room
func (g *Graph) AddExit(roomID RoomID, doorID DoorID) error {
	room, err := g.Room(roomID)
	if err != nil {
		return err
	}
	if _, err := g.Door(doorID); err != nil {
		return err
	}
	room.Exits = append(room.Exits, doorID)
	return nil
}

// MarkPath appends a room to the golden path
func (g *Graph) MarkPath(id RoomID) error {
	if _, err := g.Room(id); err != nil {
		return err
	}
	g.path = append(g.path, id)
	return nil
}

// Room looks up a room by handle
func (g *Graph) Room(id RoomID) (*Room, error) {
	if id < 0 || int(id) >= len(g.rooms) {
		return nil, errors.NotFoundf("room %d not found", id)
	}
	return g.rooms[id], nil
}

// Door looks up a door by handle
func (g *Graph) Door(id DoorID) (*Door, error) {
	if id < 0 || int(id) >= len(g.doors) {
		return nil, errors.NotFoundf("door %d not found", id)
	}
	return g.doors[id], nil
}

// EntranceOf returns the room's entrance door, or nil when it has none
func (g *Graph) EntranceOf(room *Room) *Door {
	door, err := g.Door(room.Entrance)
	if err != nil {
		return nil
	}
	return door
}

// ExitsOf returns the room's exit doors in registration order
func (g *Graph) ExitsOf(room *Room) []*Door {
	exits := make([]*Door, 0, len(room.Exits))
	for _, id := range room.Exits {
		if door, err := g.Door(id); err == nil {
			exits = append(exits, door)
		}
	}
	return exits
}

// Rooms returns every room in insertion order
func (g *Graph) Rooms() []*Room {
	return g.rooms
}

// Doors returns every door in insertion order
func (g *Graph) Doors() []*Door {
	return g.doors
}

// PathRooms returns the golden path rooms in order
func (g *Graph) PathRooms() []*Room {
	rooms := make([]*Room, 0, len(g.path))
	for _, id := range g.path {
		rooms = append(rooms, g.rooms[id])
	}
	return rooms
}

// IsOccupied reports whether a room already sits at coord
func (g *Graph) IsOccupied(coord spatial.GridCoord) bool {
	return g.occupied.IsOccupied(coord)
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	return len(g.rooms)
}

// IsEmpty reports whether the graph has no rooms
func (g *Graph) IsEmpty() bool {
	return len(g.rooms) == 0
}
