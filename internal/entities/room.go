// Package entities provides the authored data types level generation consumes.
package entities

import (
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Default template dimensions, in meters
const (
	DefaultRoomSize   = 20
	DefaultRoomHeight = 12
)

// RoomType defines a room's function in a tileset
type RoomType string

// Room types
const (
	RoomTypeStart     RoomType = "start"
	RoomTypeConnector RoomType = "connector"
	RoomTypeTerminal  RoomType = "terminal"
	RoomTypeBoss      RoomType = "boss"
)

// Valid reports whether t is a known room type
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStart, RoomTypeConnector, RoomTypeTerminal, RoomTypeBoss:
		return true
	default:
		return false
	}
}

func (t RoomType) String() string {
	return string(t)
}

// RoomTemplate is an externally authored room definition. Doors describe the template in its
// default rotation; the generator always enters a placed room through its lower south door.
type RoomTemplate struct {
	ID     string   `json:"id"`
	Level  string   `json:"level"`
	Type   RoomType `json:"type"`
	Doors  DoorMask `json:"doors"`
	Size   int      `json:"size"`
	Height int      `json:"height"`
}

// NewRoomTemplate creates a template with the default dimensions
func NewRoomTemplate(id string, roomType RoomType, doors ...DoorFlag) *RoomTemplate {
	return &RoomTemplate{
		ID:     id,
		Level:  "/levels/" + id,
		Type:   roomType,
		Doors:  MaskOf(doors...),
		Size:   DefaultRoomSize,
		Height: DefaultRoomHeight,
	}
}

// Validate checks the fields generation relies on
func (t *RoomTemplate) Validate() error {
	if t == nil {
		return errors.InvalidArgument("template cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", t.ID, vb)
	if !t.Type.Valid() {
		vb.InvalidField("type", "unknown room type "+string(t.Type))
	}
	if t.Size <= 0 {
		vb.Field("size", "must be positive")
	}
	if t.Height <= 0 {
		vb.Field("height", "must be positive")
	}

	return vb.Build()
}

// HalfExtent is half the room's footprint edge in world units
func (t *RoomTemplate) HalfExtent() float64 {
	return float64(t.Size) * spatial.UnitScale / 2
}

// WellFormedTerminal reports whether a terminal exposes exactly one door. Non-terminals always pass.
func (t *RoomTemplate) WellFormedTerminal() bool {
	return t.Type != RoomTypeTerminal || t.Doors.Count() == 1
}

// HeightExtent is the full story height in world units
func (t *RoomTemplate) HeightExtent() float64 {
	return float64(t.Height) * spatial.UnitScale
}
