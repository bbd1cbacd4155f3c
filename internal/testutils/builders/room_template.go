// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/descent/internal/entities"
)

// RoomTemplateBuilder provides a fluent interface for building test RoomTemplate instances
type RoomTemplateBuilder struct {
	template *entities.RoomTemplate
}

// NewRoomTemplateBuilder creates a connector with a north and south door
func NewRoomTemplateBuilder() *RoomTemplateBuilder {
	return &RoomTemplateBuilder{
		template: entities.NewRoomTemplate("template-test", entities.RoomTypeConnector,
			entities.DoorLowerSouth, entities.DoorLowerNorth),
	}
}

// WithID sets the template ID and its level reference
func (b *RoomTemplateBuilder) WithID(id string) *RoomTemplateBuilder {
	b.template.ID = id
	b.template.Level = "/levels/" + id
	return b
}

// WithLevel overrides the level reference
func (b *RoomTemplateBuilder) WithLevel(level string) *RoomTemplateBuilder {
	b.template.Level = level
	return b
}

// WithDoors replaces the door mask
func (b *RoomTemplateBuilder) WithDoors(doors ...entities.DoorFlag) *RoomTemplateBuilder {
	b.template.Doors = entities.MaskOf(doors...)
	return b
}

// WithSize sets the footprint edge in meters
func (b *RoomTemplateBuilder) WithSize(size int) *RoomTemplateBuilder {
	b.template.Size = size
	return b
}

// WithHeight sets the story height in meters
func (b *RoomTemplateBuilder) WithHeight(height int) *RoomTemplateBuilder {
	b.template.Height = height
	return b
}

// AsStart marks the template as a start room
func (b *RoomTemplateBuilder) AsStart() *RoomTemplateBuilder {
	b.template.Type = entities.RoomTypeStart
	return b
}

// AsConnector marks the template as a connector
func (b *RoomTemplateBuilder) AsConnector() *RoomTemplateBuilder {
	b.template.Type = entities.RoomTypeConnector
	return b
}

// AsBoss marks the template as a boss room with only its entrance
func (b *RoomTemplateBuilder) AsBoss() *RoomTemplateBuilder {
	b.template.Type = entities.RoomTypeBoss
	b.template.Doors = entities.MaskOf(entities.DoorLowerSouth)
	return b
}

// AsTerminal marks the template as a terminal with only its entrance
func (b *RoomTemplateBuilder) AsTerminal() *RoomTemplateBuilder {
	b.template.Type = entities.RoomTypeTerminal
	b.template.Doors = entities.MaskOf(entities.DoorLowerSouth)
	return b
}

// Build returns the built template
func (b *RoomTemplateBuilder) Build() *entities.RoomTemplate {
	t := *b.template
	return &t
}
