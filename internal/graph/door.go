package graph

import (
	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Door is a doorway placed during generation. A sealed door is permanent dressing over a
// doorway that leads nowhere; it stays locked and never opens.
type Door struct {
	ID        DoorID
	Owner     RoomID
	Position  spatial.Vector
	Direction spatial.Vector

	Locked bool
	Open   bool
	Sealed bool

	Actor engine.Actor
}

// NewDoor creates an unlocked, closed door
func NewDoor(owner RoomID, position, direction spatial.Vector) *Door {
	return &Door{
		ID:        NoDoor,
		Owner:     owner,
		Position:  position,
		Direction: direction,
	}
}

// NewSealedDoor creates a sealed door, which is always locked and closed
func NewSealedDoor(owner RoomID, position, direction spatial.Vector) *Door {
	door := NewDoor(owner, position, direction)
	door.Sealed = true
	door.Locked = true
	return door
}

// SetLocked changes the lock. Sealed doors stay locked.
func (d *Door) SetLocked(locked bool) {
	if d.Sealed {
		return
	}
	d.Locked = locked
}

// TryOpen opens the door if it is unlocked, or regardless of the lock when ignoreLock is set.
// Sealed doors never open.
func (d *Door) TryOpen(ignoreLock bool) {
	if d.Sealed {
		return
	}
	d.Open = !d.Locked || ignoreLock
}

// TryClose closes the door. A locked door keeps its state unless ignoreLock is set.
func (d *Door) TryClose(ignoreLock bool) {
	if d.Sealed {
		return
	}
	if d.Locked && !ignoreLock {
		return
	}
	d.Open = false
}
