package entities

import (
	"math/bits"
	"strings"
)

// Compass is one of the four horizontal door directions in a room's local frame
type Compass uint8

// Compass directions
const (
	CompassNorth Compass = iota
	CompassSouth
	CompassEast
	CompassWest
)

func (c Compass) String() string {
	switch c {
	case CompassNorth:
		return "north"
	case CompassSouth:
		return "south"
	case CompassEast:
		return "east"
	case CompassWest:
		return "west"
	default:
		return "unknown"
	}
}

// DoorFlag names a single door slot on a room template. Lower and Upper differ by one story.
type DoorFlag uint8

// Door slots, one bit each
const (
	DoorLowerNorth DoorFlag = 1 << iota
	DoorLowerSouth
	DoorLowerEast
	DoorLowerWest
	DoorUpperNorth
	DoorUpperSouth
	DoorUpperEast
	DoorUpperWest
)

// DoorSlots is the number of door slots a template can expose
const DoorSlots = 8

// AllDoorFlags lists every door slot in bit order
func AllDoorFlags() []DoorFlag {
	return []DoorFlag{
		DoorLowerNorth, DoorLowerSouth, DoorLowerEast, DoorLowerWest,
		DoorUpperNorth, DoorUpperSouth, DoorUpperEast, DoorUpperWest,
	}
}

// FlagAt returns the flag for bit position pos (0-7)
func FlagAt(pos int) DoorFlag {
	return DoorFlag(1 << uint(pos))
}

// Valid reports whether f is exactly one door slot
func (f DoorFlag) Valid() bool {
	return f != 0 && f&(f-1) == 0
}

// Position returns the bit position of a valid flag
func (f DoorFlag) Position() int {
	return bits.TrailingZeros8(uint8(f))
}

// IsUpper reports whether the door sits on the upper story
func (f DoorFlag) IsUpper() bool {
	return f >= DoorUpperNorth
}

// Compass returns the horizontal direction of the door
func (f DoorFlag) Compass() Compass {
	return Compass(f.Position() % 4)
}

// Opposite returns the flag on the same story facing the other way
func (f DoorFlag) Opposite() DoorFlag {
	switch f {
	case DoorLowerNorth:
		return DoorLowerSouth
	case DoorLowerSouth:
		return DoorLowerNorth
	case DoorLowerEast:
		return DoorLowerWest
	case DoorLowerWest:
		return DoorLowerEast
	case DoorUpperNorth:
		return DoorUpperSouth
	case DoorUpperSouth:
		return DoorUpperNorth
	case DoorUpperEast:
		return DoorUpperWest
	case DoorUpperWest:
		return DoorUpperEast
	default:
		return 0
	}
}

func (f DoorFlag) String() string {
	if !f.Valid() {
		return "none"
	}
	level := "lower"
	if f.IsUpper() {
		level = "upper"
	}
	return level + "_" + f.Compass().String()
}

// DoorMask is the set of door slots a room exposes
type DoorMask uint8

// MaskOf builds a mask from individual flags
func MaskOf(flags ...DoorFlag) DoorMask {
	var m DoorMask
	for _, f := range flags {
		m |= DoorMask(f)
	}
	return m
}

// Has reports whether f is in the mask
func (m DoorMask) Has(f DoorFlag) bool {
	return f != 0 && m&DoorMask(f) == DoorMask(f)
}

// With returns the mask with f added
func (m DoorMask) With(f DoorFlag) DoorMask {
	return m | DoorMask(f)
}

// Without returns the mask with f removed
func (m DoorMask) Without(f DoorFlag) DoorMask {
	return m &^ DoorMask(f)
}

// Union returns m | o
func (m DoorMask) Union(o DoorMask) DoorMask {
	return m | o
}

// Minus returns the slots in m that are not in o
func (m DoorMask) Minus(o DoorMask) DoorMask {
	return m &^ o
}

// IsEmpty reports whether no slots remain
func (m DoorMask) IsEmpty() bool {
	return m == 0
}

// Count returns the number of slots in the mask
func (m DoorMask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Lowest returns the lowest slot in the mask, or 0 when empty
func (m DoorMask) Lowest() DoorFlag {
	if m == 0 {
		return 0
	}
	return DoorFlag(m & -m)
}

// Flags lists the slots in the mask in bit order
func (m DoorMask) Flags() []DoorFlag {
	var flags []DoorFlag
	for _, f := range AllDoorFlags() {
		if m.Has(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

func (m DoorMask) String() string {
	if m == 0 {
		return "none"
	}
	names := make([]string, 0, m.Count())
	for _, f := range m.Flags() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}
