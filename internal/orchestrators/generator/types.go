package generator

import (
	"time"

	"github.com/KirkDiggler/descent/internal/graph"
)

// GenerateOutput is the result of a generation pass
type GenerateOutput struct {
	Graph *graph.Graph
	Stats Stats
}

// Stats summarizes a generated level
type Stats struct {
	// RequestedLength is the configured golden path length
	RequestedLength int

	PathRooms     int
	TerminalRooms int
	SealedDoors   int

	// LoadFailures counts rooms whose level could not be loaded
	LoadFailures int

	Duration time.Duration
}

// Truncated reports whether the golden path came out shorter than requested
func (s Stats) Truncated() bool {
	return s.PathRooms < s.RequestedLength
}
