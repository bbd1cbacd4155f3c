// Package collision tracks which grid cells already hold a room.
package collision

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/descent/internal/spatial"
)

// Tracker is the set of occupied grid coordinates
type Tracker struct {
	cells mapset.Set[spatial.GridCoord]
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{cells: mapset.New[spatial.GridCoord]()}
}

// Occupy marks coord as holding a room
func (t *Tracker) Occupy(coord spatial.GridCoord) {
	t.cells.Put(coord)
}

// IsOccupied reports whether a room already sits at coord
func (t *Tracker) IsOccupied(coord spatial.GridCoord) bool {
	return t.cells.Has(coord)
}

// Len returns the number of occupied cells
func (t *Tracker) Len() int {
	return t.cells.Size()
}

// Coords returns the occupied cells in X, Y, Z order
func (t *Tracker) Coords() []spatial.GridCoord {
	coords := make([]spatial.GridCoord, 0, t.cells.Size())
	t.cells.Each(func(c spatial.GridCoord) {
		coords = append(coords, c)
	})
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}
