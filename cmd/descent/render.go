package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/orchestrators/generator"
)

var (
	colorHeading = color.Style{color.FgWhite, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
	colorStart   = color.Style{color.FgGreen, color.OpBold}
	colorPath    = color.Style{color.FgCyan}
	colorBoss    = color.Style{color.FgRed, color.OpBold}
	colorBranch  = color.Style{color.FgYellow}
	colorSealed  = color.Style{color.FgMagenta}
	colorEvent   = color.Style{color.FgBlue, color.OpBold}
)

func roomStyle(t entities.RoomType) color.Style {
	switch t {
	case entities.RoomTypeStart:
		return colorStart
	case entities.RoomTypeBoss:
		return colorBoss
	case entities.RoomTypeTerminal:
		return colorBranch
	default:
		return colorPath
	}
}

// renderLevel prints every room ordered by path index, terminals beneath the room they hang off
func renderLevel(w io.Writer, out *generator.GenerateOutput, seed uint64) {
	g := out.Graph
	stats := out.Stats

	fmt.Fprintln(w, colorHeading.Sprintf("Level %s", g.ID))
	fmt.Fprintln(w, colorSubtle.Sprintf("seed %d, %d rooms, path %d/%d, %d terminals, %d sealed doors",
		seed, g.Len(), stats.PathRooms, stats.RequestedLength, stats.TerminalRooms, stats.SealedDoors))

	if g.IsEmpty() {
		fmt.Fprintln(w, colorBoss.Sprint("No start template in catalog, nothing generated"))
		return
	}

	sealed := make(map[graph.RoomID]int)
	for _, d := range g.Doors() {
		if d.Sealed {
			sealed[d.Owner]++
		}
	}

	for _, pathRoom := range g.PathRooms() {
		renderRoom(w, pathRoom, sealed[pathRoom.ID], "")

		for _, exit := range g.ExitsOf(pathRoom) {
			for _, r := range g.Rooms() {
				if r.Entrance == exit.ID && r.Template.Type == entities.RoomTypeTerminal {
					renderRoom(w, r, sealed[r.ID], "  └─ ")
				}
			}
		}
	}

	if stats.Truncated() {
		fmt.Fprintln(w, colorSubtle.Sprint("golden path ended before the requested length"))
	}
}

func renderRoom(w io.Writer, r *graph.Room, sealed int, indent string) {
	style := roomStyle(r.Template.Type)
	fmt.Fprintf(w, "%s%s %s %s exits %d %s\n",
		indent,
		style.Sprintf("#%-2d %-12s", r.PathIndex, r.Template.ID),
		colorSubtle.Sprintf("%-10s", r.Template.Type),
		colorSubtle.Sprintf("grid %-10s", r.Grid),
		len(r.Exits),
		colorSealed.Sprintf("sealed %d", sealed),
	)
}

func renderEvent(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, colorEvent.Sprintf(format, args...))
}
