package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/orchestrators/room"
	"github.com/KirkDiggler/descent/internal/spatial"
)

var (
	walkLength  int
	walkEnemies int
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Generate a level and walk a player down the golden path",
	Long: `Generate a level, then move a simulated player through the center of each golden path room.
Every room locks when entered, spawns enemies, and unlocks once they are destroyed.`,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().IntVar(&walkLength, "length", 8, "Golden path length, including start and boss")
	walkCmd.Flags().IntVar(&walkEnemies, "enemies", 2, "Enemies spawned in each room on entry")
}

// encounter returns the spawn groups for a room
func encounter(roomType entities.RoomType) []entities.SpawnGroup {
	switch roomType {
	case entities.RoomTypeStart:
		return nil
	case entities.RoomTypeBoss:
		return []entities.SpawnGroup{
			{ActorTypes: []string{"lich"}, Count: 1, RequireDestroy: true},
			{ActorTypes: []string{"skeleton", "zombie"}, Count: walkEnemies, RequireDestroy: true},
		}
	default:
		return []entities.SpawnGroup{
			{ActorTypes: []string{"skeleton", "zombie", "rat"}, Count: walkEnemies, RequireDestroy: true},
			{ActorTypes: []string{"crate"}, Count: 1},
		}
	}
}

func isEnemy(actorType string) bool {
	switch actorType {
	case "lich", "skeleton", "zombie", "rat":
		return true
	default:
		return false
	}
}

func runWalk(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	w := cmd.OutOrStdout()

	s, err := newSession(ctx, walkLength, true)
	if err != nil {
		return err
	}

	out, err := s.gen.Generate(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.gen.Release(ctx)
	}()

	renderLevel(w, out, s.seed)

	controllers := make(map[string]*room.Controller)
	for _, c := range s.gen.Controllers() {
		controllers[c.Room().GetID()] = c
	}

	// Handlers only record; controllers are driven after each tick
	var entered, cleared []string
	s.bus.SubscribeFunc(room.EventRoomEntered, 0, func(_ context.Context, e events.Event) error {
		entered = append(entered, e.Source().GetID())
		return nil
	})
	s.bus.SubscribeFunc(room.EventRequirementCleared, 0, func(_ context.Context, e events.Event) error {
		cleared = append(cleared, e.Source().GetID())
		return nil
	})

	for _, r := range out.Graph.PathRooms() {
		s.world.MovePlayer(r.Transform.Position.Add(spatial.Vector{Z: spatial.UnitScale}))

		for _, c := range s.gen.Controllers() {
			if err := c.Tick(ctx); err != nil {
				return err
			}
		}

		for _, id := range entered {
			c := controllers[id]
			renderEvent(w, "%s: entered %s (%s)", id, c.Room().Template.ID, c.Room().Template.Type)

			c.LockRoom(false)
			if err := c.BeginSpawn(ctx, encounter(c.Room().Template.Type)); err != nil {
				return err
			}

			for _, actor := range s.world.Actors() {
				if isEnemy(actor.GetType()) {
					fmt.Fprintf(w, "  destroyed %s at %s\n", actor.GetID(), actor.Location())
					actor.Destroy(ctx)
				}
			}
		}
		entered = entered[:0]

		for _, id := range cleared {
			c := controllers[id]
			renderEvent(w, "%s: requirement cleared", id)
			c.UnlockRoom(false)
			for _, door := range out.Graph.ExitsOf(c.Room()) {
				door.TryOpen(false)
			}
		}
		cleared = cleared[:0]
	}

	return nil
}
