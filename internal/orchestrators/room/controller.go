// Package room drives a single generated room at runtime: entrance detection, door locking and
// spawn groups the player must clear.
package room

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/pkg/rng"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Events published by a controller. The source of each event is the room.
const (
	EventRoomEntered        = "room.entered"
	EventRequirementCleared = "room.requirement_cleared"
)

// Predicate radii as fractions of the room's footprint edge
const (
	boundingRadiusFactor = 0.75
	entranceRadiusFactor = 0.125
)

var (
	// DefaultSpawnCenter is the spawn volume center in room-local space
	DefaultSpawnCenter = spatial.Vector{X: 0, Y: 400, Z: 1000}

	// DefaultSpawnExtent is the spawn volume half size in room-local space
	DefaultSpawnExtent = spatial.Vector{X: 800, Y: 400, Z: 100}
)

// Config holds the dependencies for a room controller
type Config struct {
	Graph  *graph.Graph
	RoomID graph.RoomID

	Actors   engine.ActorFactory
	EventBus events.EventBus

	// Player is optional; Tick does nothing without it
	Player engine.PlayerLocator

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller

	// SpawnCenter and SpawnExtent describe the spawn box. Leaving both zero selects the defaults.
	SpawnCenter spatial.Vector
	SpawnExtent spatial.Vector
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Graph == nil {
		vb.RequiredField("Graph")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.SpawnExtent.X < 0 || c.SpawnExtent.Y < 0 || c.SpawnExtent.Z < 0 {
		vb.InvalidField("SpawnExtent", "must not be negative")
	}

	return vb.Build()
}

// Controller is the runtime state machine of one room. Lock state lives on the room's doors;
// spawn and presence state live here.
type Controller struct {
	graph  *graph.Graph
	room   *graph.Room
	actors engine.ActorFactory
	bus    events.EventBus
	player engine.PlayerLocator
	roller dice.Roller
	center spatial.Vector
	extent spatial.Vector

	mu           sync.Mutex
	spawned      []engine.Actor
	pending      int
	generation   uint64
	spawning     bool
	playerInside bool
}

// NewController creates a controller for one room of a generated graph
func NewController(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid room controller config")
	}

	room, err := cfg.Graph.Room(cfg.RoomID)
	if err != nil {
		return nil, err
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	center, extent := cfg.SpawnCenter, cfg.SpawnExtent
	if center == spatial.Zero && extent == spatial.Zero {
		center, extent = DefaultSpawnCenter, DefaultSpawnExtent
	}

	return &Controller{
		graph:  cfg.Graph,
		room:   room,
		actors: cfg.Actors,
		bus:    cfg.EventBus,
		player: cfg.Player,
		roller: roller,
		center: center,
		extent: extent,
	}, nil
}

// Room returns the controlled room
func (c *Controller) Room() *graph.Room {
	return c.room
}

// LockRoom locks and closes every exit, and the entrance when lockEntrance is set
func (c *Controller) LockRoom(lockEntrance bool) {
	for _, door := range c.graph.ExitsOf(c.room) {
		door.SetLocked(true)
		door.TryClose(true)
	}

	if entrance := c.graph.EntranceOf(c.room); entrance != nil && lockEntrance {
		entrance.SetLocked(true)
		entrance.TryClose(true)
	}
}

// UnlockRoom unlocks every exit, and the entrance when unlockEntrance is set. Doors stay closed.
func (c *Controller) UnlockRoom(unlockEntrance bool) {
	for _, door := range c.graph.ExitsOf(c.room) {
		door.SetLocked(false)
	}

	if entrance := c.graph.EntranceOf(c.room); entrance != nil && unlockEntrance {
		entrance.SetLocked(false)
	}
}

// BeginSpawn replaces any previous spawns with the given groups. When no spawned actor must be
// destroyed once spawning finishes, EventRequirementCleared is published before BeginSpawn returns.
func (c *Controller) BeginSpawn(ctx context.Context, groups []entities.SpawnGroup) error {
	c.ClearSpawns(ctx)

	c.mu.Lock()
	generation := c.generation
	c.spawning = true
	c.mu.Unlock()

	err := c.spawnGroups(ctx, generation, groups)

	c.mu.Lock()
	c.spawning = false
	cleared := err == nil && generation == c.generation && c.pending == 0
	c.mu.Unlock()

	if err != nil {
		return err
	}
	if cleared {
		return c.publish(ctx, EventRequirementCleared)
	}

	return nil
}

// spawnGroups spawns every group. Requirement clears are held back until it returns.
func (c *Controller) spawnGroups(ctx context.Context, generation uint64, groups []entities.SpawnGroup) error {
	for _, group := range groups {
		if len(group.ActorTypes) == 0 {
			continue
		}

		for i := 0; i < group.Count; i++ {
			idx, err := rng.Intn(c.roller, len(group.ActorTypes))
			if err != nil {
				return errors.Wrap(err, "failed to pick spawn actor type")
			}
			actorType := group.ActorTypes[idx]

			local, err := c.spawnPoint()
			if err != nil {
				return err
			}
			at := spatial.Transform{
				Position: c.room.Transform.TransformPoint(local),
				Yaw:      c.room.Transform.Yaw,
			}

			actor, err := c.actors.Spawn(ctx, actorType, at)
			if err != nil {
				slog.Warn("Failed to spawn room actor",
					"room_id", c.room.GetID(),
					"actor_type", actorType,
					"error", err,
				)
				continue
			}

			c.track(actor, generation, group.RequireDestroy)
		}
	}

	return nil
}

// ClearSpawns destroys every actor spawned by this controller. Destruction callbacks from the
// cleared actors are ignored.
func (c *Controller) ClearSpawns(ctx context.Context) {
	c.mu.Lock()
	spawned := c.spawned
	c.spawned = nil
	c.pending = 0
	c.generation++
	c.mu.Unlock()

	for _, actor := range spawned {
		actor.Destroy(ctx)
	}
}

// Close releases the controller's spawns
func (c *Controller) Close(ctx context.Context) {
	c.ClearSpawns(ctx)
}

// HasActiveSpawns reports whether any spawned actor is still alive
func (c *Controller) HasActiveSpawns() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.spawned) > 0
}

// HasRequiredSpawns reports whether actors that must be destroyed remain
func (c *Controller) HasRequiredSpawns() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pending > 0
}

// IsPlayerInside reports the presence state from the last Tick
func (c *Controller) IsPlayerInside() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.playerInside
}

// Tick samples the player position and publishes EventRoomEntered when the player has just
// entered the room.
func (c *Controller) Tick(ctx context.Context) error {
	if c.player == nil {
		return nil
	}

	pos, ok := c.player.CurrentPlayerPosition(ctx)
	if !ok {
		return nil
	}

	inside := c.contains(pos)

	c.mu.Lock()
	entered := inside && !c.playerInside
	c.playerInside = inside
	c.mu.Unlock()

	if !entered {
		return nil
	}

	slog.Debug("Player entered room",
		"room_id", c.room.GetID(),
		"path_index", c.room.PathIndex,
		"template_id", c.room.Template.ID,
	)

	return c.publish(ctx, EventRoomEntered)
}

// contains is the room presence predicate: inside the bounding circle, inside the footprint box,
// and clear of the entrance doorway.
func (c *Controller) contains(pos spatial.Vector) bool {
	template := c.room.Template
	size := float64(template.Size) * spatial.UnitScale
	center := c.room.Transform.Position

	delta := pos.Sub(center)
	radius := size * boundingRadiusFactor
	if delta.SquaredLength() > radius*radius {
		return false
	}

	half := template.HalfExtent()
	if math.Abs(delta.X) > half || math.Abs(delta.Y) > half {
		return false
	}
	if delta.Z < 0 || delta.Z > template.HeightExtent() {
		return false
	}

	if entrance := c.graph.EntranceOf(c.room); entrance != nil {
		doorRadius := size * entranceRadiusFactor
		if pos.Sub(entrance.Position).SquaredLength() < doorRadius*doorRadius {
			return false
		}
	}

	return true
}

func (c *Controller) track(actor engine.Actor, generation uint64, required bool) {
	c.mu.Lock()
	c.spawned = append(c.spawned, actor)
	if required {
		c.pending++
	}
	c.mu.Unlock()

	actor.OnDestroyed(func(ctx context.Context) {
		if c.onDestroyed(actor, generation, required) {
			if err := c.publish(ctx, EventRequirementCleared); err != nil {
				slog.Error("Failed to publish requirement cleared",
					"room_id", c.room.GetID(),
					"error", err,
				)
			}
		}
	})
}

// onDestroyed forgets a destroyed actor and reports whether it was the last required one. While
// BeginSpawn is still spawning the clear is left for BeginSpawn to report.
func (c *Controller) onDestroyed(actor engine.Actor, generation uint64, required bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}

	for i, a := range c.spawned {
		if a == actor {
			c.spawned = append(c.spawned[:i], c.spawned[i+1:]...)
			break
		}
	}

	if !required || c.pending == 0 {
		return false
	}
	c.pending--

	return c.pending == 0 && !c.spawning
}

// spawnPoint draws a point on the integer lattice of the spawn box in room-local space
func (c *Controller) spawnPoint() (spatial.Vector, error) {
	x, err := c.lattice(c.center.X, c.extent.X)
	if err != nil {
		return spatial.Zero, err
	}
	y, err := c.lattice(c.center.Y, c.extent.Y)
	if err != nil {
		return spatial.Zero, err
	}
	z, err := c.lattice(c.center.Z, c.extent.Z)
	if err != nil {
		return spatial.Zero, err
	}
	return spatial.Vector{X: x, Y: y, Z: z}, nil
}

func (c *Controller) lattice(center, extent float64) (float64, error) {
	lo := int(math.Round(center - extent))
	hi := int(math.Round(center + extent))

	offset, err := rng.Intn(c.roller, hi-lo+1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw spawn position")
	}

	return float64(lo + offset), nil
}

func (c *Controller) publish(ctx context.Context, eventType string) error {
	if err := c.bus.Publish(ctx, events.NewGameEvent(eventType, c.room, nil)); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}
