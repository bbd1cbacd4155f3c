// Package generator assembles a level: a golden path of rooms from a start room toward a boss room,
// then a backfill pass that seals or caps every doorway left open along it.
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/KirkDiggler/descent/internal/orchestrators/generator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/descent/internal/catalog"
	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/geometry"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/orchestrators/room"
	"github.com/KirkDiggler/descent/internal/pkg/clock"
	"github.com/KirkDiggler/descent/internal/pkg/idgen"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Defaults applied to zero config values
const (
	DefaultPathLength  = 8
	DefaultManagerType = "room_manager"
	DefaultDoorType    = "room_door"
	DefaultSealType    = "room_seal"
)

// Service generates and releases one level
type Service interface {
	// Generate builds the level. Calling it again while a level exists returns the existing
	// level unchanged. A catalog without a start template yields an empty graph and no error.
	Generate(ctx context.Context) (*GenerateOutput, error)

	// Release destroys every spawned actor and unloads every level. Safe to call repeatedly.
	Release(ctx context.Context) error

	HasGenerated() bool

	// Graph returns the current level, or nil before generation
	Graph() *graph.Graph

	// Controllers returns one runtime controller per room, in room order. Empty unless an
	// EventBus is configured.
	Controllers() []*room.Controller
}

// Config holds the dependencies for the generator
type Config struct {
	Catalog *catalog.Catalog
	Loader  engine.AssetLoader
	Actors  engine.ActorFactory

	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller

	// IDGenerator names levels. Defaults to UUIDs.
	IDGenerator idgen.Generator

	// Clock defaults to the system clock
	Clock clock.Clock

	// Origin is the start room's transform
	Origin spatial.Transform

	// PathLength is the requested golden path length, including start and boss
	PathLength int

	// MaxTemplateTries bounds template rejection sampling
	MaxTemplateTries int

	ManagerType string
	DoorType    string
	SealType    string

	// Runtime collaborators. Controllers are only built when EventBus is set.
	Player   engine.PlayerLocator
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.PathLength < 0 {
		vb.InvalidField("PathLength", "cannot be negative")
	}
	if c.MaxTemplateTries < 0 {
		vb.InvalidField("MaxTemplateTries", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog  *catalog.Catalog
	loader   engine.AssetLoader
	actors   engine.ActorFactory
	roller   dice.Roller
	ids      idgen.Generator
	clock    clock.Clock
	origin   spatial.Transform
	length   int
	maxTries int

	managerType string
	doorType    string
	sealType    string

	player engine.PlayerLocator
	bus    events.EventBus

	graph       *graph.Graph
	stats       Stats
	controllers []*room.Controller

	// Everything spawned or loaded, in order, for Release
	spawned []engine.Actor
	levels  []engine.LevelHandle
}

// NewOrchestrator creates a new generator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		catalog:     cfg.Catalog,
		loader:      cfg.Loader,
		actors:      cfg.Actors,
		roller:      cfg.Roller,
		ids:         cfg.IDGenerator,
		clock:       cfg.Clock,
		origin:      cfg.Origin,
		length:      cfg.PathLength,
		maxTries:    cfg.MaxTemplateTries,
		managerType: cfg.ManagerType,
		doorType:    cfg.DoorType,
		sealType:    cfg.SealType,
		player:      cfg.Player,
		bus:         cfg.EventBus,
	}

	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.ids == nil {
		o.ids = idgen.NewUUID("level")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.length == 0 {
		o.length = DefaultPathLength
	}
	if o.maxTries == 0 {
		o.maxTries = catalog.DefaultMaxTries
	}
	if o.managerType == "" {
		o.managerType = DefaultManagerType
	}
	if o.doorType == "" {
		o.doorType = DefaultDoorType
	}
	if o.sealType == "" {
		o.sealType = DefaultSealType
	}

	return o, nil
}

func (o *orchestrator) HasGenerated() bool {
	return o.graph != nil && !o.graph.IsEmpty()
}

func (o *orchestrator) Graph() *graph.Graph {
	return o.graph
}

func (o *orchestrator) Controllers() []*room.Controller {
	return o.controllers
}

func (o *orchestrator) Generate(ctx context.Context) (*GenerateOutput, error) {
	if o.HasGenerated() {
		slog.Debug("Level already generated", "level_id", o.graph.ID)
		return &GenerateOutput{Graph: o.graph, Stats: o.stats}, nil
	}

	started := o.clock.Now()
	o.graph = graph.New(o.ids.Generate(), started)
	o.stats = Stats{RequestedLength: o.length}

	slog.Info("Generating level",
		"level_id", o.graph.ID,
		"path_length", o.length,
		"templates", o.catalog.Len(),
	)

	path, err := o.buildPath(ctx, o.graph)
	if err != nil {
		return nil, o.abort(ctx, errors.Wrap(err, "failed to build golden path"))
	}
	o.stats.PathRooms = len(path)

	if err := o.backfill(ctx, o.graph, path); err != nil {
		return nil, o.abort(ctx, errors.Wrap(err, "failed to backfill open doors"))
	}

	if err := o.buildControllers(); err != nil {
		return nil, o.abort(ctx, err)
	}

	o.stats.Duration = o.clock.Now().Sub(started)

	slog.Info("Generated level",
		"level_id", o.graph.ID,
		"rooms", o.graph.Len(),
		"path_rooms", o.stats.PathRooms,
		"terminal_rooms", o.stats.TerminalRooms,
		"sealed_doors", o.stats.SealedDoors,
		"load_failures", o.stats.LoadFailures,
		"truncated", o.stats.Truncated(),
		"duration", o.stats.Duration,
	)

	return &GenerateOutput{Graph: o.graph, Stats: o.stats}, nil
}

func (o *orchestrator) Release(ctx context.Context) error {
	if o.graph == nil && len(o.spawned) == 0 && len(o.levels) == 0 {
		return nil
	}

	levelID := ""
	if o.graph != nil {
		levelID = o.graph.ID
	}

	for _, c := range o.controllers {
		c.Close(ctx)
	}
	o.controllers = nil
	o.graph = nil

	// Managers are spawned before the doors they reference
	for _, actor := range o.spawned {
		actor.Destroy(ctx)
	}

	for _, level := range o.levels {
		level.Unload(ctx)
	}

	slog.Info("Released level",
		"level_id", levelID,
		"actors", len(o.spawned),
		"levels", len(o.levels),
	)

	o.spawned = nil
	o.levels = nil

	return nil
}

// abort tears down a partially built level so the next Generate starts over
func (o *orchestrator) abort(ctx context.Context, cause error) error {
	slog.Warn("Generation failed, releasing partial level",
		"level_id", o.graph.ID,
		"rooms", o.graph.Len(),
		"error", cause,
	)

	if err := o.Release(context.WithoutCancel(ctx)); err != nil {
		slog.Error("Failed to release partial level", "error", err)
	}
	o.stats = Stats{}

	return cause
}

func (o *orchestrator) buildControllers() error {
	if o.bus == nil {
		return nil
	}

	controllers := make([]*room.Controller, 0, o.graph.Len())
	for _, r := range o.graph.Rooms() {
		c, err := room.NewController(&room.Config{
			Graph:    o.graph,
			RoomID:   r.ID,
			Actors:   o.actors,
			EventBus: o.bus,
			Player:   o.player,
			Roller:   o.roller,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to create controller for room %d", r.ID)
		}
		controllers = append(controllers, c)
	}
	o.controllers = controllers

	return nil
}

// placeRoom registers a room entered through entrance, then loads its level and spawns its manager
func (o *orchestrator) placeRoom(ctx context.Context, g *graph.Graph, template *entities.RoomTemplate,
	at spatial.Transform, grid spatial.GridCoord, pathIndex int, entrance graph.DoorID) (*graph.Room, error) {
	r := graph.NewRoom(template, at, grid, pathIndex)
	r.Entrance = entrance
	r.OpenDoors = template.Doors.Without(geometry.EntranceFlag)

	if _, err := g.AddRoom(r); err != nil {
		return nil, err
	}

	r.Level = o.loadLevel(ctx, template, at)
	r.Manager = o.spawn(ctx, o.managerType, at)

	return r, nil
}

func (o *orchestrator) loadLevel(ctx context.Context, template *entities.RoomTemplate, at spatial.Transform) engine.LevelHandle {
	handle, ok := o.loader.LoadInstance(ctx, template.Level, at)
	if !ok {
		o.stats.LoadFailures++
		slog.Warn("Failed to load room level",
			"template_id", template.ID,
			"level", template.Level,
		)
		return nil
	}

	o.levels = append(o.levels, handle)
	return handle
}

// addDoor spawns a door actor facing direction and stores the door in the graph
func (o *orchestrator) addDoor(ctx context.Context, g *graph.Graph, owner graph.RoomID, point, direction spatial.Vector, sealed bool) graph.DoorID {
	door := graph.NewDoor(owner, point, direction)
	actorType := o.doorType
	if sealed {
		door = graph.NewSealedDoor(owner, point, direction)
		actorType = o.sealType
	}

	door.Actor = o.spawn(ctx, actorType, spatial.Transform{
		Position: point,
		Yaw:      spatial.YawFacing(direction),
	})

	return g.AddDoor(door)
}

func (o *orchestrator) spawn(ctx context.Context, actorType string, at spatial.Transform) engine.Actor {
	actor, err := o.actors.Spawn(ctx, actorType, at)
	if err != nil {
		slog.Warn("Failed to spawn actor",
			"actor_type", actorType,
			"position", at.Position.String(),
			"error", err,
		)
		return nil
	}

	o.spawned = append(o.spawned, actor)
	return actor
}
