// Package sandbox is an in-memory engine: levels and actors are bookkeeping records, and the player
// is a point moved by hand. The CLI and integration tests drive generation against it.
package sandbox

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/pkg/idgen"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Config configures a World
type Config struct {
	// IDGenerator names levels and actors. Defaults to sequential IDs.
	IDGenerator idgen.Generator

	// FailingLevels are level references LoadInstance refuses to load
	FailingLevels []string

	// FailingActors are actor types Spawn refuses to create
	FailingActors []string
}

// World implements engine.AssetLoader, engine.ActorFactory and engine.PlayerLocator in memory
type World struct {
	mu sync.RWMutex

	ids           idgen.Generator
	failingLevels map[string]bool
	failingActors map[string]bool

	levels map[string]*Level
	actors map[string]*Actor
	seq    uint64

	player    spatial.Vector
	hasPlayer bool
}

// NewWorld creates an empty world
func NewWorld(cfg *Config) *World {
	if cfg == nil {
		cfg = &Config{}
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewSequential("")
	}

	w := &World{
		ids:           ids,
		failingLevels: make(map[string]bool, len(cfg.FailingLevels)),
		failingActors: make(map[string]bool, len(cfg.FailingActors)),
		levels:        make(map[string]*Level),
		actors:        make(map[string]*Actor),
	}
	for _, l := range cfg.FailingLevels {
		w.failingLevels[l] = true
	}
	for _, a := range cfg.FailingActors {
		w.failingActors[a] = true
	}

	return w
}

// LoadInstance records a loaded level
func (w *World) LoadInstance(_ context.Context, level string, transform spatial.Transform) (engine.LevelHandle, bool) {
	if level == "" || w.failingLevels[level] {
		return nil, false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	l := &Level{
		ID:        "level_" + w.ids.Generate(),
		Ref:       level,
		Transform: transform,
		world:     w,
		seq:       w.seq,
	}
	w.levels[l.ID] = l

	return l, true
}

// Spawn creates an actor of actorType at transform
func (w *World) Spawn(_ context.Context, actorType string, transform spatial.Transform) (engine.Actor, error) {
	if actorType == "" {
		return nil, errors.InvalidArgument("actor type is required")
	}
	if w.failingActors[actorType] {
		return nil, errors.Unavailablef("actor type %s cannot be spawned", actorType)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.seq++
	a := &Actor{
		id:        actorType + "_" + w.ids.Generate(),
		actorType: actorType,
		transform: transform,
		world:     w,
		seq:       w.seq,
	}
	w.actors[a.id] = a

	return a, nil
}

// CurrentPlayerPosition returns the player position set by MovePlayer
func (w *World) CurrentPlayerPosition(_ context.Context) (spatial.Vector, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.player, w.hasPlayer
}

// MovePlayer places the player at pos
func (w *World) MovePlayer(pos spatial.Vector) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.player = pos
	w.hasPlayer = true
}

// RemovePlayer takes the player out of the world
func (w *World) RemovePlayer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.hasPlayer = false
}

// Actors returns live actors in spawn order
func (w *World) Actors() []*Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()

	actors := make([]*Actor, 0, len(w.actors))
	for _, a := range w.actors {
		actors = append(actors, a)
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].seq < actors[j].seq })

	return actors
}

// ActorsOfType returns live actors of actorType in spawn order
func (w *World) ActorsOfType(actorType string) []*Actor {
	var out []*Actor
	for _, a := range w.Actors() {
		if a.actorType == actorType {
			out = append(out, a)
		}
	}
	return out
}

// Levels returns loaded levels in load order
func (w *World) Levels() []*Level {
	w.mu.RLock()
	defer w.mu.RUnlock()

	levels := make([]*Level, 0, len(w.levels))
	for _, l := range w.levels {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].seq < levels[j].seq })

	return levels
}

// IsEmpty reports whether no levels or actors remain
func (w *World) IsEmpty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.levels) == 0 && len(w.actors) == 0
}

func (w *World) removeLevel(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.levels[id]; !ok {
		return false
	}
	delete(w.levels, id)
	return true
}

func (w *World) removeActor(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.actors[id]; !ok {
		return false
	}
	delete(w.actors, id)
	return true
}

var (
	_ engine.AssetLoader   = (*World)(nil)
	_ engine.ActorFactory  = (*World)(nil)
	_ engine.PlayerLocator = (*World)(nil)
)
