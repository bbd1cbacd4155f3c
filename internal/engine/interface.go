// Package engine declares the collaborators generation and the room runtime drive: level
// streaming, actor spawning and the player position.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/descent/internal/engine AssetLoader,LevelHandle,ActorFactory,Actor,PlayerLocator

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/descent/internal/spatial"
)

// AssetLoader streams room levels into the world
type AssetLoader interface {
	// LoadInstance requests an instance of level at transform. ok is false when the level could
	// not be loaded; the returned handle is only meaningful when ok is true.
	LoadInstance(ctx context.Context, level string, transform spatial.Transform) (handle LevelHandle, ok bool)
}

// LevelHandle is a loaded level instance the generator must release
type LevelHandle interface {
	Unload(ctx context.Context)
}

// ActorFactory spawns actors: doors, room managers and encounter enemies
type ActorFactory interface {
	Spawn(ctx context.Context, actorType string, transform spatial.Transform) (Actor, error)
}

// Actor is a spawned world object
type Actor interface {
	core.Entity

	Location() spatial.Vector

	// Destroy removes the actor and fires its destruction callbacks once
	Destroy(ctx context.Context)

	// OnDestroyed registers fn to run when the actor is destroyed
	OnDestroyed(fn func(ctx context.Context))
}

// PlayerLocator reports where the player currently is
type PlayerLocator interface {
	// CurrentPlayerPosition returns false when there is no player in the world
	CurrentPlayerPosition(ctx context.Context) (spatial.Vector, bool)
}
