package sandbox

import (
	"context"
	"sync"

	"github.com/KirkDiggler/descent/internal/engine"
	"github.com/KirkDiggler/descent/internal/spatial"
)

// Level is a loaded level instance
type Level struct {
	ID        string
	Ref       string
	Transform spatial.Transform

	world *World
	seq   uint64
}

// Unload removes the level from its world. Unloading twice is a no-op.
func (l *Level) Unload(_ context.Context) {
	l.world.removeLevel(l.ID)
}

// Actor is a spawned actor
type Actor struct {
	id        string
	actorType string
	transform spatial.Transform

	world *World
	seq   uint64

	mu        sync.Mutex
	destroyed bool
	callbacks []func(ctx context.Context)
}

// GetID returns the actor ID
func (a *Actor) GetID() string {
	return a.id
}

// GetType returns the actor type it was spawned as
func (a *Actor) GetType() string {
	return a.actorType
}

// Location returns the spawn position
func (a *Actor) Location() spatial.Vector {
	return a.transform.Position
}

// Transform returns the spawn transform
func (a *Actor) Transform() spatial.Transform {
	return a.transform
}

// IsDestroyed reports whether Destroy has run
func (a *Actor) IsDestroyed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.destroyed
}

// OnDestroyed registers fn to run on destruction
func (a *Actor) OnDestroyed(fn func(ctx context.Context)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.callbacks = append(a.callbacks, fn)
}

// Destroy removes the actor and runs its callbacks once
func (a *Actor) Destroy(ctx context.Context) {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.destroyed = true
	callbacks := a.callbacks
	a.callbacks = nil
	a.mu.Unlock()

	a.world.removeActor(a.id)

	for _, fn := range callbacks {
		fn(ctx)
	}
}

var (
	_ engine.LevelHandle = (*Level)(nil)
	_ engine.Actor       = (*Actor)(nil)
)
