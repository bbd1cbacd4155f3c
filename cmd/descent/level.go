package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/descent/internal/catalog"
	"github.com/KirkDiggler/descent/internal/engine/sandbox"
	"github.com/KirkDiggler/descent/internal/orchestrators/generator"
	"github.com/KirkDiggler/descent/internal/pkg/idgen"
	"github.com/KirkDiggler/descent/internal/pkg/rng"
	"github.com/KirkDiggler/descent/internal/redis"
	"github.com/KirkDiggler/descent/internal/repositories/templates"
)

// memoryRedis selects an in-process Redis seeded with the demo tileset
const memoryRedis = "memory"

// openRepository connects to the template store named by --redis. The returned cleanup closes
// the client and any in-process server.
func openRepository(ctx context.Context) (templates.Repository, func(), error) {
	addr := redisAddr
	var mr *miniredis.Miniredis

	if redisAddr == memoryRedis {
		var err error
		mr, err = miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start in-process redis: %w", err)
		}
		addr = mr.Addr()
	}

	client, err := redis.NewClient(addr, nil)
	if err != nil {
		if mr != nil {
			mr.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
		if mr != nil {
			mr.Close()
		}
	}

	repo, err := templates.NewRedis(&templates.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if mr != nil {
		if err := seedTemplates(ctx, repo); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	return repo, cleanup, nil
}

func seedTemplates(ctx context.Context, repo templates.Repository) error {
	for _, t := range catalog.DemoTemplates() {
		if _, err := repo.Put(ctx, templates.PutInput{Template: t}); err != nil {
			return fmt.Errorf("failed to store template %s: %w", t.ID, err)
		}
	}
	return nil
}

// loadCatalog returns the built-in tileset, or the stored one when --redis is set
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if redisAddr == "" {
		return catalog.New(catalog.DemoTemplates())
	}

	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return catalog.Load(ctx, repo)
}

// newGenerator builds the level generator for a session
var newGenerator = generator.NewOrchestrator

// session is a generator wired to a sandbox world
type session struct {
	gen   generator.Service
	world *sandbox.World
	bus   events.EventBus
	seed  uint64
}

func newSession(ctx context.Context, length int, withRuntime bool) (*session, error) {
	cat, err := loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	s := seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	world := sandbox.NewWorld(&sandbox.Config{IDGenerator: idgen.NewSequential("")})

	cfg := &generator.Config{
		Catalog:     cat,
		Loader:      world,
		Actors:      world,
		Roller:      rng.NewSeeded(s),
		IDGenerator: idgen.NewUUID("level"),
		PathLength:  length,
	}

	var bus events.EventBus
	if withRuntime {
		bus = events.NewBus()
		cfg.Player = world
		cfg.EventBus = bus
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	return &session{gen: gen, world: world, bus: bus, seed: s}, nil
}
