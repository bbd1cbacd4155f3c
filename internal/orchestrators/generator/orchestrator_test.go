package generator_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/descent/internal/catalog"
	"github.com/KirkDiggler/descent/internal/engine"
	enginemock "github.com/KirkDiggler/descent/internal/engine/mock"
	"github.com/KirkDiggler/descent/internal/engine/sandbox"
	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/graph"
	"github.com/KirkDiggler/descent/internal/orchestrators/generator"
	"github.com/KirkDiggler/descent/internal/orchestrators/room"
	"github.com/KirkDiggler/descent/internal/pkg/clock"
	"github.com/KirkDiggler/descent/internal/pkg/idgen"
	"github.com/KirkDiggler/descent/internal/pkg/rng"
	"github.com/KirkDiggler/descent/internal/spatial"
	"github.com/KirkDiggler/descent/internal/testutils"
	"github.com/KirkDiggler/descent/internal/testutils/builders"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctx   context.Context
	world *sandbox.World
	at    time.Time
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = sandbox.NewWorld(nil)
	s.at = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

// firstCandidate always draws door slot 0, so pickDoor settles on the lowest candidate, and
// walks template draws through the catalog in order.
func firstCandidate() rng.Func {
	calls := 0
	return func(size int) int {
		if size == entities.DoorSlots {
			return 1
		}
		calls++
		return (calls-1)%size + 1
	}
}

func (s *GeneratorTestSuite) newGenerator(templates []*entities.RoomTemplate, length int, roller rng.Func,
	mutate ...func(*generator.Config)) generator.Service {
	cat, err := catalog.New(templates)
	s.Require().NoError(err)

	cfg := &generator.Config{
		Catalog:     cat,
		Loader:      s.world,
		Actors:      s.world,
		Roller:      roller,
		IDGenerator: idgen.NewSequential("level"),
		Clock:       &clock.Fixed{At: s.at},
		PathLength:  length,
	}
	for _, m := range mutate {
		m(cfg)
	}

	gen, err := generator.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return gen
}

func (s *GeneratorTestSuite) seeded(seed uint64) rng.Func {
	r := rng.NewSeeded(seed)
	return func(size int) int {
		v, err := r.Roll(size)
		s.Require().NoError(err)
		return v
	}
}

func (s *GeneratorTestSuite) TestNewOrchestratorValidation() {
	cat, err := catalog.New(testutils.CreateLinearTileset())
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		config *generator.Config
		errMsg string
	}{
		{"nil config", nil, "config cannot be nil"},
		{"missing catalog", &generator.Config{Loader: s.world, Actors: s.world}, "Catalog"},
		{"missing engine", &generator.Config{Catalog: cat}, "Loader"},
		{
			"negative length",
			&generator.Config{Catalog: cat, Loader: s.world, Actors: s.world, PathLength: -1},
			"PathLength",
		},
		{
			"negative tries",
			&generator.Config{Catalog: cat, Loader: s.world, Actors: s.world, MaxTemplateTries: -3},
			"MaxTemplateTries",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			gen, err := generator.NewOrchestrator(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(gen)
		})
	}
}

func (s *GeneratorTestSuite) TestLinearPath() {
	gen := s.newGenerator(testutils.CreateLinearTileset(), 3, firstCandidate())

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(out.Graph)

	g := out.Graph
	s.Equal("level_1", g.ID)
	s.Equal(s.at, g.GeneratedAt)
	s.True(gen.HasGenerated())

	path := g.PathRooms()
	s.Require().Len(path, 3)
	s.Equal(3, g.Len())
	s.Len(g.Doors(), 2)

	expected := []struct {
		template string
		grid     spatial.GridCoord
		position spatial.Vector
	}{
		{testutils.TestStartID, spatial.GridCoord{}, spatial.Zero},
		{testutils.TestConnectorID, spatial.GridCoord{Y: 1}, spatial.Vector{Y: 2000}},
		{testutils.TestBossID, spatial.GridCoord{Y: 2}, spatial.Vector{Y: 4000}},
	}
	for i, want := range expected {
		r := path[i]
		s.Equal(want.template, r.Template.ID)
		s.Equal(want.grid, r.Grid)
		s.Equal(i, r.PathIndex)
		s.True(r.Transform.Position.Equals(want.position, 1e-6), "room %d at %s", i, r.Transform.Position)
		s.True(r.OpenDoors.IsEmpty())
		s.NotNil(r.Level)
		s.NotNil(r.Manager)
	}

	s.Equal(graph.NoDoor, path[0].Entrance)
	s.Equal(path[0].Exits[0], path[1].Entrance)
	s.Equal(path[1].Exits[0], path[2].Entrance)
	s.Empty(path[2].Exits)

	door := g.EntranceOf(path[2])
	s.Require().NotNil(door)
	s.True(door.Position.Equals(spatial.Vector{Y: 3000}, 1e-6))
	s.False(door.Sealed)
	s.False(door.Locked)

	s.Equal(generator.Stats{RequestedLength: 3, PathRooms: 3}, out.Stats)
	s.False(out.Stats.Truncated())

	s.Len(s.world.Levels(), 3)
	s.Len(s.world.ActorsOfType(generator.DefaultManagerType), 3)
	s.Len(s.world.ActorsOfType(generator.DefaultDoorType), 2)
	s.Empty(s.world.ActorsOfType(generator.DefaultSealType))
}

func (s *GeneratorTestSuite) TestPathWithoutBossStopsEarly() {
	for seed := uint64(1); seed <= 25; seed++ {
		world := sandbox.NewWorld(nil)
		gen := s.newGenerator(testutils.CreateBranchingTileset(), 5, s.seeded(seed), func(cfg *generator.Config) {
			cfg.Loader = world
			cfg.Actors = world
		})

		out, err := gen.Generate(s.ctx)
		s.Require().NoError(err)

		g := out.Graph
		s.Require().Len(g.PathRooms(), 4, "seed %d", seed)
		s.True(out.Stats.Truncated())
		s.Equal(4+out.Stats.TerminalRooms, g.Len())

		owned := make(map[graph.RoomID]int)
		for _, d := range g.Doors() {
			owned[d.Owner]++
		}

		for _, r := range g.PathRooms() {
			s.True(r.OpenDoors.IsEmpty(), "seed %d room %d left %s open", seed, r.ID, r.OpenDoors)
			s.Equal(3, owned[r.ID], "seed %d room %d", seed, r.ID)
		}

		assertNoOverlap(s, g)
	}
}

func (s *GeneratorTestSuite) TestNoOverlapAcrossSeeds() {
	for seed := uint64(100); seed < 160; seed++ {
		world := sandbox.NewWorld(nil)
		gen := s.newGenerator(testutils.CreateFullTileset(), 12, s.seeded(seed), func(cfg *generator.Config) {
			cfg.Loader = world
			cfg.Actors = world
		})

		out, err := gen.Generate(s.ctx)
		s.Require().NoError(err)
		s.Require().False(out.Graph.IsEmpty())

		assertNoOverlap(s, out.Graph)

		for _, r := range out.Graph.PathRooms() {
			s.True(r.OpenDoors.IsEmpty(), "seed %d room %d", seed, r.ID)
		}
		for _, r := range out.Graph.Rooms() {
			if r.Template.Type == entities.RoomTypeTerminal {
				s.NotEqual(graph.NoDoor, r.Entrance)
				s.Greater(r.PathIndex, -1)
			}
		}
	}
}

func (s *GeneratorTestSuite) TestBackfillResolvesEverySlot() {
	tileset := []*entities.RoomTemplate{
		builders.NewRoomTemplateBuilder().WithID("hub").AsStart().WithDoors(entities.AllDoorFlags()...).Build(),
		builders.NewRoomTemplateBuilder().WithID("cap").AsTerminal().Build(),
	}
	gen := s.newGenerator(tileset, 1, s.seeded(7))

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)

	start := out.Graph.PathRooms()[0]
	s.True(start.OpenDoors.IsEmpty())

	resolved := 0
	for _, d := range out.Graph.Doors() {
		if d.Owner == start.ID {
			resolved++
		}
	}
	s.Equal(entities.DoorSlots-1, resolved)
	s.Equal(entities.DoorSlots-1, out.Stats.TerminalRooms+out.Stats.SealedDoors)
	s.Len(start.Exits, out.Stats.TerminalRooms)

	upper := 0
	for _, r := range out.Graph.Rooms() {
		if r.Grid.Z == 1 {
			upper++
			s.InDelta(1200.0, r.Transform.Position.Z, 1e-6)
		}
	}
	s.Equal(4, upper)
	assertNoOverlap(s, out.Graph)
}

func (s *GeneratorTestSuite) TestSealsWithoutTerminal() {
	gen := s.newGenerator(testutils.CreateLinearTileset(), 1, firstCandidate())

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)

	s.Equal(1, out.Graph.Len())
	s.Equal(1, out.Stats.SealedDoors)

	doors := out.Graph.Doors()
	s.Require().Len(doors, 1)
	s.True(doors[0].Sealed)
	s.True(doors[0].Locked)
	s.False(doors[0].Open)
	s.Len(s.world.ActorsOfType(generator.DefaultSealType), 1)
}

func (s *GeneratorTestSuite) TestMissingStartLeavesGraphEmpty() {
	tileset := []*entities.RoomTemplate{
		builders.NewRoomTemplateBuilder().WithID("hall").AsConnector().Build(),
		builders.NewRoomTemplateBuilder().WithID("lair").AsBoss().Build(),
	}
	gen := s.newGenerator(tileset, 4, s.seeded(3))

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.True(out.Graph.IsEmpty())
	s.False(gen.HasGenerated())
	s.True(s.world.IsEmpty())
}

func (s *GeneratorTestSuite) TestGenerateIsIdempotent() {
	gen := s.newGenerator(testutils.CreateFullTileset(), 6, s.seeded(11))

	first, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	actors := len(s.world.Actors())

	second, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.Same(first.Graph, second.Graph)
	s.Equal(first.Stats, second.Stats)
	s.Len(s.world.Actors(), actors)
}

func (s *GeneratorTestSuite) TestLoadFailureKeepsRoom() {
	s.world = sandbox.NewWorld(&sandbox.Config{
		FailingLevels: []string{"/levels/" + testutils.TestConnectorID},
	})
	gen := s.newGenerator(testutils.CreateLinearTileset(), 3, firstCandidate())

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)

	path := out.Graph.PathRooms()
	s.Require().Len(path, 3)
	s.Nil(path[1].Level)
	s.NotNil(path[1].Manager)
	s.Equal(1, out.Stats.LoadFailures)
	s.Len(s.world.Levels(), 2)
}

func (s *GeneratorTestSuite) TestReleaseTearsDownEverything() {
	gen := s.newGenerator(testutils.CreateFullTileset(), 5, s.seeded(21), func(cfg *generator.Config) {
		cfg.EventBus = events.NewBus()
	})

	_, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.False(s.world.IsEmpty())
	s.NotEmpty(gen.Controllers())

	s.Require().NoError(gen.Release(s.ctx))
	s.True(s.world.IsEmpty())
	s.Nil(gen.Graph())
	s.Empty(gen.Controllers())
	s.False(gen.HasGenerated())

	s.Require().NoError(gen.Release(s.ctx))

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.Equal("level_2", out.Graph.ID)
}

func (s *GeneratorTestSuite) TestReleaseOrder() {
	ctrl := gomock.NewController(s.T())
	loader := enginemock.NewMockAssetLoader(ctrl)
	actors := enginemock.NewMockActorFactory(ctrl)
	level := enginemock.NewMockLevelHandle(ctrl)
	manager := enginemock.NewMockActor(ctrl)
	seal := enginemock.NewMockActor(ctrl)

	loader.EXPECT().
		LoadInstance(gomock.Any(), "/levels/"+testutils.TestStartID, spatial.Transform{}).
		Return(level, true)
	gomock.InOrder(
		actors.EXPECT().Spawn(gomock.Any(), generator.DefaultManagerType, spatial.Transform{}).Return(manager, nil),
		actors.EXPECT().Spawn(gomock.Any(), generator.DefaultSealType, gomock.Any()).Return(seal, nil),
	)

	gen := s.newGenerator(testutils.CreateLinearTileset(), 1, firstCandidate(), func(cfg *generator.Config) {
		cfg.Loader = loader
		cfg.Actors = actors
	})

	_, err := gen.Generate(s.ctx)
	s.Require().NoError(err)

	gomock.InOrder(
		manager.EXPECT().Destroy(gomock.Any()),
		seal.EXPECT().Destroy(gomock.Any()),
		level.EXPECT().Unload(gomock.Any()),
	)

	s.Require().NoError(gen.Release(s.ctx))
	s.Require().NoError(gen.Release(s.ctx))
}

func (s *GeneratorTestSuite) TestSpawnFailureIsTolerated() {
	s.world = sandbox.NewWorld(&sandbox.Config{FailingActors: []string{generator.DefaultDoorType}})
	gen := s.newGenerator(testutils.CreateLinearTileset(), 3, firstCandidate())

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)
	s.Len(out.Graph.PathRooms(), 3)

	for _, d := range out.Graph.Doors() {
		s.Nil(d.Actor)
	}
}

func (s *GeneratorTestSuite) TestCancelledContext() {
	gen := s.newGenerator(testutils.CreateLinearTileset(), 3, firstCandidate())

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := gen.Generate(ctx)
	s.Require().Error(err)
}

func (s *GeneratorTestSuite) TestFailedGenerateReleasesPartialLevel() {
	testCases := []struct {
		name    string
		tileset []*entities.RoomTemplate
		length  int
		roller  rng.Func
		after   int
		errMsg  string
		check   func(out *generator.GenerateOutput)
	}{
		{
			name:    "cancelled on the golden path",
			tileset: testutils.CreateLinearTileset(),
			length:  3,
			roller:  firstCandidate(),
			after:   2,
			errMsg:  "failed to build golden path",
			check: func(out *generator.GenerateOutput) {
				s.Len(out.Graph.PathRooms(), 3)
				s.Equal(3, out.Stats.PathRooms)
				s.False(out.Stats.Truncated())
			},
		},
		{
			name:    "cancelled during backfill",
			tileset: []*entities.RoomTemplate{
				builders.NewRoomTemplateBuilder().WithID("hub").AsStart().WithDoors(entities.AllDoorFlags()...).Build(),
				builders.NewRoomTemplateBuilder().WithID("cap").AsTerminal().Build(),
			},
			length: 1,
			roller: s.seeded(7),
			after:  2,
			errMsg: "failed to backfill open doors",
			check:  func(out *generator.GenerateOutput) {
				s.True(out.Graph.PathRooms()[0].OpenDoors.IsEmpty())
				s.Equal(entities.DoorSlots-1, out.Stats.TerminalRooms+out.Stats.SealedDoors)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.world = sandbox.NewWorld(nil)
			ctx, cancel := context.WithCancel(s.ctx)
			defer cancel()

			factory := &cancellingFactory{World: s.world, after: tc.after, cancel: cancel}
			gen := s.newGenerator(tc.tileset, tc.length, tc.roller, func(cfg *generator.Config) {
				cfg.Actors = factory
			})

			_, err := gen.Generate(ctx)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.False(gen.HasGenerated())
			s.Nil(gen.Graph())
			s.True(s.world.IsEmpty())

			out, err := gen.Generate(s.ctx)
			s.Require().NoError(err)
			s.Equal("level_2", out.Graph.ID)
			tc.check(out)
			assertNoOverlap(s, out.Graph)
		})
	}
}

func (s *GeneratorTestSuite) TestControllersTrackThePlayer() {
	bus := events.NewBus()
	var entered []string
	bus.SubscribeFunc(room.EventRoomEntered, 0, func(_ context.Context, e events.Event) error {
		entered = append(entered, e.Source().GetID())
		return nil
	})

	gen := s.newGenerator(testutils.CreateLinearTileset(), 3, firstCandidate(), func(cfg *generator.Config) {
		cfg.Player = s.world
		cfg.EventBus = bus
	})

	out, err := gen.Generate(s.ctx)
	s.Require().NoError(err)

	controllers := gen.Controllers()
	s.Require().Len(controllers, out.Graph.Len())

	for _, r := range out.Graph.PathRooms() {
		s.world.MovePlayer(r.Transform.Position.Add(spatial.Vector{Z: 100}))
		for _, c := range controllers {
			s.Require().NoError(c.Tick(s.ctx))
		}
	}

	s.Equal([]string{"room_0", "room_1", "room_2"}, entered)
}

func assertNoOverlap(s *GeneratorTestSuite, g *graph.Graph) {
	seen := make(map[spatial.GridCoord]graph.RoomID)
	for _, r := range g.Rooms() {
		if other, ok := seen[r.Grid]; ok {
			s.Failf("overlap", "rooms %d and %d share %s", other, r.ID, r.Grid)
		}
		seen[r.Grid] = r.ID
		s.True(g.IsOccupied(r.Grid))
	}
}

// cancellingFactory cancels generation when the nth actor is spawned
type cancellingFactory struct {
	*sandbox.World
	after  int
	cancel context.CancelFunc
	spawns int
}

func (f *cancellingFactory) Spawn(ctx context.Context, actorType string, at spatial.Transform) (engine.Actor, error) {
	f.spawns++
	if f.spawns == f.after {
		f.cancel()
	}
	return f.World.Spawn(ctx, actorType, at)
}
