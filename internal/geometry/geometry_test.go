package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/geometry"
	"github.com/KirkDiggler/descent/internal/spatial"
)

type GeometryTestSuite struct {
	suite.Suite
	allDoors *entities.RoomTemplate
}

func TestGeometrySuite(t *testing.T) {
	suite.Run(t, new(GeometryTestSuite))
}

func (s *GeometryTestSuite) SetupTest() {
	s.allDoors = entities.NewRoomTemplate("hub", entities.RoomTypeConnector, entities.AllDoorFlags()...)
}

func (s *GeometryTestSuite) TestVectorsForIdentity() {
	testCases := []struct {
		flag      entities.DoorFlag
		point     spatial.Vector
		direction spatial.Vector
	}{
		{entities.DoorLowerNorth, spatial.Vector{Y: 1000}, spatial.North},
		{entities.DoorLowerSouth, spatial.Vector{Y: -1000}, spatial.South},
		{entities.DoorLowerEast, spatial.Vector{X: 1000}, spatial.East},
		{entities.DoorLowerWest, spatial.Vector{X: -1000}, spatial.West},
		{entities.DoorUpperNorth, spatial.Vector{Y: 1000, Z: 1200}, spatial.North},
		{entities.DoorUpperWest, spatial.Vector{X: -1000, Z: 1200}, spatial.West},
	}

	for _, tc := range testCases {
		s.Run(tc.flag.String(), func() {
			point, dir, ok := geometry.VectorsFor(s.allDoors, spatial.Transform{}, tc.flag)
			s.Require().True(ok)
			s.True(point.Equals(tc.point, spatial.Tolerance), "point %s", point)
			s.True(dir.Equals(tc.direction, spatial.Tolerance), "direction %s", dir)
		})
	}
}

func (s *GeometryTestSuite) TestVectorsForRotatedRoom() {
	room := spatial.Transform{Position: spatial.Vector{X: 500, Y: 500, Z: 100}, Yaw: -math.Pi / 2}

	point, dir, ok := geometry.VectorsFor(s.allDoors, room, entities.DoorLowerNorth)
	s.Require().True(ok)
	s.True(dir.Equals(spatial.East, spatial.Tolerance), "direction %s", dir)
	s.True(point.Equals(spatial.Vector{X: 1500, Y: 500, Z: 100}, spatial.Tolerance), "point %s", point)
}

func (s *GeometryTestSuite) TestVectorsForRejectsMissingDoor() {
	onlyNorth := entities.NewRoomTemplate("hall", entities.RoomTypeConnector, entities.DoorLowerNorth)

	testCases := []struct {
		name     string
		template *entities.RoomTemplate
		flag     entities.DoorFlag
	}{
		{"flag absent from mask", onlyNorth, entities.DoorLowerEast},
		{"empty flag", onlyNorth, 0},
		{"combined flags", s.allDoors, entities.DoorLowerNorth | entities.DoorLowerEast},
		{"nil template", nil, entities.DoorLowerNorth},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, _, ok := geometry.VectorsFor(tc.template, spatial.Transform{}, tc.flag)
			s.False(ok)
		})
	}
}

func (s *GeometryTestSuite) TestTransformFrom() {
	next := entities.NewRoomTemplate("big", entities.RoomTypeConnector, entities.DoorLowerSouth)
	next.Size = 30

	t := geometry.TransformFrom(next, spatial.Vector{X: 1000}, spatial.Vector{X: 5})
	s.True(t.Position.Equals(spatial.Vector{X: 2500}, spatial.Tolerance), "position %s", t.Position)
	s.True(t.Rotate(spatial.North).Equals(spatial.East, spatial.Tolerance))

	fallback := geometry.TransformFrom(next, spatial.Zero, spatial.Zero)
	s.True(fallback.Position.Equals(spatial.Vector{Y: 1500}, spatial.Tolerance))
}

func (s *GeometryTestSuite) TestRoundTrip() {
	origins := []spatial.Transform{
		{},
		{Position: spatial.Vector{X: 2000, Y: -4000, Z: 1200}, Yaw: math.Pi / 2},
		{Position: spatial.Vector{X: -300, Y: 700}, Yaw: math.Pi},
		{Position: spatial.Vector{X: 10, Y: 20, Z: 30}, Yaw: -math.Pi / 2},
	}
	next := entities.NewRoomTemplate("next", entities.RoomTypeConnector, entities.DoorLowerSouth, entities.DoorLowerNorth)
	next.Size = 14
	next.Height = 8

	for _, origin := range origins {
		for _, flag := range entities.AllDoorFlags() {
			point, dir, ok := geometry.VectorsFor(s.allDoors, origin, flag)
			s.Require().True(ok)

			placed := geometry.TransformFrom(next, point, dir)
			back, backDir, ok := geometry.VectorsFor(next, placed, geometry.EntranceFlag)
			s.Require().True(ok)

			s.True(back.Equals(point, 1e-6), "flag %s from %v: got %s want %s", flag, origin, back, point)
			s.True(backDir.Equals(dir.Negate(), 1e-6), "flag %s: entrance should face back", flag)
		}
	}
}

func (s *GeometryTestSuite) TestGridStep() {
	testCases := []struct {
		name      string
		direction spatial.Vector
		flag      entities.DoorFlag
		expected  spatial.GridCoord
	}{
		{"north", spatial.North, entities.DoorLowerNorth, spatial.GridCoord{Y: 1}},
		{"west with float noise", spatial.Vector{X: -0.9999999, Y: 1e-9}, entities.DoorLowerWest, spatial.GridCoord{X: -1}},
		{"upper east", spatial.East, entities.DoorUpperEast, spatial.GridCoord{X: 1, Z: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, geometry.GridStep(tc.direction, tc.flag))
		})
	}
}
