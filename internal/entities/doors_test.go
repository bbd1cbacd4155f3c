package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/descent/internal/entities"
)

type DoorsTestSuite struct {
	suite.Suite
}

func TestDoorsSuite(t *testing.T) {
	suite.Run(t, new(DoorsTestSuite))
}

func (s *DoorsTestSuite) TestFlagProperties() {
	testCases := []struct {
		flag     entities.DoorFlag
		compass  entities.Compass
		upper    bool
		opposite entities.DoorFlag
		name     string
	}{
		{entities.DoorLowerNorth, entities.CompassNorth, false, entities.DoorLowerSouth, "lower_north"},
		{entities.DoorLowerSouth, entities.CompassSouth, false, entities.DoorLowerNorth, "lower_south"},
		{entities.DoorLowerEast, entities.CompassEast, false, entities.DoorLowerWest, "lower_east"},
		{entities.DoorLowerWest, entities.CompassWest, false, entities.DoorLowerEast, "lower_west"},
		{entities.DoorUpperNorth, entities.CompassNorth, true, entities.DoorUpperSouth, "upper_north"},
		{entities.DoorUpperSouth, entities.CompassSouth, true, entities.DoorUpperNorth, "upper_south"},
		{entities.DoorUpperEast, entities.CompassEast, true, entities.DoorUpperWest, "upper_east"},
		{entities.DoorUpperWest, entities.CompassWest, true, entities.DoorUpperEast, "upper_west"},
	}

	for i, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.flag.Valid())
			s.Equal(i, tc.flag.Position())
			s.Equal(tc.flag, entities.FlagAt(i))
			s.Equal(tc.compass, tc.flag.Compass())
			s.Equal(tc.upper, tc.flag.IsUpper())
			s.Equal(tc.opposite, tc.flag.Opposite())
			s.Equal(tc.name, tc.flag.String())
		})
	}
}

func (s *DoorsTestSuite) TestInvalidFlag() {
	s.False(entities.DoorFlag(0).Valid())
	s.False((entities.DoorLowerNorth | entities.DoorLowerEast).Valid())
	s.Equal("none", entities.DoorFlag(0).String())
}

func (s *DoorsTestSuite) TestMaskOperations() {
	m := entities.MaskOf(entities.DoorLowerNorth, entities.DoorLowerSouth, entities.DoorUpperEast)

	s.Equal(3, m.Count())
	s.True(m.Has(entities.DoorLowerSouth))
	s.False(m.Has(entities.DoorLowerWest))
	s.False(m.Has(0))

	without := m.Without(entities.DoorLowerSouth)
	s.Equal(2, without.Count())
	s.False(without.Has(entities.DoorLowerSouth))
	s.Equal(m, without.With(entities.DoorLowerSouth))

	s.Equal(entities.MaskOf(entities.DoorUpperEast),
		m.Minus(entities.MaskOf(entities.DoorLowerNorth, entities.DoorLowerSouth)))
	s.Equal(entities.MaskOf(entities.DoorLowerNorth, entities.DoorLowerSouth, entities.DoorUpperEast, entities.DoorLowerWest),
		m.Union(entities.MaskOf(entities.DoorLowerWest)))

	s.Equal(entities.DoorLowerNorth, m.Lowest())
	s.Equal(entities.DoorUpperEast, m.Minus(entities.MaskOf(entities.DoorLowerNorth, entities.DoorLowerSouth)).Lowest())
	s.Equal(entities.DoorFlag(0), entities.DoorMask(0).Lowest())

	s.Equal([]entities.DoorFlag{entities.DoorLowerNorth, entities.DoorLowerSouth, entities.DoorUpperEast}, m.Flags())
	s.Equal("lower_north|lower_south|upper_east", m.String())
	s.True(entities.DoorMask(0).IsEmpty())
	s.Equal("none", entities.DoorMask(0).String())
}

func (s *DoorsTestSuite) TestTemplateValidate() {
	testCases := []struct {
		name     string
		template *entities.RoomTemplate
		wantErr  bool
	}{
		{
			name:     "valid connector",
			template: entities.NewRoomTemplate("hall", entities.RoomTypeConnector, entities.DoorLowerNorth, entities.DoorLowerSouth),
		},
		{
			name:     "nil template",
			template: nil,
			wantErr:  true,
		},
		{
			name:     "missing id",
			template: entities.NewRoomTemplate("", entities.RoomTypeStart),
			wantErr:  true,
		},
		{
			name:     "unknown type",
			template: entities.NewRoomTemplate("odd", entities.RoomType("vault")),
			wantErr:  true,
		},
		{
			name: "zero size",
			template: &entities.RoomTemplate{
				ID: "flat", Type: entities.RoomTypeBoss, Size: 0, Height: 12,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.template.Validate()
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *DoorsTestSuite) TestWellFormedTerminal() {
	s.True(entities.NewRoomTemplate("cap", entities.RoomTypeTerminal, entities.DoorLowerSouth).WellFormedTerminal())
	s.False(entities.NewRoomTemplate("cap2", entities.RoomTypeTerminal,
		entities.DoorLowerSouth, entities.DoorLowerNorth).WellFormedTerminal())
	s.True(entities.NewRoomTemplate("hall", entities.RoomTypeConnector,
		entities.DoorLowerSouth, entities.DoorLowerNorth).WellFormedTerminal())
}

func (s *DoorsTestSuite) TestExtents() {
	t := entities.NewRoomTemplate("hall", entities.RoomTypeConnector)
	s.Equal(1000.0, t.HalfExtent())
	s.Equal(1200.0, t.HeightExtent())
}
