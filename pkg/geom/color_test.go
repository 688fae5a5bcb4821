package geom_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"specto/pkg/geom"
)

type ColorSuite struct {
	suite.Suite
}

func TestColorSuite(t *testing.T) {
	suite.Run(t, new(ColorSuite))
}

func (s *ColorSuite) TestRGB() {
	c := geom.RGB(66, 133, 244)
	s.InDelta(66.0/255, c.R, 1e-9)
	s.InDelta(133.0/255, c.G, 1e-9)
	s.InDelta(244.0/255, c.B, 1e-9)
}

func (s *ColorSuite) TestLerpEndpointsAreExact() {
	from := geom.RGB(52, 168, 83)
	to := geom.RGB(234, 67, 53)

	s.Equal(from, from.Lerp(to, 0))
	s.Equal(to, from.Lerp(to, 1))
	s.Equal(from, from.Lerp(to, -1), "t clamps to 0")
	s.Equal(to, from.Lerp(to, 2), "t clamps to 1")
}

func (s *ColorSuite) TestLerpMidpoint() {
	from := geom.Color{R: 0, G: 0.2, B: 1}
	to := geom.Color{R: 1, G: 0.8, B: 0}

	mid := from.Lerp(to, 0.5)
	s.InDelta(0.5, mid.R, 1e-9)
	s.InDelta(0.5, mid.G, 1e-9)
	s.InDelta(0.5, mid.B, 1e-9)
}

func (s *ColorSuite) TestHex() {
	cases := []struct {
		name string
		c    geom.Color
		want string
	}{
		{name: "black", c: geom.Color{}, want: "#000000"},
		{name: "white", c: geom.Color{R: 1, G: 1, B: 1}, want: "#ffffff"},
		{name: "marker blue", c: geom.RGB(66, 133, 244), want: "#4285f4"},
		{name: "out of range clamps", c: geom.Color{R: 2, G: -1, B: 0.5}, want: "#ff0080"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, tc.c.Hex())
		})
	}
}
