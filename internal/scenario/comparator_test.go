package scenario_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"specto/internal/labels"
	"specto/internal/layers"
	"specto/internal/scenario"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/scene"
	"specto/pkg/scenetest"
)

type ComparatorSuite struct {
	suite.Suite

	ctx        context.Context
	world      *scenetest.World
	layer      *layers.Layer
	comparator *scenario.Comparator
}

func TestComparatorSuite(t *testing.T) {
	suite.Run(t, new(ComparatorSuite))
}

func (s *ComparatorSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = scenetest.NewWorld()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := layers.NewRegistry(s.world.Factory, s.world.Root, logger, nil)
	s.layer = registry.Scenario()
	labelFactory := labels.NewFactory(s.world.Factory, s.world.Canvases, language.English)
	s.comparator = scenario.NewComparator(
		s.world.Factory, s.layer, labelFactory,
		scenario.WithLogger(logger),
	)
}

func (s *ComparatorSuite) compare(data ...domain.ScenarioDatum) {
	s.comparator.Compare(s.ctx, data)
}

func (s *ComparatorSuite) liveBoxes() []*scenetest.Node {
	return s.world.Factory.Live(scenetest.KindBox)
}

func (s *ComparatorSuite) TestBarPairGeometry() {
	s.compare(domain.ScenarioDatum{
		Position:    geom.Vec3{X: 2, Z: 3},
		BaselineVal: 10,
		ProposedVal: 15,
		MetricName:  "throughput",
	})

	boxes := s.liveBoxes()
	s.Require().Len(boxes, 2)
	ghost, bar := boxes[0], boxes[1]

	s.True(ghost.Material().Wireframe, "baseline renders as a wireframe ghost")
	s.True(ghost.Material().Transparent)
	s.InDelta(10.0, ghost.Spec().(scene.BoxSpec).Size.Y, 1e-9)
	s.Equal(geom.Vec3{X: 2, Y: 5, Z: 3}, ghost.Position(), "ghost is centered at half its height")

	s.False(bar.Material().Wireframe)
	s.InDelta(15.0, bar.Spec().(scene.BoxSpec).Size.Y, 1e-9)
	s.Equal(geom.Vec3{X: 2, Y: 7.5, Z: 3}, bar.Position())
	s.Greater(ghost.Spec().(scene.BoxSpec).Size.X, bar.Spec().(scene.BoxSpec).Size.X,
		"ghost footprint is slightly wider so it stays visible around the bar")
}

func (s *ComparatorSuite) TestImprovementAnnotation() {
	s.compare(domain.ScenarioDatum{BaselineVal: 10, ProposedVal: 15})

	lines := s.world.Factory.Live(scenetest.KindLine)
	s.Require().Len(lines, 1, "connector between the bar tops")
	s.Equal([]geom.Vec3{{Y: 10}, {Y: 15}}, lines[0].Points())

	canvas := s.world.Canvases.Created[0]
	s.Require().Len(canvas.Texts, 1)
	s.Equal("▲ +50.0%", canvas.Texts[0].Text)

	sprites := s.world.Factory.Live(scenetest.KindSprite)
	s.Require().Len(sprites, 1)
	s.Equal(geom.Vec3{Y: 15.5}, sprites[0].Position(), "label floats above the taller bar")
}

func (s *ComparatorSuite) TestRegressionAnnotation() {
	s.compare(domain.ScenarioDatum{BaselineVal: 12, ProposedVal: 9})

	canvas := s.world.Canvases.Created[0]
	s.Require().Len(canvas.Texts, 1)
	s.Equal("▼ -25.0%", canvas.Texts[0].Text)

	sprites := s.world.Factory.Live(scenetest.KindSprite)
	s.Require().Len(sprites, 1)
	s.Equal(geom.Vec3{Y: 12.5}, sprites[0].Position(), "taller bar here is the baseline ghost")
}

func (s *ComparatorSuite) TestSmallDeltaRendersBarsOnly() {
	s.compare(domain.ScenarioDatum{BaselineVal: 10, ProposedVal: 10.05})

	s.Len(s.liveBoxes(), 2)
	s.Empty(s.world.Factory.Live(scenetest.KindLine), "no connector below the threshold")
	s.Empty(s.world.Factory.Live(scenetest.KindSprite), "no label below the threshold")
}

func (s *ComparatorSuite) TestZeroBaselineShowsNA() {
	s.compare(domain.ScenarioDatum{BaselineVal: 0, ProposedVal: 3})

	canvas := s.world.Canvases.Created[0]
	s.Require().Len(canvas.Texts, 1)
	s.Equal("▲ n/a", canvas.Texts[0].Text, "undefined ratio reports n/a, not a number")
}

func (s *ComparatorSuite) TestNegativeValuesClampToGround() {
	s.compare(domain.ScenarioDatum{BaselineVal: -4, ProposedVal: 2})

	boxes := s.liveBoxes()
	s.Require().Len(boxes, 2)
	s.Equal(0.0, boxes[0].Spec().(scene.BoxSpec).Size.Y, "negative heights clamp to the ground plane")
	s.Equal(geom.Vec3{}, boxes[0].Position())
}

func (s *ComparatorSuite) TestRepeatCallsReplaceContents() {
	s.compare(
		domain.ScenarioDatum{Position: geom.Vec3{X: 0}, BaselineVal: 10, ProposedVal: 15},
		domain.ScenarioDatum{Position: geom.Vec3{X: 3}, BaselineVal: 8, ProposedVal: 6},
	)
	first := s.liveBoxes()
	s.Require().Len(first, 4)

	s.compare(domain.ScenarioDatum{Position: geom.Vec3{X: 6}, BaselineVal: 5, ProposedVal: 5})

	s.Len(s.liveBoxes(), 2, "only the second call's bars remain")
	for _, box := range first {
		s.True(box.Disposed())
	}
	s.Equal(2, s.layer.ObjectCount(), "equal values draw bars with no annotation")
}

func (s *ComparatorSuite) TestPercentChange() {
	cases := []struct {
		name     string
		baseline float64
		delta    float64
		pct      float64
		ok       bool
	}{
		{name: "gain", baseline: 10, delta: 5, pct: 50, ok: true},
		{name: "loss", baseline: 20, delta: -5, pct: -25, ok: true},
		{name: "zero baseline", baseline: 0, delta: 3, pct: 0, ok: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			pct, ok := scenario.PercentChange(tc.baseline, tc.delta)
			s.Equal(tc.ok, ok)
			s.InDelta(tc.pct, pct, 1e-9)
		})
	}
}
