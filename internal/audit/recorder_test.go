package audit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"specto/internal/animation"
	"specto/internal/audit"
	"specto/internal/layers"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/platform/sentinel"
	"specto/pkg/scene"
	"specto/pkg/scenetest"
)

type RecorderSuite struct {
	suite.Suite

	ctx       context.Context
	world     *scenetest.World
	registry  *layers.Registry
	log       *audit.Log
	scheduler *animation.Scheduler
	recorder  *audit.Recorder
	now       time.Time
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}

func (s *RecorderSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = scenetest.NewWorld()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.registry = layers.NewRegistry(s.world.Factory, s.world.Root, logger, nil)
	s.log = audit.NewLog()
	s.scheduler = animation.New(nil)
	s.now = time.Date(2025, time.June, 2, 15, 4, 5, 0, time.UTC)
	s.recorder = audit.NewRecorder(
		s.world.Factory, s.registry.Audit(), s.log, s.scheduler,
		audit.WithLogger(logger),
		audit.WithClock(func() time.Time { return s.now }),
	)
}

func (s *RecorderSuite) record(t domain.InteractionType, pos geom.Vec3) domain.AuditRecord {
	return s.recorder.Record(s.ctx, t, pos, nil)
}

func (s *RecorderSuite) dashedLines() []*scenetest.Node {
	var out []*scenetest.Node
	for _, line := range s.world.Factory.ByKind(scenetest.KindLine) {
		if line.LineSpec().Dashed {
			out = append(out, line)
		}
	}
	return out
}

func (s *RecorderSuite) TestLogGrowsInOrderWithPathSegments() {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 4, Y: 0, Z: 2},
		{X: 8, Y: 1, Z: -3},
		{X: 12, Y: 0, Z: 1},
	}
	for i, pos := range positions {
		rec := s.record(domain.InteractionOptimize, pos)
		s.Equal(domain.RecordID(i+1), rec.ID, "ids are monotonic from 1")
	}

	records := s.log.All(s.ctx)
	s.Require().Len(records, 4)
	for i, rec := range records {
		s.Equal(positions[i], rec.Position, "append order preserved")
	}

	s.Len(s.dashedLines(), 3, "four markers produce three path segments")
}

func (s *RecorderSuite) TestMarkerShapesByType() {
	s.record(domain.InteractionOptimize, geom.Vec3{})
	s.record(domain.InteractionPolicyChange, geom.Vec3{X: 1})
	s.record(domain.InteractionType("reticulate"), geom.Vec3{X: 2})

	s.Len(s.world.Factory.ByKind(scenetest.KindBox), 1)
	s.Len(s.world.Factory.ByKind(scenetest.KindSphere), 1, "unknown types fall back to the sphere")

	cones := s.world.Factory.ByKind(scenetest.KindCone)
	s.Require().Len(cones, 1)
	s.Equal(4, cones[0].Spec().(scene.ConeSpec).RadialSegments, "pyramid is a four-sided cone")
}

func (s *RecorderSuite) TestMarkerFloatsAbovePointWithAnchor() {
	rec := s.record(domain.InteractionOptimize, geom.Vec3{X: 3, Y: 1, Z: -2})

	boxes := s.world.Factory.ByKind(scenetest.KindBox)
	s.Require().Len(boxes, 1)
	marker := boxes[0]

	s.Equal(geom.Vec3{X: 3, Y: 3, Z: -2}, marker.Position(), "marker floats above the logged point")
	s.Same(s.registry.Audit().Node().(*scenetest.Node), marker.Parent().(*scenetest.Node))

	s.Require().Len(marker.Children(), 1)
	anchor := marker.Children()[0].(*scenetest.Node)
	s.Equal(scenetest.KindLine, anchor.Kind())
	s.Equal([]geom.Vec3{{}, {Y: -2}}, anchor.Points(), "anchor drops back to the original point")
	s.Nil(anchor.Tag(), "anchor carries no record of its own")

	tagged, ok := marker.Tag().(domain.AuditRecord)
	s.Require().True(ok)
	s.Equal(rec.ID, tagged.ID)
}

func (s *RecorderSuite) TestPathSegmentsAreSampledCurves() {
	s.record(domain.InteractionOptimize, geom.Vec3{})
	s.record(domain.InteractionOptimize, geom.Vec3{X: 10, Z: 4})

	segments := s.dashedLines()
	s.Require().Len(segments, 1)
	points := segments[0].Points()
	s.Require().Len(points, 20)
	s.Equal(geom.Vec3{Y: 2}, points[0], "segment starts at the previous marker")
	s.Equal(geom.Vec3{X: 10, Y: 2, Z: 4}, points[19], "segment ends at the new marker")
}

func (s *RecorderSuite) TestStoredRecordIsIsolatedFromCaller() {
	meta := map[string]any{"hub": "SP"}
	rec := s.recorder.Record(s.ctx, domain.InteractionPolicyChange, geom.Vec3{X: 1}, meta)

	meta["hub"] = "RJ"
	rec.Metadata["extra"] = true

	stored, err := s.log.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal("SP", stored.Metadata["hub"], "caller mutations do not reach the log")
	s.NotContains(stored.Metadata, "extra")
	s.Equal(s.now, stored.Timestamp)
}

func (s *RecorderSuite) TestEntryAnimationScalesMarkerIn() {
	s.record(domain.InteractionOptimize, geom.Vec3{})

	marker := s.world.Factory.ByKind(scenetest.KindBox)[0]
	s.Equal(geom.Vec3{}, marker.Scale(), "marker starts invisible")
	s.Equal(1, s.scheduler.Active())

	for i := 0; i < 20; i++ {
		s.scheduler.Tick()
	}
	s.Equal(geom.Uniform(1), marker.Scale())
	s.Equal(0, s.scheduler.Active(), "animation self-terminates at full scale")
}

func (s *RecorderSuite) TestLogGetUnknownID() {
	_, err := s.log.Get(s.ctx, 42)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
