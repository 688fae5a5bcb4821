package audit

import (
	"context"
	"log/slog"
	"time"

	"specto/internal/animation"
	"specto/internal/layers"
	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Markers float a fixed height above the logged position so they stay
// visible and pickable above other layer content. The anchor segment
// drops back down to the original point.
const (
	markerElevation = 2.0

	boxSize       = 0.8
	sphereRadius  = 0.5
	pyramidRadius = 0.6
	pyramidHeight = 1.0

	pathSamples  = 20
	pathDashSize = 0.3
	pathGapSize  = 0.15
)

// Marker and path palette.
var (
	optimizeColor     = geom.RGB(66, 133, 244)
	policyChangeColor = geom.RGB(251, 188, 4)
	defaultColor      = geom.RGB(154, 160, 166)
	anchorColor       = geom.RGB(95, 99, 104)
	pathColor         = geom.RGB(138, 180, 248)
)

// markerShape is the closed set of marker geometries.
type markerShape int

const (
	shapeCube markerShape = iota
	shapePyramid
	shapeSphere
)

// shapeFor maps an interaction type to its marker shape. Unknown types
// fall back to the sphere; that is the documented default, not an error.
func shapeFor(t domain.InteractionType) markerShape {
	switch t {
	case domain.InteractionOptimize:
		return shapeCube
	case domain.InteractionPolicyChange:
		return shapePyramid
	default:
		return shapeSphere
	}
}

func colorFor(t domain.InteractionType) geom.Color {
	switch t {
	case domain.InteractionOptimize:
		return optimizeColor
	case domain.InteractionPolicyChange:
		return policyChangeColor
	default:
		return defaultColor
	}
}

// Recorder appends audit records and keeps the audit layer's markers and
// decision path in sync with the log. The layer is strictly additive:
// markers and path segments are only released when the layer is cleared.
type Recorder struct {
	factory   scene.Factory
	layer     *layers.Layer
	log       *Log
	scheduler *animation.Scheduler

	logger  *slog.Logger
	metrics *metrics.Metrics
	clock   func() time.Time

	prevTop *geom.Vec3
}

type Option func(r *Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Recorder) {
		r.metrics = m
	}
}

// WithClock overrides the timestamp source, mainly for tests and replays.
func WithClock(clock func() time.Time) Option {
	return func(r *Recorder) {
		r.clock = clock
	}
}

// NewRecorder constructs a Recorder writing to the given layer and log.
func NewRecorder(factory scene.Factory, layer *layers.Layer, log *Log, scheduler *animation.Scheduler, opts ...Option) *Recorder {
	r := &Recorder{
		factory:   factory,
		layer:     layer,
		log:       log,
		scheduler: scheduler,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record logs one interaction and builds its marker. The position is
// stored by value and the metadata map is deep-copied, so later caller
// mutations never reach the stored record. The record is appended to the
// log before any geometry is built; the call cannot fail.
func (r *Recorder) Record(ctx context.Context, t domain.InteractionType, pos geom.Vec3, meta map[string]any) domain.AuditRecord {
	rec := r.log.Append(ctx, domain.AuditRecord{
		Type:      t,
		Position:  pos,
		Metadata:  meta,
		Timestamp: r.clock(),
	})

	top := pos.Add(geom.Vec3{Y: markerElevation})
	marker := r.buildMarker(t)
	marker.SetPosition(top)
	marker.SetTag(rec.Clone())

	anchor := r.factory.NewLine([]geom.Vec3{{}, {Y: -markerElevation}}, scene.LineSpec{Color: anchorColor})
	marker.Add(anchor)

	r.layer.Add(marker)

	if r.prevTop != nil {
		points := geom.CatmullRom([]geom.Vec3{*r.prevTop, top}, pathSamples)
		segment := r.factory.NewLine(points, scene.LineSpec{
			Color:    pathColor,
			Dashed:   true,
			DashSize: pathDashSize,
			GapSize:  pathGapSize,
		})
		r.layer.Add(segment)
		r.metrics.PathSegmentAdded()
	}
	last := top
	r.prevTop = &last

	r.scheduler.Add(animation.NewScaleIn(marker))

	r.metrics.MarkerPlaced(t.String())
	if r.logger != nil {
		r.logger.DebugContext(ctx, "interaction logged",
			"record_id", rec.ID,
			"type", t,
			"markers", r.log.Len(),
		)
	}
	return rec
}

func (r *Recorder) buildMarker(t domain.InteractionType) scene.Node {
	mat := scene.MaterialSpec{Color: colorFor(t), Opacity: 1}
	switch shapeFor(t) {
	case shapeCube:
		return r.factory.NewBox(scene.BoxSpec{Size: geom.Uniform(boxSize)}, mat)
	case shapePyramid:
		return r.factory.NewCone(scene.ConeSpec{
			Radius:         pyramidRadius,
			Height:         pyramidHeight,
			RadialSegments: 4,
		}, mat)
	default:
		return r.factory.NewSphere(scene.SphereSpec{
			Radius:         sphereRadius,
			WidthSegments:  16,
			HeightSegments: 12,
		}, mat)
	}
}
