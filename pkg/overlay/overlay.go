// Package overlay renders an interactive governance overlay inside a host
// 3D scene: an additive audit trail of decision markers, confidence shells
// around uncertain estimates, scenario comparison bars, and pointer picking
// that resolves back to audit records.
//
// The overlay never drives itself. The host calls every operation and owns
// the frame loop; the only background work is the per-marker entry
// animation, advanced once per host frame. Operations are not safe for
// concurrent use — the host serializes calls the way a render loop
// serializes events. Reading the audit log through Records is safe from
// other goroutines.
package overlay

import (
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"specto/internal/animation"
	"specto/internal/audit"
	"specto/internal/confidence"
	"specto/internal/labels"
	"specto/internal/layers"
	"specto/internal/picking"
	"specto/internal/platform/metrics"
	"specto/internal/scenario"
	"specto/pkg/scene"
)

// Overlay owns the three scene layers and the session's audit log. Create
// one per hosted scene with New and release it with Close.
type Overlay struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	clock   func() time.Time
	locale  language.Tag
	tracer  trace.Tracer

	registry   *layers.Registry
	log        *audit.Log
	scheduler  *animation.Scheduler
	recorder   *audit.Recorder
	confidence *confidence.Visualizer
	scenario   *scenario.Comparator
	picker     *picking.Service

	cancelFrames func()
	closed       bool
}

// New validates the host ports and assembles an overlay with one empty,
// visible layer per layer name. The overlay registers a frame hook for
// its entry animations; Close removes it.
func New(host scene.Host, opts ...Option) (*Overlay, error) {
	if err := host.Validate(); err != nil {
		return nil, err
	}

	o := &Overlay{
		clock:  time.Now,
		locale: language.English,
		tracer: otel.Tracer("specto/overlay"),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.registry = layers.NewRegistry(host.Factory, host.Root, o.componentLogger(), o.metrics)
	o.log = audit.NewLog()
	o.scheduler = animation.New(o.metrics)

	labelFactory := labels.NewFactory(host.Factory, host.Canvases, o.locale)

	o.recorder = audit.NewRecorder(host.Factory, o.registry.Audit(), o.log, o.scheduler,
		audit.WithLogger(o.logger),
		audit.WithMetrics(o.metrics),
		audit.WithClock(o.clock),
	)
	o.confidence = confidence.NewVisualizer(host.Factory, o.registry.Confidence(), labelFactory,
		confidence.WithLogger(o.logger),
		confidence.WithMetrics(o.metrics),
	)
	o.scenario = scenario.NewComparator(host.Factory, o.registry.Scenario(), labelFactory,
		scenario.WithLogger(o.logger),
		scenario.WithMetrics(o.metrics),
	)
	o.picker = picking.NewService(host.Raycaster, o.registry.Audit(),
		picking.WithLogger(o.logger),
		picking.WithMetrics(o.metrics),
	)

	o.cancelFrames = host.Frames.OnFrame(o.tick)

	if o.logger != nil {
		o.logger.Info("overlay ready", "layers", len(o.registry.All()))
	}
	return o, nil
}

// tick advances the entry animations by one frame.
func (o *Overlay) tick() {
	o.scheduler.Tick()
}

// Close cancels the frame hook and clears every layer, releasing all
// geometry, materials, and textures the overlay created. Close is
// idempotent; operations on a closed overlay fail with sentinel.ErrClosed.
func (o *Overlay) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	o.cancelFrames()
	o.registry.Dispose()
	if o.logger != nil {
		o.logger.Info("overlay closed", "records", o.log.Len())
	}
	return nil
}

// componentLogger returns the configured logger, or a discard logger for
// components that require one.
func (o *Overlay) componentLogger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
