package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the overlay. All methods are safe to
// call on a nil receiver, so components can run without metrics wired.
type Metrics struct {
	// Markers placed on the audit layer, by interaction type
	MarkersPlaced *prometheus.CounterVec

	// Decision path segments appended on the audit layer
	PathSegments prometheus.Counter

	// Confidence shells created
	ShellsBuilt prometheus.Counter

	// Scenario comparisons built, by direction
	Comparisons *prometheus.CounterVec

	// Pick attempts by result, and their latency
	Picks        *prometheus.CounterVec
	PickDuration prometheus.Histogram

	// Animations currently running
	ActiveAnimations prometheus.Gauge

	// Per-layer object counts, visibility, and clears
	LayerObjects *prometheus.GaugeVec
	LayerVisible *prometheus.GaugeVec
	LayerClears  *prometheus.CounterVec

	// Host resources released through disposal
	ResourcesDisposed prometheus.Counter
}

// New creates a new Metrics instance with all overlay metrics registered.
func New() *Metrics {
	return &Metrics{
		MarkersPlaced: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "specto_audit_markers_total",
			Help: "Total audit markers placed, by interaction type",
		}, []string{"interaction"}), // interaction: "optimize", "policy_change", "other"

		PathSegments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "specto_audit_path_segments_total",
			Help: "Total decision path segments appended",
		}),

		ShellsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "specto_confidence_shells_total",
			Help: "Total confidence shells created",
		}),

		Comparisons: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "specto_scenario_comparisons_total",
			Help: "Total scenario comparisons built, by direction",
		}, []string{"direction"}), // direction: "improved", "regressed", "flat"

		Picks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "specto_picks_total",
			Help: "Total pick attempts, by result",
		}, []string{"result"}), // result: "hit", "miss"

		PickDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "specto_pick_duration_seconds",
			Help:    "Duration of pick resolution including raycasting",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),

		ActiveAnimations: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "specto_active_animations",
			Help: "Number of animations currently running",
		}),

		LayerObjects: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "specto_layer_objects",
			Help: "Number of objects attached to each layer",
		}, []string{"layer"}),

		LayerVisible: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "specto_layer_visible",
			Help: "Whether each layer is visible (1) or hidden (0)",
		}, []string{"layer"}),

		LayerClears: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "specto_layer_clears_total",
			Help: "Total clear operations per layer",
		}, []string{"layer"}),

		ResourcesDisposed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "specto_resources_disposed_total",
			Help: "Total host resources released through disposal",
		}),
	}
}

// MarkerPlaced records an audit marker creation.
func (m *Metrics) MarkerPlaced(interaction string) {
	if m != nil {
		m.MarkersPlaced.WithLabelValues(interaction).Inc()
	}
}

// PathSegmentAdded records a decision path segment being appended.
func (m *Metrics) PathSegmentAdded() {
	if m != nil {
		m.PathSegments.Inc()
	}
}

// ShellsCreated records n confidence shells being built.
func (m *Metrics) ShellsCreated(n int) {
	if m != nil {
		m.ShellsBuilt.Add(float64(n))
	}
}

// ComparisonBuilt records a scenario comparison by direction.
func (m *Metrics) ComparisonBuilt(direction string) {
	if m != nil {
		m.Comparisons.WithLabelValues(direction).Inc()
	}
}

// ObservePick records a pick attempt and its duration.
// Call with time.Now() at the start of the pick.
func (m *Metrics) ObservePick(start time.Time, hit bool) {
	if m != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		m.Picks.WithLabelValues(result).Inc()
		m.PickDuration.Observe(time.Since(start).Seconds())
	}
}

// SetActiveAnimations records the number of running animations.
func (m *Metrics) SetActiveAnimations(n int) {
	if m != nil {
		m.ActiveAnimations.Set(float64(n))
	}
}

// SetLayerObjects records the object count attached to a layer.
func (m *Metrics) SetLayerObjects(layer string, n int) {
	if m != nil {
		m.LayerObjects.WithLabelValues(layer).Set(float64(n))
	}
}

// SetLayerVisible records a layer's visibility.
func (m *Metrics) SetLayerVisible(layer string, visible bool) {
	if m != nil {
		v := 0.0
		if visible {
			v = 1
		}
		m.LayerVisible.WithLabelValues(layer).Set(v)
	}
}

// LayerCleared records a clear operation on a layer.
func (m *Metrics) LayerCleared(layer string) {
	if m != nil {
		m.LayerClears.WithLabelValues(layer).Inc()
	}
}

// DisposedResources records n host resources being released.
func (m *Metrics) DisposedResources(n int) {
	if m != nil {
		m.ResourcesDisposed.Add(float64(n))
	}
}
