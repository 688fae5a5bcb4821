// Package confidence renders statistical uncertainty as nested translucent
// shells around sample points.
package confidence

import (
	"context"
	"log/slog"

	"specto/internal/labels"
	"specto/internal/layers"
	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Shell color endpoints. Uncertainty 0 renders exactly the high-confidence
// color, uncertainty 1 exactly the low-confidence color.
var (
	HighConfidenceColor = geom.RGB(52, 168, 83)
	LowConfidenceColor  = geom.RGB(234, 67, 53)

	labelBackground = geom.RGB(32, 33, 36)
	labelText       = geom.Color{R: 1, G: 1, B: 1}
)

// Three concentric shells per sample. Opacity decreases with radius so the
// innermost shell reads densest; the outermost is wireframe-only and never
// occludes what is inside it.
var (
	shellFractions = [3]float64{0.3, 0.6, 1.0}
	shellOpacities = [3]float64{0.35, 0.18, 0.08}
)

const (
	radiusScale = 5.0
	radiusFloor = 0.5
	labelMargin = 0.6

	shellWidthSegments  = 24
	shellHeightSegments = 16
)

// Visualizer turns an uncertainty sample set into shells and labels on the
// confidence layer. It keeps no per-sample state: every Show call fully
// replaces the layer's contents.
type Visualizer struct {
	factory scene.Factory
	layer   *layers.Layer
	labels  *labels.Factory

	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(v *Visualizer)

func WithLogger(logger *slog.Logger) Option {
	return func(v *Visualizer) {
		v.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Visualizer) {
		v.metrics = m
	}
}

// NewVisualizer constructs a Visualizer writing to the given layer.
func NewVisualizer(factory scene.Factory, layer *layers.Layer, labelFactory *labels.Factory, opts ...Option) *Visualizer {
	v := &Visualizer{factory: factory, layer: layer, labels: labelFactory}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Show replaces the confidence layer's contents with shells for the given
// samples. Prior geometry, materials, and label textures are released
// first, so repeated calls cause no net resource growth.
func (v *Visualizer) Show(ctx context.Context, samples []domain.ConfidenceSample) {
	v.layer.Clear()

	for _, sample := range samples {
		uncertainty := domain.DefaultUncertainty
		if sample.Uncertainty != nil {
			uncertainty = geom.Clamp01(*sample.Uncertainty)
		}

		color := HighConfidenceColor.Lerp(LowConfidenceColor, uncertainty)
		outer := uncertainty*radiusScale + radiusFloor

		for i, fraction := range shellFractions {
			wireframe := i == len(shellFractions)-1
			shell := v.factory.NewSphere(scene.SphereSpec{
				Radius:         outer * fraction,
				WidthSegments:  shellWidthSegments,
				HeightSegments: shellHeightSegments,
			}, scene.MaterialSpec{
				Color:       color,
				Opacity:     shellOpacities[i],
				Transparent: true,
				Wireframe:   wireframe,
			})
			shell.SetPosition(sample.Position)
			v.layer.Add(shell)
		}
		v.metrics.ShellsCreated(len(shellFractions))

		label := v.labels.Create(v.labels.Percent(uncertainty), labels.Style{
			Background: labelBackground,
			Text:       labelText,
		})
		label.Node.SetPosition(sample.Position.Add(geom.Vec3{Y: outer + labelMargin}))
		v.layer.Add(label.Node, label.Texture)
	}

	if v.logger != nil {
		v.logger.DebugContext(ctx, "confidence intervals shown", "samples", len(samples))
	}
}
