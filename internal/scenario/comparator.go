// Package scenario renders paired baseline/proposed metric values as bar
// pairs with delta annotations.
package scenario

import (
	"context"
	"log/slog"
	"math"

	"specto/internal/labels"
	"specto/internal/layers"
	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/scene"
)

// DeltaThreshold suppresses annotation noise: deltas at or below this
// magnitude render bars only, with no connector or label.
const DeltaThreshold = 0.1

const (
	barFootprint   = 0.8
	ghostFootprint = 0.9
	labelMargin    = 0.5

	ghostOpacity = 0.3
)

var (
	improveColor = geom.RGB(52, 168, 83)
	regressColor = geom.RGB(234, 67, 53)
	ghostColor   = geom.RGB(154, 160, 166)
	connectColor = geom.RGB(232, 234, 237)

	labelText = geom.Color{R: 1, G: 1, B: 1}
)

// PercentChange computes delta/baseline as a percentage. A zero baseline
// makes the ratio undefined; ok is false and the annotation shows "n/a"
// instead of a number.
func PercentChange(baseline, delta float64) (pct float64, ok bool) {
	if baseline == 0 {
		return 0, false
	}
	return delta / baseline * 100, true
}

// Comparator turns scenario data into bar pairs on the scenario layer.
// It keeps no per-datum state: every Compare call fully replaces the
// layer's contents.
type Comparator struct {
	factory scene.Factory
	layer   *layers.Layer
	labels  *labels.Factory

	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(c *Comparator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparator) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Comparator) {
		c.metrics = m
	}
}

// NewComparator constructs a Comparator writing to the given layer.
func NewComparator(factory scene.Factory, layer *layers.Layer, labelFactory *labels.Factory, opts ...Option) *Comparator {
	c := &Comparator{factory: factory, layer: layer, labels: labelFactory}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare replaces the scenario layer's contents with one bar pair per
// datum: a wireframe ghost at the baseline value and a solid bar at the
// proposed value, both anchored on the ground plane at the datum's column.
// Prior geometry and label textures are released first.
func (c *Comparator) Compare(ctx context.Context, data []domain.ScenarioDatum) {
	c.layer.Clear()

	for _, datum := range data {
		delta := datum.Delta()
		improved := datum.Improved()

		baseHeight := math.Max(datum.BaselineVal, 0)
		propHeight := math.Max(datum.ProposedVal, 0)

		ghost := c.factory.NewBox(scene.BoxSpec{
			Size: geom.Vec3{X: ghostFootprint, Y: baseHeight, Z: ghostFootprint},
		}, scene.MaterialSpec{
			Color:       ghostColor,
			Opacity:     ghostOpacity,
			Transparent: true,
			Wireframe:   true,
		})
		ghost.SetPosition(datum.Position.Add(geom.Vec3{Y: baseHeight / 2}))
		c.layer.Add(ghost)

		barColor := regressColor
		if improved {
			barColor = improveColor
		}
		bar := c.factory.NewBox(scene.BoxSpec{
			Size: geom.Vec3{X: barFootprint, Y: propHeight, Z: barFootprint},
		}, scene.MaterialSpec{Color: barColor, Opacity: 1})
		bar.SetPosition(datum.Position.Add(geom.Vec3{Y: propHeight / 2}))
		c.layer.Add(bar)

		if math.Abs(delta) > DeltaThreshold {
			c.annotate(datum, baseHeight, propHeight, improved)
		}

		c.metrics.ComparisonBuilt(direction(delta))
		if c.logger != nil {
			c.logger.DebugContext(ctx, "scenario compared",
				"metric", datum.MetricName,
				"baseline", datum.BaselineVal,
				"proposed", datum.ProposedVal,
				"delta", delta,
			)
		}
	}
}

// annotate draws the connector between the two bar tops and the delta
// label above the taller bar.
func (c *Comparator) annotate(datum domain.ScenarioDatum, baseHeight, propHeight float64, improved bool) {
	connector := c.factory.NewLine([]geom.Vec3{
		datum.Position.Add(geom.Vec3{Y: baseHeight}),
		datum.Position.Add(geom.Vec3{Y: propHeight}),
	}, scene.LineSpec{Color: connectColor})
	c.layer.Add(connector)

	text := ""
	if pct, ok := PercentChange(datum.BaselineVal, datum.Delta()); ok {
		text = c.labels.Delta(pct, improved)
	} else {
		text = c.labels.DeltaUnknown(improved)
	}

	background := regressColor
	if improved {
		background = improveColor
	}
	label := c.labels.Create(text, labels.Style{Background: background, Text: labelText})
	label.Node.SetPosition(datum.Position.Add(geom.Vec3{Y: math.Max(baseHeight, propHeight) + labelMargin}))
	c.layer.Add(label.Node, label.Texture)
}

func direction(delta float64) string {
	switch {
	case delta > 0:
		return "improved"
	case delta < 0:
		return "regressed"
	default:
		return "flat"
	}
}
