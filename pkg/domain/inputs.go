package domain

import "specto/pkg/geom"

// DefaultUncertainty is assumed for confidence samples that omit their
// uncertainty value.
const DefaultUncertainty = 0.1

// ConfidenceSample is one transient input to the confidence visualizer.
// Samples are consumed whole per call and never retained.
type ConfidenceSample struct {
	Position geom.Vec3
	// Uncertainty in [0, 1]; nil means DefaultUncertainty. Out-of-range
	// values are clamped, not rejected.
	Uncertainty *float64
}

// Float is a pointer helper for optional float fields such as
// ConfidenceSample.Uncertainty.
func Float(v float64) *float64 {
	return &v
}

// ScenarioDatum is one transient input to the scenario comparator: a paired
// baseline/proposed value for a metric at a scene position. Data sets are
// consumed whole per call and never retained.
type ScenarioDatum struct {
	Position    geom.Vec3
	BaselineVal float64
	ProposedVal float64
	MetricName  string
}

// Delta returns the proposed-minus-baseline difference.
func (d ScenarioDatum) Delta() float64 {
	return d.ProposedVal - d.BaselineVal
}

// Improved reports the fixed improvement policy: proposed strictly greater
// than baseline. Metrics where lower is better are knowingly misclassified;
// the policy is not configurable.
func (d ScenarioDatum) Improved() bool {
	return d.ProposedVal > d.BaselineVal
}
