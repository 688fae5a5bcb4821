package main

import (
	"context"

	"specto/internal/findings"
	"specto/pkg/domain"
	"specto/pkg/overlay"
)

// seedConfidence populates the confidence layer with one sample per
// logistics hub so the demo scene is not empty before the first findings
// replay. Uncertainties are representative of a mid-run analysis.
func seedConfidence(ctx context.Context, ov *overlay.Overlay) error {
	hubs := []struct {
		source      string
		uncertainty float64
	}{
		{"SP", 0.12},
		{"RJ", 0.28},
		{"MG", 0.35},
		{"PR", 0.55},
		{"RS", 0.70},
	}

	samples := make([]domain.ConfidenceSample, 0, len(hubs))
	for _, hub := range hubs {
		pos, ok := findings.SitePosition(hub.source)
		if !ok {
			continue
		}
		samples = append(samples, domain.ConfidenceSample{
			Position:    pos,
			Uncertainty: domain.Float(hub.uncertainty),
		})
	}
	return ov.ShowConfidenceIntervals(ctx, samples)
}
