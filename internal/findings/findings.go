// Package findings ingests the causal-analysis export produced by the
// logistics pipeline and replays it onto the governance overlay: one audit
// interaction per finding plus a scenario snapshot comparing the baseline
// delivery delay against the delay implied by each finding's effect.
package findings

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"specto/pkg/domain"
)

// Finding is one entry of the causal-analysis export. Val carries the
// estimated effect on delivery delay as a day count, e.g. "+1.2d" or
// "-0.5d".
type Finding struct {
	Source string `json:"source"`
	Effect string `json:"effect"`
	Val    string `json:"val"`
	Type   string `json:"type"`
}

// Finding types emitted by the analysis pipeline.
const (
	TypeGood = "good"
	TypeBad  = "bad"
	TypeInfo = "info"
)

// Effects emitted by the analysis pipeline. The set is open; unknown
// effects still replay fine.
const (
	EffectDistance  = "distance"
	EffectHub       = "hub"
	EffectWeekend   = "weekend"
	EffectHighOrder = "high_order"
)

// Interaction maps a finding type to the audit interaction it replays as.
// Positive findings record as accepted optimizations, negative ones as
// policy adjustments, and anything else as a plain observation.
func (f Finding) Interaction() domain.InteractionType {
	switch f.Type {
	case TypeGood:
		return domain.InteractionOptimize
	case TypeBad:
		return domain.InteractionPolicyChange
	default:
		return domain.InteractionOther
	}
}

// EffectDays parses Val into its day count.
func (f Finding) EffectDays() (float64, error) {
	s := strings.TrimSpace(f.Val)
	s = strings.TrimSuffix(s, "d")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, fmt.Errorf("finding %s/%s: empty effect value", f.Source, f.Effect)
	}
	days, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("finding %s/%s: parse effect value %q: %w", f.Source, f.Effect, f.Val, err)
	}
	return days, nil
}

// MetricName names the scenario metric a finding compares.
func (f Finding) MetricName() string {
	return fmt.Sprintf("%s/%s delay_days", f.Source, f.Effect)
}

// Load reads and decodes a findings file.
func Load(path string) ([]Finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read findings file: %w", err)
	}
	var list []Finding
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode findings file %s: %w", path, err)
	}
	return list, nil
}
