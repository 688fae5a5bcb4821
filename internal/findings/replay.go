package findings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"specto/pkg/domain"
	"specto/pkg/geom"
)

// BaselineDelayDays is the reference delivery delay the scenario bars
// compare against. The pipeline reports effects relative to current
// operations, so the proposed value is baseline plus the effect.
const BaselineDelayDays = 7.0

// stackSpacing separates repeated findings for the same hub along X so
// their bars do not overlap.
const stackSpacing = 1.5

// Overlay is the slice of the overlay surface the replayer drives.
type Overlay interface {
	LogInteraction(ctx context.Context, t domain.InteractionType, pos geom.Vec3, meta map[string]any) (domain.AuditRecord, error)
	CompareScenarios(ctx context.Context, data []domain.ScenarioDatum) error
}

// Replayer turns findings into overlay calls. Each Replay produces one
// audit interaction per finding (strictly additive, like any other logged
// action) and one scenario snapshot covering all findings (fully replacing
// the previous one).
type Replayer struct {
	overlay Overlay
	logger  *slog.Logger
}

// Stats summarizes one replay run.
type Stats struct {
	RunID        uuid.UUID
	Interactions int
	Scenarios    int
	Skipped      int
}

func NewReplayer(overlay Overlay, logger *slog.Logger) *Replayer {
	return &Replayer{overlay: overlay, logger: logger}
}

// ReplayFile loads a findings file and replays it.
func (r *Replayer) ReplayFile(ctx context.Context, path string) (Stats, error) {
	list, err := Load(path)
	if err != nil {
		return Stats{}, err
	}
	return r.Replay(ctx, list)
}

// Replay drives the overlay with the given findings. Findings whose effect
// value does not parse are skipped and counted, never fatal. Must be called
// from the host loop like any other overlay mutation.
func (r *Replayer) Replay(ctx context.Context, list []Finding) (Stats, error) {
	stats := Stats{RunID: uuid.New()}
	perSource := make(map[string]int)
	data := make([]domain.ScenarioDatum, 0, len(list))

	for _, f := range list {
		days, err := f.EffectDays()
		if err != nil {
			stats.Skipped++
			r.logger.WarnContext(ctx, "skipping malformed finding", "error", err)
			continue
		}

		pos, ok := SitePosition(f.Source)
		if !ok {
			r.logger.DebugContext(ctx, "unknown hub placed at origin", "source", f.Source)
		}
		pos.X += float64(perSource[f.Source]) * stackSpacing
		perSource[f.Source]++

		_, err = r.overlay.LogInteraction(ctx, f.Interaction(), pos, map[string]any{
			"run_id": stats.RunID.String(),
			"source": f.Source,
			"hub":    SiteName(f.Source),
			"effect": f.Effect,
			"val":    f.Val,
			"type":   f.Type,
		})
		if err != nil {
			return stats, err
		}
		stats.Interactions++

		data = append(data, domain.ScenarioDatum{
			Position:    pos,
			BaselineVal: BaselineDelayDays,
			ProposedVal: BaselineDelayDays + days,
			MetricName:  f.MetricName(),
		})
	}

	if err := r.overlay.CompareScenarios(ctx, data); err != nil {
		return stats, err
	}
	stats.Scenarios = len(data)

	r.logger.InfoContext(ctx, "findings replayed",
		"run_id", stats.RunID,
		"interactions", stats.Interactions,
		"scenarios", stats.Scenarios,
		"skipped", stats.Skipped,
	)
	return stats, nil
}
