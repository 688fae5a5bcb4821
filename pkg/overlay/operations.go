package overlay

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"specto/pkg/domain"
	"specto/pkg/geom"
	"specto/pkg/platform/sentinel"
	"specto/pkg/scene"
)

// LayerState describes one layer for inspection surfaces.
type LayerState struct {
	Name    domain.LayerName
	Visible bool
	Objects int
}

// LogInteraction appends an immutable audit record and grows the audit
// layer with its marker, anchor, and path segment. The position is stored
// by value and the metadata map is deep-copied. Apart from the closed
// guard this operation cannot fail.
func (o *Overlay) LogInteraction(ctx context.Context, t domain.InteractionType, pos geom.Vec3, meta map[string]any) (domain.AuditRecord, error) {
	if err := o.guard(); err != nil {
		return domain.AuditRecord{}, err
	}
	ctx, span := o.tracer.Start(ctx, "overlay.LogInteraction",
		trace.WithAttributes(attribute.String("interaction.type", t.String())),
	)
	defer span.End()

	return o.recorder.Record(ctx, t, pos, meta), nil
}

// ShowConfidenceIntervals replaces the confidence layer with shells for
// the given samples. Passing no samples just clears the layer.
func (o *Overlay) ShowConfidenceIntervals(ctx context.Context, samples []domain.ConfidenceSample) error {
	if err := o.guard(); err != nil {
		return err
	}
	ctx, span := o.tracer.Start(ctx, "overlay.ShowConfidenceIntervals",
		trace.WithAttributes(attribute.Int("samples", len(samples))),
	)
	defer span.End()

	o.confidence.Show(ctx, samples)
	return nil
}

// CompareScenarios replaces the scenario layer with bar pairs for the
// given data. Passing no data just clears the layer.
func (o *Overlay) CompareScenarios(ctx context.Context, data []domain.ScenarioDatum) error {
	if err := o.guard(); err != nil {
		return err
	}
	ctx, span := o.tracer.Start(ctx, "overlay.CompareScenarios",
		trace.WithAttributes(attribute.Int("data", len(data))),
	)
	defer span.End()

	o.scenario.Compare(ctx, data)
	return nil
}

// ToggleLayer shows or hides a layer without touching its contents. An
// unrecognized layer name is a documented no-op, not an error.
func (o *Overlay) ToggleLayer(ctx context.Context, name domain.LayerName, visible bool) error {
	if err := o.guard(); err != nil {
		return err
	}
	_, span := o.tracer.Start(ctx, "overlay.ToggleLayer",
		trace.WithAttributes(
			attribute.String("layer", name.String()),
			attribute.Bool("visible", visible),
		),
	)
	defer span.End()

	layer, err := o.registry.ByName(name)
	if err != nil {
		if o.logger != nil {
			o.logger.DebugContext(ctx, "toggle ignored for unknown layer", "layer", name)
		}
		return nil
	}
	layer.SetVisible(visible)
	return nil
}

// Intersections resolves a pointer coordinate to the audit records under
// it, nearest first. A hidden audit layer yields an empty result.
func (o *Overlay) Intersections(ctx context.Context, pointer scene.Pointer, camera scene.Camera) ([]domain.AuditRecord, error) {
	if err := o.guard(); err != nil {
		return nil, err
	}
	ctx, span := o.tracer.Start(ctx, "overlay.Intersections")
	defer span.End()

	records := o.picker.Intersections(ctx, pointer, camera)
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

// Records returns the session's audit log in append order as deep copies.
// Safe to call from goroutines other than the scene loop.
func (o *Overlay) Records(ctx context.Context) []domain.AuditRecord {
	return o.log.All(ctx)
}

// Record returns a single audit record by ID.
func (o *Overlay) Record(ctx context.Context, id domain.RecordID) (domain.AuditRecord, error) {
	return o.log.Get(ctx, id)
}

// RecordCount reports how many interactions have been logged.
func (o *Overlay) RecordCount() int {
	return o.log.Len()
}

// LayerState reports a layer's visibility and object count.
func (o *Overlay) LayerState(name domain.LayerName) (LayerState, error) {
	layer, err := o.registry.ByName(name)
	if err != nil {
		return LayerState{}, err
	}
	return LayerState{Name: layer.Name(), Visible: layer.Visible(), Objects: layer.ObjectCount()}, nil
}

// LayerStates reports every layer in fixed order.
func (o *Overlay) LayerStates() []LayerState {
	all := o.registry.All()
	out := make([]LayerState, 0, len(all))
	for _, layer := range all {
		out = append(out, LayerState{Name: layer.Name(), Visible: layer.Visible(), Objects: layer.ObjectCount()})
	}
	return out
}

func (o *Overlay) guard() error {
	if o.closed {
		return fmt.Errorf("overlay: %w", sentinel.ErrClosed)
	}
	return nil
}
