// Package picking resolves pointer coordinates to audit records via the
// host's ray-intersection primitive.
package picking

import (
	"context"
	"log/slog"
	"time"

	"specto/internal/layers"
	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/scene"
)

// Raycaster is the slice of the host ray-intersection primitive the
// picking service consumes.
type Raycaster interface {
	Intersections(pointer scene.Pointer, camera scene.Camera, root scene.Node, recursive bool) []scene.Hit
}

// Service ray-tests the audit layer and maps hits back to the records
// attached to their markers. Confidence and scenario content is never
// pickable.
type Service struct {
	raycaster Raycaster
	layer     *layers.Layer

	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs a Service picking against the given audit layer.
func NewService(raycaster Raycaster, layer *layers.Layer, opts ...Option) *Service {
	s := &Service{raycaster: raycaster, layer: layer}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intersections resolves a pointer coordinate to the audit records under
// it, nearest first. A hidden audit layer short-circuits to an empty
// result without consulting the raycaster. Hits that resolve to no record
// (path segments, stray geometry) are dropped; a hit on an anchor segment
// resolves through its parent marker.
func (s *Service) Intersections(ctx context.Context, pointer scene.Pointer, camera scene.Camera) []domain.AuditRecord {
	if !s.layer.Visible() {
		return nil
	}

	start := time.Now()
	hits := s.raycaster.Intersections(pointer, camera, s.layer.Node(), true)

	var records []domain.AuditRecord
	for _, hit := range hits {
		rec, ok := recordFor(hit.Node)
		if !ok {
			continue
		}
		records = append(records, rec.Clone())
	}

	s.metrics.ObservePick(start, len(records) > 0)
	if s.logger != nil {
		s.logger.DebugContext(ctx, "pick resolved",
			"hits", len(hits),
			"records", len(records),
		)
	}
	return records
}

// recordFor finds the audit record attached to a node, falling back to the
// node's immediate parent. Anchor segments carry no record of their own.
func recordFor(n scene.Node) (domain.AuditRecord, bool) {
	if rec, ok := n.Tag().(domain.AuditRecord); ok {
		return rec, true
	}
	if parent := n.Parent(); parent != nil {
		if rec, ok := parent.Tag().(domain.AuditRecord); ok {
			return rec, true
		}
	}
	return domain.AuditRecord{}, false
}
