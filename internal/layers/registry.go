package layers

import (
	"fmt"
	"log/slog"

	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/platform/sentinel"
	"specto/pkg/scene"
)

// Registry creates and indexes the overlay's layers. Every layer starts
// visible and attached to the host root.
type Registry struct {
	root   scene.Node
	byName map[domain.LayerName]*Layer
	order  []domain.LayerName
}

// NewRegistry builds one layer per known layer name under root.
func NewRegistry(factory scene.Factory, root scene.Node, log *slog.Logger, m *metrics.Metrics) *Registry {
	r := &Registry{root: root, byName: make(map[domain.LayerName]*Layer)}
	for _, name := range domain.LayerNames() {
		node := factory.NewGroup(name.String())
		root.Add(node)
		layer := &Layer{
			name:    name,
			node:    node,
			log:     log,
			metrics: m,
		}
		m.SetLayerVisible(name.String(), true)
		r.byName[name] = layer
		r.order = append(r.order, name)
	}
	return r
}

// Audit returns the audit trail layer.
func (r *Registry) Audit() *Layer { return r.byName[domain.LayerAudit] }

// Confidence returns the confidence visualization layer.
func (r *Registry) Confidence() *Layer { return r.byName[domain.LayerConfidence] }

// Scenario returns the scenario comparison layer.
func (r *Registry) Scenario() *Layer { return r.byName[domain.LayerScenario] }

// ByName looks a layer up by name.
func (r *Registry) ByName(name domain.LayerName) (*Layer, error) {
	layer, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("layer %q: %w", name, sentinel.ErrNotFound)
	}
	return layer, nil
}

// All returns the layers in their fixed creation order.
func (r *Registry) All() []*Layer {
	out := make([]*Layer, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Clear clears every layer.
func (r *Registry) Clear() {
	for _, layer := range r.All() {
		layer.Clear()
	}
}

// Dispose clears every layer, then detaches and disposes the layer group
// nodes themselves. The registry is unusable afterwards.
func (r *Registry) Dispose() {
	for _, layer := range r.All() {
		layer.Clear()
		r.root.Remove(layer.node)
		layer.node.Dispose()
	}
}
