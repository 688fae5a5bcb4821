// Package layers manages the overlay's scene layers: one group node per
// layer plus the host resources attached to it, with clear-and-dispose
// lifecycle handling.
package layers

import (
	"log/slog"

	"specto/internal/platform/metrics"
	"specto/pkg/domain"
	"specto/pkg/scene"
)

// Layer owns one group node and tracks every disposable resource created
// for the objects under it, so Clear can release them deterministically.
type Layer struct {
	name      domain.LayerName
	node      scene.Node
	resources []scene.Disposable

	log     *slog.Logger
	metrics *metrics.Metrics
}

// Name returns the layer's name.
func (l *Layer) Name() domain.LayerName { return l.name }

// Node returns the layer's group node. Callers attach objects through Add,
// not directly, so resources stay tracked.
func (l *Layer) Node() scene.Node { return l.node }

// Add attaches a node to the layer and registers any extra resources
// (textures, shared materials) to be released when the layer is cleared.
func (l *Layer) Add(n scene.Node, owns ...scene.Disposable) {
	l.node.Add(n)
	l.resources = append(l.resources, owns...)
	l.metrics.SetLayerObjects(l.name.String(), l.ObjectCount())
}

// SetVisible toggles the whole layer without touching its contents.
func (l *Layer) SetVisible(visible bool) {
	l.node.SetVisible(visible)
	l.metrics.SetLayerVisible(l.name.String(), visible)
	l.log.Debug("layer visibility changed", "layer", l.name, "visible", visible)
}

// Visible reports whether the layer is currently shown.
func (l *Layer) Visible() bool { return l.node.Visible() }

// ObjectCount reports how many objects are attached directly to the layer.
func (l *Layer) ObjectCount() int { return len(l.node.Children()) }

// Clear removes every object from the layer and disposes all tracked
// resources and node geometry, deepest first. Node disposal releases only
// a node's own geometry and material, so the subtree is walked explicitly.
// Clearing an empty layer is a no-op apart from bookkeeping.
func (l *Layer) Clear() {
	disposed := 0
	for _, res := range l.resources {
		res.Dispose()
		disposed++
	}
	l.resources = nil

	for _, child := range l.node.Children() {
		disposed += disposeTree(child)
		l.node.Remove(child)
	}

	l.metrics.SetLayerObjects(l.name.String(), 0)
	l.metrics.LayerCleared(l.name.String())
	l.metrics.DisposedResources(disposed)
	l.log.Debug("layer cleared", "layer", l.name, "disposed", disposed)
}

func disposeTree(n scene.Node) int {
	count := 1
	for _, child := range n.Children() {
		count += disposeTree(child)
	}
	n.Dispose()
	return count
}
