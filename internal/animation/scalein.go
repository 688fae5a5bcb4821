package animation

import (
	"specto/pkg/geom"
	"specto/pkg/scene"
)

// scaleStep is the per-frame progress increment, reaching full size in
// twenty frames.
const scaleStep = 0.05

// ScaleIn grows a node from zero to the scale it had when the task was
// created. The node is shrunk to zero immediately so the first rendered
// frame never shows it at full size.
type ScaleIn struct {
	node     scene.Node
	target   geom.Vec3
	progress float64
}

// NewScaleIn captures the node's current scale as the target and resets
// the node to zero scale.
func NewScaleIn(n scene.Node) *ScaleIn {
	a := &ScaleIn{node: n, target: n.Scale()}
	n.SetScale(geom.Vec3{})
	return a
}

func (a *ScaleIn) Step() bool {
	a.progress += scaleStep
	if a.progress >= 1 {
		a.node.SetScale(a.target)
		return true
	}
	a.node.SetScale(a.target.Scale(a.progress))
	return false
}
