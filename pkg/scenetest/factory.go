package scenetest

import (
	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Factory builds in-memory nodes and records everything it creates.
type Factory struct {
	// Created lists every node in creation order, disposed or not.
	Created []*Node
}

func (f *Factory) record(n *Node) *Node {
	f.Created = append(f.Created, n)
	return n
}

// ByKind returns every created node of the given kind.
func (f *Factory) ByKind(kind string) []*Node {
	var out []*Node
	for _, n := range f.Created {
		if n.kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Live returns created nodes of the given kind that are not disposed.
func (f *Factory) Live(kind string) []*Node {
	var out []*Node
	for _, n := range f.ByKind(kind) {
		if !n.disposed {
			out = append(out, n)
		}
	}
	return out
}

func (f *Factory) NewGroup(name string) scene.Node {
	n := newNode(KindGroup)
	n.spec = name
	return f.record(n)
}

func (f *Factory) NewBox(spec scene.BoxSpec, mat scene.MaterialSpec) scene.Node {
	n := newNode(KindBox)
	n.spec = spec
	n.material = mat
	return f.record(n)
}

func (f *Factory) NewSphere(spec scene.SphereSpec, mat scene.MaterialSpec) scene.Node {
	n := newNode(KindSphere)
	n.spec = spec
	n.material = mat
	return f.record(n)
}

func (f *Factory) NewCone(spec scene.ConeSpec, mat scene.MaterialSpec) scene.Node {
	n := newNode(KindCone)
	n.spec = spec
	n.material = mat
	return f.record(n)
}

func (f *Factory) NewLine(points []geom.Vec3, spec scene.LineSpec) scene.Node {
	n := newNode(KindLine)
	n.spec = spec
	n.points = append([]geom.Vec3(nil), points...)
	return f.record(n)
}

func (f *Factory) NewSprite(tex scene.Texture, spec scene.SpriteSpec) scene.Node {
	n := newNode(KindSprite)
	n.spec = spec
	n.texture = tex
	return f.record(n)
}
