// Package scenetest implements every pkg/scene port in memory. It backs the
// package tests and the demo daemon's headless host. Like a real render
// loop, it expects single-goroutine use; it favors clarity over performance.
package scenetest

import (
	"slices"

	"github.com/google/uuid"

	"specto/pkg/geom"
	"specto/pkg/scene"
)

// Node kinds as produced by the factory.
const (
	KindGroup  = "group"
	KindBox    = "box"
	KindSphere = "sphere"
	KindCone   = "cone"
	KindLine   = "line"
	KindSprite = "sprite"
)

// Node is an in-memory scene.Node that retains its creation spec so tests
// can assert on what the overlay requested.
type Node struct {
	id       string
	kind     string
	spec     any
	material scene.MaterialSpec
	points   []geom.Vec3
	texture  scene.Texture

	parent   scene.Node
	children []scene.Node

	position geom.Vec3
	scale    geom.Vec3
	visible  bool
	tag      any
	disposed bool
}

func newNode(kind string) *Node {
	return &Node{
		id:      uuid.NewString(),
		kind:    kind,
		scale:   geom.Uniform(1),
		visible: true,
	}
}

// Kind reports which factory method created the node.
func (n *Node) Kind() string { return n.kind }

// Spec returns the creation spec (scene.BoxSpec, scene.SphereSpec, ...).
func (n *Node) Spec() any { return n.spec }

// Material returns the material spec the node was created with.
func (n *Node) Material() scene.MaterialSpec { return n.material }

// Points returns the polyline points for line nodes.
func (n *Node) Points() []geom.Vec3 { return n.points }

// LineSpec returns the line style for line nodes.
func (n *Node) LineSpec() scene.LineSpec {
	spec, _ := n.spec.(scene.LineSpec)
	return spec
}

// Texture returns the texture for sprite nodes.
func (n *Node) Texture() scene.Texture { return n.texture }

// Disposed reports whether Dispose has been called.
func (n *Node) Disposed() bool { return n.disposed }

func (n *Node) ID() string { return n.id }

func (n *Node) Add(child scene.Node) {
	if c, ok := child.(*Node); ok {
		c.parent = n
	}
	n.children = append(n.children, child)
}

func (n *Node) Remove(child scene.Node) {
	for i, c := range n.children {
		if c == child {
			n.children = slices.Delete(n.children, i, i+1)
			if mc, ok := child.(*Node); ok {
				mc.parent = nil
			}
			return
		}
	}
}

func (n *Node) Children() []scene.Node {
	out := make([]scene.Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) Parent() scene.Node { return n.parent }

func (n *Node) SetVisible(visible bool) { n.visible = visible }
func (n *Node) Visible() bool           { return n.visible }

func (n *Node) SetPosition(p geom.Vec3) { n.position = p }
func (n *Node) Position() geom.Vec3     { return n.position }

func (n *Node) SetScale(s geom.Vec3) { n.scale = s }
func (n *Node) Scale() geom.Vec3     { return n.scale }

func (n *Node) SetTag(tag any) { n.tag = tag }
func (n *Node) Tag() any       { return n.tag }

func (n *Node) Dispose() { n.disposed = true }
