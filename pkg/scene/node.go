// Package scene declares the ports the overlay consumes from its host
// renderer: scene-graph nodes, primitive/material factories, ray
// intersection, 2D text rasterization, and the per-frame hook. The overlay
// only decides what to place where; rendering, cameras, and lighting stay on
// the host side of these interfaces. pkg/scenetest ships an in-memory
// implementation for tests and headless runs.
package scene

// Disposable releases GPU-backed resources (geometry, materials, textures).
// Dispose must be synchronous and idempotent.
type Disposable interface {
	Dispose()
}

// Node is the overlay's handle on one entry of the host scene graph.
// Child positions are relative to their parent. Dispose releases only the
// node's own geometry and material, not its children's.
type Node interface {
	Disposable

	// ID is a host-assigned identifier, stable for the node's lifetime.
	ID() string

	Add(child Node)
	Remove(child Node)
	Children() []Node
	// Parent returns nil for detached nodes and scene roots.
	Parent() Node

	SetVisible(visible bool)
	Visible() bool

	SetPosition(p Vec3)
	Position() Vec3
	SetScale(s Vec3)
	Scale() Vec3

	// SetTag attaches opaque user data to the node. The overlay uses tags
	// for audit-record back-references; hosts must store them verbatim.
	SetTag(tag any)
	Tag() any
}
