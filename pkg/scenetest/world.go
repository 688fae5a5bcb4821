package scenetest

import "specto/pkg/scene"

// World bundles one instance of every in-memory port around a shared
// root group, ready to hand to an overlay.
type World struct {
	Root      *Node
	Factory   *Factory
	Raycaster *Raycaster
	Canvases  *CanvasFactory
	Frames    *Frames
}

// NewWorld builds a world with rounded-corner canvas support enabled.
func NewWorld() *World {
	factory := &Factory{}
	root := factory.NewGroup("root").(*Node)
	return &World{
		Root:      root,
		Factory:   factory,
		Raycaster: &Raycaster{},
		Canvases:  &CanvasFactory{Rounded: true},
		Frames:    &Frames{},
	}
}

// Host assembles the ports into a scene.Host.
func (w *World) Host() scene.Host {
	return scene.Host{
		Root:      w.Root,
		Factory:   w.Factory,
		Raycaster: w.Raycaster,
		Canvases:  w.Canvases,
		Frames:    w.Frames,
	}
}
