package scene

import (
	"fmt"

	"specto/pkg/platform/sentinel"
)

// Host bundles every port the overlay consumes from the embedding renderer.
// All fields are required.
type Host struct {
	// Root is the scene-graph node the overlay mounts its layers under.
	Root      Node
	Factory   Factory
	Raycaster Raycaster
	Canvases  CanvasFactory
	Frames    FrameLoop
}

// Validate reports the first missing port, wrapping
// sentinel.ErrUnavailable.
func (h Host) Validate() error {
	missing := ""
	switch {
	case h.Root == nil:
		missing = "root node"
	case h.Factory == nil:
		missing = "factory"
	case h.Raycaster == nil:
		missing = "raycaster"
	case h.Canvases == nil:
		missing = "canvas factory"
	case h.Frames == nil:
		missing = "frame loop"
	default:
		return nil
	}
	return fmt.Errorf("scene host: missing %s: %w", missing, sentinel.ErrUnavailable)
}
