package scenetest

import "specto/pkg/scene"

// RaycastCall captures one Intersections invocation.
type RaycastCall struct {
	Pointer   scene.Pointer
	Root      scene.Node
	Recursive bool
}

// Raycaster replays scripted hit lists in order, one list per call.
// Once the script is exhausted it reports no intersections.
type Raycaster struct {
	Calls  []RaycastCall
	script [][]scene.Hit
}

// Script queues the hit list returned by the next Intersections call.
func (r *Raycaster) Script(hits ...scene.Hit) {
	r.script = append(r.script, hits)
}

func (r *Raycaster) Intersections(p scene.Pointer, _ scene.Camera, root scene.Node, recursive bool) []scene.Hit {
	r.Calls = append(r.Calls, RaycastCall{Pointer: p, Root: root, Recursive: recursive})
	if len(r.script) == 0 {
		return nil
	}
	hits := r.script[0]
	r.script = r.script[1:]
	return hits
}
