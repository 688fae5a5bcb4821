package scene

// Pointer is a 2D pointer coordinate in the host's normalized device space
// (x and y in [-1, 1], origin at the viewport center).
type Pointer struct {
	X, Y float64
}

// Camera identifies the host camera a pick originates from. The overlay
// never inspects it; it is passed through to the ray test verbatim.
type Camera = any

// Hit is one ray intersection, as reported by the host.
type Hit struct {
	Node     Node
	Distance float64
	Point    Vec3
}

// Raycaster is the host's ray-intersection primitive.
type Raycaster interface {
	// Intersections casts a ray from camera through pointer and returns hits
	// on root (and, when recursive, its descendants) ordered nearest first.
	Intersections(pointer Pointer, camera Camera, root Node, recursive bool) []Hit
}
