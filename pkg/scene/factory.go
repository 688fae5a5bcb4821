package scene

// MaterialSpec carries everything the overlay decides about a material.
// The host translates it to whatever its renderer uses.
type MaterialSpec struct {
	Color Color
	// Opacity in [0, 1]; only honored when Transparent is set.
	Opacity     float64
	Transparent bool
	// Wireframe renders edges only, leaving faces unfilled.
	Wireframe bool
	// Emissive makes the material ignore scene lighting so markers stay
	// readable in dark scenes.
	Emissive bool
}

// BoxSpec sizes a rectangular box, centered on its node origin.
type BoxSpec struct {
	Size Vec3
}

// SphereSpec sizes a sphere, centered on its node origin.
type SphereSpec struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

// ConeSpec sizes a cone standing on its node origin. RadialSegments 4 yields
// a four-sided pyramid.
type ConeSpec struct {
	Radius         float64
	Height         float64
	RadialSegments int
}

// LineSpec styles a polyline.
type LineSpec struct {
	Color  Color
	Dashed bool
	// Dash pattern lengths in scene units; ignored when Dashed is false.
	DashSize float64
	GapSize  float64
}

// SpriteSpec styles a camera-facing billboard.
type SpriteSpec struct {
	Scale Vec3
}

// Texture is a host-owned bitmap handle produced by a Canvas.
type Texture interface {
	Disposable
}

// Factory creates host scene-graph nodes from overlay specs. Returned nodes
// are detached; the overlay parents them itself.
type Factory interface {
	NewGroup(name string) Node
	NewBox(spec BoxSpec, mat MaterialSpec) Node
	NewSphere(spec SphereSpec, mat MaterialSpec) Node
	NewCone(spec ConeSpec, mat MaterialSpec) Node
	// NewLine builds a polyline through points given in the future parent's
	// coordinate space.
	NewLine(points []Vec3, spec LineSpec) Node
	NewSprite(tex Texture, spec SpriteSpec) Node
}
