package scene

import "specto/pkg/geom"

// Aliases so host adapters can implement the ports against a single import.
type (
	Vec3  = geom.Vec3
	Color = geom.Color
)
