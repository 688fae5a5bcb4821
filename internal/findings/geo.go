package findings

import (
	"math"

	"specto/pkg/geom"
)

// site is a logistics hub with the approximate coordinates of its state
// capital. The analysis pipeline aggregates per seller state, so the
// capital stands in for the whole hub.
type site struct {
	name     string
	lat, lng float64
}

// The five seller hubs the pipeline analyzes.
var sites = map[string]site{
	"SP": {name: "São Paulo", lat: -23.55, lng: -46.63},
	"RJ": {name: "Rio de Janeiro", lat: -22.91, lng: -43.17},
	"MG": {name: "Belo Horizonte", lat: -19.92, lng: -43.94},
	"PR": {name: "Curitiba", lat: -25.43, lng: -49.27},
	"RS": {name: "Porto Alegre", lat: -30.03, lng: -51.23},
}

// Projection constants: equirectangular, centered on the SP hub, scaled so
// the five hubs land a few scene units apart on the ground plane.
const (
	originLat = -23.55
	originLng = -46.63

	kmPerDegree       = 111.32
	unitsPerKilometer = 0.01
)

// SitePosition projects a hub onto the scene ground plane. Scene X grows
// eastward and scene Z grows southward; Y stays on the ground. Unknown
// sources report ok=false and the origin.
func SitePosition(source string) (pos geom.Vec3, ok bool) {
	s, ok := sites[source]
	if !ok {
		return geom.Vec3{}, false
	}
	scale := kmPerDegree * unitsPerKilometer
	return geom.Vec3{
		X: (s.lng - originLng) * math.Cos(originLat*math.Pi/180) * scale,
		Z: -(s.lat - originLat) * scale,
	}, true
}

// SiteName returns the display name of a hub, or the source itself when
// unknown.
func SiteName(source string) string {
	if s, ok := sites[source]; ok {
		return s.name
	}
	return source
}
