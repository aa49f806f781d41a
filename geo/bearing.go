// SPDX-License-Identifier: MIT

package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// normalized to [0, 360).
func Bearing(a, b orb.Point) float64 {
	return math.Mod(orbgeo.Bearing(a, b)+360, 360)
}

// Compass names the 16-point compass direction nearest to bearing.
func Compass(bearing float64) string {
	bearing = math.Mod(math.Mod(bearing, 360)+360, 360)
	idx := int(math.Round(bearing/22.5)) % len(compassPoints)

	return compassPoints[idx]
}

// Midpoint returns the great-circle midpoint between a and b.
func Midpoint(a, b orb.Point) orb.Point {
	return orbgeo.Midpoint(a, b)
}

// PolygonArea approximates the area in square meters enclosed by points,
// using the flat-earth projection of each vertex. Fewer than three points
// enclose nothing.
func PolygonArea(points []orb.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{
			p.Lon() * MetersPerDegree * math.Cos(p.Lat()*math.Pi/180),
			p.Lat() * MetersPerDegree,
		})
	}
	if !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}

	return math.Abs(planar.Area(ring))
}
