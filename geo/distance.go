// SPDX-License-Identifier: MIT

package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

const (
	// EarthRadius is the mean earth radius in meters.
	EarthRadius = 6371000.0

	// MetersPerDegree approximates the length of one degree of latitude.
	MetersPerDegree = 111000.0
)

func latLng(p orb.Point) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat(), p.Lon())
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b orb.Point) float64 {
	return latLng(a).Distance(latLng(b)).Radians() * EarthRadius
}

// project returns the flat-earth offsets from a to b in meters.
// Longitude is scaled by the cosine of a's latitude.
func project(a, b orb.Point) (dx, dy float64) {
	dy = (b.Lat() - a.Lat()) * MetersPerDegree
	dx = (b.Lon() - a.Lon()) * MetersPerDegree * math.Cos(a.Lat()*math.Pi/180)

	return dx, dy
}

// Euclidean returns the straight-line distance between a and b on the
// flat-earth projection anchored at a.
func Euclidean(a, b orb.Point) float64 {
	dx, dy := project(a, b)

	return math.Hypot(dx, dy)
}

// Manhattan returns |dx|+|dy| on the same projection as Euclidean.
func Manhattan(a, b orb.Point) float64 {
	dx, dy := project(a, b)

	return math.Abs(dx) + math.Abs(dy)
}

// WithinRadius reports whether b lies within radius meters of center.
// The boundary is inclusive.
func WithinRadius(center, b orb.Point, radius float64) bool {
	return Haversine(center, b) <= radius
}

// Closest returns the index of the candidate nearest to target by haversine
// distance, or -1 when candidates is empty. Ties keep the earliest candidate.
func Closest(target orb.Point, candidates []orb.Point) int {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		if d := Haversine(target, c); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
