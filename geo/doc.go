// SPDX-License-Identifier: MIT

// Package geo provides the small amount of spherical and flat-earth math the
// campus router needs: great-circle distance, planar approximations used as
// A* heuristics, bearings, midpoints and distance formatting.
//
// Points are orb.Point values, which store longitude first: orb.Point{lng, lat}.
//
// Two families of distance are offered:
//
//   - Haversine: great-circle distance on a sphere of radius EarthRadius,
//     computed through s2.LatLng. Use it for edge lengths and proximity.
//   - Euclidean / Manhattan: a flat-earth projection that scales a degree of
//     latitude to MetersPerDegree and a degree of longitude to
//     MetersPerDegree*cos(lat of the first point). Cheap, and close enough
//     over a campus to act as an A* heuristic when edge weights are meters.
//
// All functions are pure and safe for concurrent use.
package geo
