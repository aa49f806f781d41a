// SPDX-License-Identifier: MIT

package route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LineString returns the path as an orb.LineString (longitude, latitude).
func (r *Route) LineString() orb.LineString {
	ls := make(orb.LineString, len(r.Path))
	for i, n := range r.Path {
		ls[i] = n.Point()
	}

	return ls
}

// Feature wraps the path in a GeoJSON feature. A single-node route becomes a
// Point feature.
func (r *Route) Feature() *geojson.Feature {
	var f *geojson.Feature
	if len(r.Path) == 1 {
		f = geojson.NewFeature(r.Path[0].Point())
	} else {
		f = geojson.NewFeature(r.LineString())
	}

	landmarks := make([]string, len(r.Landmarks))
	for i, n := range r.Landmarks {
		landmarks[i] = n.ID
	}
	f.Properties["name"] = r.Name
	f.Properties["distance_m"] = r.Distance
	f.Properties["travel_time_min"] = r.TravelTime
	f.Properties["cost"] = r.Cost
	f.Properties["nodes"] = r.NodeIDs()
	f.Properties["landmarks"] = landmarks

	return f
}

// FeatureCollection bundles routes for a single GeoJSON document.
func FeatureCollection(routes []*Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range routes {
		fc.Append(r.Feature())
	}

	return fc
}
