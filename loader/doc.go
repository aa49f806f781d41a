// SPDX-License-Identifier: MIT

// Package loader builds campus graphs and landmark catalogs from the built-in
// sample campus, CSV files or a single YAML document.
//
// CSV formats (one header row, skipped):
//
//	nodes.csv      id,name,latitude,longitude,description,isLandmark
//	edges.csv      sourceId,destinationId,distanceMeters,pathType,speedKmh,bidirectional
//	landmarks.csv  id,name,category,description,locationId,importance
//
// Edge rows only need the two IDs. A blank distance is filled with the
// haversine distance between the endpoints, the path type defaults to
// "walkway" and bidirectional to true. A positive speed overrides the
// path-type speed and makes the edge weight its travel time in minutes.
//
// Rows that reference unknown nodes are skipped and logged; malformed numbers
// are errors carrying the file line.
//
// A Session owns the result of one load so that separate runs never share a
// global "data loaded" flag.
package loader
