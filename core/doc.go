// SPDX-License-Identifier: MIT

// Package core provides the campus routing graph: Node, Edge and a
// thread-safe in-memory Graph, plus the optional Distance type the
// pathfinding engines use for "not reached yet".
//
// The Graph G = (V,E) is directed. Bidirectional connectivity is two Edge
// values, the forward edge and an explicitly constructed reverse with swapped
// endpoints and identical distance, weight, path type and speed override.
// AddEdge inserts both unless OneWay() is given.
//
// Storage:
//
//   - nodes:     node ID → *Node (re-adding an ID overwrites the node)
//   - adjacency: node ID → outgoing edges in insertion order
//   - edges:     every edge in insertion order, for global scans
//
// Parallel edges between the same ordered pair are stored as given. EdgeKey
// identifies an edge by its (from, to) pair and collapses parallel edges; it
// is meant for deduplication only and never used as a storage key.
//
// Travel time:
//
//	travelTime = ceil(distance_km / speed_kmh * 60)
//
// where speed is the edge's positive SpeedKmh override, else a SpeedTable
// lookup by path type (DefaultSpeeds: road 30 km/h, bike 12 km/h, walking and
// anything unknown 5 km/h).
//
// Concurrency:
//
// All Graph methods are safe for concurrent use: muNode guards the node table,
// muEdgeAdj guards adjacency and the edge list. Query results are fresh slices
// the caller may keep. Node and Edge values themselves are shared and must be
// treated as read-only once inserted. Mutating a Graph while a route is being
// computed on it is the caller's responsibility; use Clone for a private copy.
//
// Errors:
//
//	ErrNilNode     - node pointer (or edge endpoint) is nil.
//	ErrEmptyNodeID - node ID is the empty string.
//	ErrNilEdge     - edge pointer is nil.
//
// Queries never return errors: unknown IDs yield empty results or (nil, false).
package core
