// SPDX-License-Identifier: MIT

// Package search answers route questions over one campus graph by combining
// the pathfinding engines with landmark detours and ranking.
//
// A Planner is built once per graph:
//
//	p, err := search.New(g, search.WithCatalog(catalog))
//	best, ok := p.Best(engine.AStar, "main_gate", "library")
//	alts := p.Multiple("main_gate", "library", 5)
//
// Multiple runs Dijkstra, A* and Floyd-Warshall, keeps each distinct path
// once, adds a detour through every landmark node, ranks the set
// (distance, then travel time) and truncates it. Two routes are the same
// iff they visit the identical ordered sequence of node IDs; cost plays no
// part. A detour src → landmark → dst is two Dijkstra legs joined with
// route.Combine, so its totals are the sums of the legs.
//
// ByLandmark restricts the detours to catalog landmarks whose name,
// category or description contains a keyword and ranks them by the
// planner's preference weights.
//
// Queries never fail: unknown IDs and unreachable targets yield no routes.
// A Planner holds no mutable state and is safe for concurrent use as long
// as its graph is not modified.
package search
