// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a campus core.Graph.
//
// The cost of an edge is given by a WeightFunc; by default it is Edge.Weight,
// which equals the edge distance unless the graph was built with time-based
// weights. ByTravelTime and ByDistance select the other common metrics.
//
// Algorithm:
//
//   - Distances start unreached (core.Distance zero value), the source at 0.
//   - A min-heap pops the closest open node; each node is closed exactly once.
//   - Relaxation only updates a neighbour when the new cost is strictly lower.
//   - With WithTarget, the run stops the moment the target is popped, not
//     merely reached.
//
// Tie-break: equal-cost heap entries pop in ascending node-ID order, so
// results are reproducible across runs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), lazy decrease-key keeps stale heap entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrEmptySource     if the source ID is empty.
//   - ErrSourceNotFound  if the source is not in the graph.
//   - ErrNegativeWeight  if any edge has a negative cost under the WeightFunc.
//
// ShortestPath and AllShortestPaths wrap Run for callers that only need
// routes; they report "no route" as (nil, false) or an empty map instead of
// an error.
package dijkstra
