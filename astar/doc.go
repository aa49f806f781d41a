// SPDX-License-Identifier: MIT

// Package astar implements A* point-to-point search over a campus core.Graph.
//
// Nodes are expanded in order of f = g + w·h, where g is the accumulated edge
// cost from the source, h a straight-line estimate to the target and w the
// heuristic weight (1 by default).
//
// Heuristics:
//
//   - Euclidean (default): flat-earth distance in meters, scaling longitude by
//     the cosine of the current node's latitude. Admissible when edge costs
//     are plain distances in meters.
//   - Manhattan: |dx|+|dy| on the same projection. Not admissible in general.
//   - Zero: h = 0, which reduces A* to Dijkstra.
//
// Closed nodes are never re-expanded. With a consistent heuristic and w = 1
// the returned route is optimal. A weight above 1 expands fewer nodes but may
// return a longer route; treat such results as approximations.
//
// Tie-break: equal f values pop in ascending node-ID order.
//
// Complexity: O((V + E) log V) time, O(V + E) space in the worst case.
package astar
