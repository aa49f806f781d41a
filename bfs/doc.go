// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a campus core.Graph,
// returning hop counts, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     directed edges only (From → To).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue and OnVisit (which may
//     abort with an error).
//   - WithFilterEdge skips individual edges, e.g. stairs for step-free routes.
//   - WithMaxDepth bounds the number of hops.
//
// Why
//
//   - Reachability checks before running weighted engines.
//   - "Within N stops" queries over the campus.
//
// Determinism
//
//	Neighbors are visited in adjacency insertion order, so the visit sequence
//	is reproducible for a given graph.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped hook errors from OnVisit and context errors on cancellation.
package bfs
