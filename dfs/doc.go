// SPDX-License-Identifier: MIT

// Package dfs provides depth-first traversal, topological sorting and cycle
// finding over a directed core.Graph.
//
// The campus graph stores a two-way walkway as two directed edges, so it is
// cyclic almost everywhere; TopologicalSort and FindCycle are meant for
// dependency graphs such as activity networks.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and state maps
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing.
//   - ErrCycleDetected        from TopologicalSort on a cyclic graph.
//   - context errors and wrapped hook errors.
package dfs
