// SPDX-License-Identifier: MIT

// Package floydwarshall computes all-pairs shortest paths over a campus
// core.Graph.
//
// The graph is flattened into dense row-major n×n buffers indexed by node ID
// in ascending order:
//
//	dist[i*n+j]  best known cost i→j (+Inf when unreachable, 0 on the diagonal)
//	hop[i*n+j]   first edge on that path (nil when none)
//
// Parallel edges collapse to the cheapest one before the closure runs.
// Loop order is fixed (k → i → j) and relaxation is strict, so results are
// deterministic for a given graph.
//
// Negative edge weights are accepted. A negative diagonal entry after the
// closure marks a negative cycle; ShortestPath refuses to answer in that case.
//
// Complexity: O(V³) time, O(V²) space. Compute once per graph and reuse the
// Matrix for many queries.
package floydwarshall
