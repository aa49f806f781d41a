// SPDX-License-Identifier: MIT

// Package transport finds initial feasible plans for balanced transportation
// problems: how much to ship from each supply point to each demand point so
// that every supply is used and every demand met.
//
// Two heuristics are provided:
//
//   - NorthwestCorner fills cells from the top-left, ignoring cost.
//   - Vogel picks, at each step, the row or column whose two cheapest
//     remaining cells differ most, and fills its cheapest cell.
//
// CostMatrix derives a cost matrix from shortest campus distances, so a
// problem like "move chairs from three halls to four lecture rooms" can be
// posed directly on a core.Graph.
//
// Complexity:
//
//   - NorthwestCorner: O(m + n)
//   - Vogel:           O((m + n)² · max(m, n))
//   - CostMatrix:      O(V³) (one Floyd-Warshall run)
package transport
