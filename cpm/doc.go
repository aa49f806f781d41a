// SPDX-License-Identifier: MIT

// Package cpm implements the critical path method over a network of
// activities.
//
// What:
//
//	Each Activity has a whole-number duration and a list of predecessor IDs.
//	Analyze builds the activity-on-node network as a one-way core.Graph,
//	orders it with dfs.TopologicalSort and runs the forward pass (earliest
//	start/finish) and the backward pass (latest start/finish). Activities
//	with zero slack form the critical path.
//
// Why here:
//
//	A multi-stop campus trip is a small project: legs and stops that depend on
//	each other. FromRoute turns a route into such a chain.
//
// Complexity:
//
//   - Time:   O(V + E) for V activities and E precedence links
//   - Memory: O(V + E)
//
// Errors:
//
//   - ErrEmptyID, ErrDuplicateActivity, ErrNegativeDuration for bad input.
//   - ErrUnknownActivity when a predecessor is not declared.
//   - ErrCycle when the precedence links loop.
package cpm
