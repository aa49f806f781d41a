// SPDX-License-Identifier: MIT

// Package route defines Route, the result every pathfinding engine returns,
// together with the shared assembly step that turns a predecessor map or an
// edge sequence into a Route.
//
// A Route holds the ordered path (start to end inclusive), the edges between
// consecutive path nodes, and totals accumulated edge by edge: Distance is
// the sum of edge distances and TravelTime the sum of per-edge travel times,
// so terrain effects on individual edges survive aggregation. Cost is a
// ranking scalar, Distance*0.001 + TravelTime*0.1, with no physical meaning.
//
// A Route with an empty path means "no route" and is never returned by the
// engines; they signal absence with (nil, false) instead.
package route
