// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// RouteName labels routes produced by ShortestPath and AllShortestPaths.
const RouteName = "Dijkstra Shortest Path"

// ShortestPath returns the cheapest route from source to target, stopping as
// soon as target is popped. Unknown IDs and unreachable targets yield
// (nil, false); source == target yields a single-node route.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*route.Route, bool) {
	if g == nil || !g.HasNode(target) {
		return nil, false
	}
	res, err := Run(g, source, append(opts[:len(opts):len(opts)], WithTarget(target))...)
	if err != nil {
		return nil, false
	}
	r, ok := res.Route(target)
	if !ok {
		return nil, false
	}

	return r.Named(RouteName), true
}

// AllShortestPaths runs to completion from source and returns a route to
// every other reachable node, keyed by node ID. The source itself is not
// included. Errors yield an empty map.
func AllShortestPaths(g *core.Graph, source string, opts ...Option) map[string]*route.Route {
	out := make(map[string]*route.Route)
	res, err := Run(g, source, opts...)
	if err != nil {
		return out
	}
	for _, id := range res.Reached() {
		if id == source {
			continue
		}
		if r, ok := res.Route(id); ok {
			out[id] = r.Named(RouteName)
		}
	}

	return out
}
