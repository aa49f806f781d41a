// SPDX-License-Identifier: MIT

package route

import "github.com/katalvlaran/campusnav/core"

// Combine concatenates two legs that meet at first.End() == second.Start().
// The joint node appears once. Totals are the sums of the legs' totals, not
// recomputed from the joined path. It returns false if the legs do not meet.
func Combine(first, second *Route) (*Route, bool) {
	if first == nil || second == nil || len(first.Path) == 0 || len(second.Path) == 0 {
		return nil, false
	}
	if first.End().ID != second.Start().ID {
		return nil, false
	}

	out := &Route{Name: "Combined Route"}
	for _, n := range first.Path {
		out.addNode(n)
	}
	for _, n := range second.Path[1:] {
		out.addNode(n)
	}
	out.Edges = make([]*core.Edge, 0, len(first.Edges)+len(second.Edges))
	out.Edges = append(out.Edges, first.Edges...)
	out.Edges = append(out.Edges, second.Edges...)
	out.Distance = first.Distance + second.Distance
	out.TravelTime = first.TravelTime + second.TravelTime
	out.updateCost()

	return out, true
}

// EdgeSource resolves the edge for a (from, to) hop; *core.Graph satisfies it.
type EdgeSource interface {
	CheapestEdge(from, to string) (*core.Edge, bool)
}

// Reverse rebuilds r walking from End to Start over the graph's reverse
// edges. It returns false if any hop has no reverse edge, as on one-way paths.
// Totals come from the reverse edges, so they equal r's totals only when
// every reverse edge mirrors its forward edge.
func (r *Route) Reverse(g EdgeSource) (*Route, bool) {
	if len(r.Path) == 0 {
		return nil, false
	}
	edges := make([]*core.Edge, 0, len(r.Edges))
	for i := len(r.Path) - 1; i > 0; i-- {
		e, ok := g.CheapestEdge(r.Path[i].ID, r.Path[i-1].ID)
		if !ok {
			return nil, false
		}
		edges = append(edges, e)
	}

	return New(r.End(), edges).Named(r.Name), true
}
