// SPDX-License-Identifier: MIT

package search

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/ranking"
	"github.com/katalvlaran/campusnav/route"
)

// Best returns the route found by one engine.
func (p *Planner) Best(kind engine.Kind, src, dst string) (*route.Route, bool) {
	r, ok := p.finder(kind).FindPath(p.graph, src, dst)
	p.logger.Debug("best route",
		slog.String("engine", kind.String()),
		slog.String("source", src), slog.String("target", dst), slog.Bool("found", ok))

	return r, ok
}

// Multiple returns up to max distinct routes from src to dst ordered by
// distance, then travel time. max <= 0 returns nil.
func (p *Planner) Multiple(src, dst string, max int) []*route.Route {
	if max <= 0 {
		return nil
	}
	if !bfs.Reachable(p.graph, src)[dst] {
		p.logger.Debug("target unreachable", slog.String("source", src), slog.String("target", dst))

		return nil
	}

	var set routeSet
	for _, c := range []struct {
		kind engine.Kind
		name string
	}{
		{engine.Dijkstra, ShortestName},
		{engine.AStar, OptimalName},
		{engine.FloydWarshall, AlternativeName},
	} {
		if r, ok := p.finder(c.kind).FindPath(p.graph, src, dst); ok {
			set.add(r.Named(c.name))
		}
	}

	var stops []stop
	for _, n := range p.graph.Landmarks() {
		stops = append(stops, stop{node: n, name: n.Name})
	}
	for _, r := range p.detours(src, dst, stops) {
		set.add(r)
	}

	out := ranking.MultiCriteria(set.routes)
	if len(out) > max {
		out = out[:max]
	}
	p.logger.Debug("multiple routes",
		slog.String("source", src), slog.String("target", dst),
		slog.Int("candidates", len(set.routes)), slog.Int("returned", len(out)))

	return out
}

// Via returns the route src → via → dst built from two Dijkstra legs.
func (p *Planner) Via(src, via, dst string) (*route.Route, bool) {
	first, ok := dijkstra.ShortestPath(p.graph, src, via)
	if !ok {
		return nil, false
	}
	second, ok := dijkstra.ShortestPath(p.graph, via, dst)
	if !ok {
		return nil, false
	}

	return route.Combine(first, second)
}

// ByLandmark returns detours through every catalog landmark matching
// keyword, ranked by preference score. A blank keyword matches nothing.
func (p *Planner) ByLandmark(src, dst, keyword string) []*route.Route {
	matches := p.catalog.Search(keyword)
	stops := make([]stop, 0, len(matches))
	for _, l := range matches {
		stops = append(stops, stop{node: l.Node, name: l.Name})
	}

	var set routeSet
	for _, r := range p.detours(src, dst, stops) {
		set.add(r)
	}
	p.logger.Debug("landmark routes",
		slog.String("keyword", keyword), slog.Int("landmarks", len(matches)), slog.Int("routes", len(set.routes)))

	return ranking.Preference(set.routes, p.weights)
}

// ToDestinations returns the shortest route from src to every reachable ID
// in dsts, from a single Dijkstra run. src itself maps to a one-node route.
func (p *Planner) ToDestinations(src string, dsts []string) map[string]*route.Route {
	out := make(map[string]*route.Route, len(dsts))
	res, err := dijkstra.Run(p.graph, src)
	if err != nil {
		p.logger.Debug("destinations", slog.String("source", src), slog.Any("error", err))

		return out
	}
	for _, id := range dsts {
		if r, ok := res.Route(id); ok {
			out[id] = r.Named(dijkstra.RouteName)
		}
	}

	return out
}

// Nearby lists the nodes within hops edges of src in breadth-first order,
// src excluded. Unknown IDs and hops < 1 yield nil.
func (p *Planner) Nearby(src string, hops int) []*core.Node {
	if hops < 1 {
		return nil
	}
	res, err := bfs.BFS(p.graph, src, bfs.WithMaxDepth(hops))
	if err != nil {
		return nil
	}
	out := make([]*core.Node, 0, len(res.Order))
	for _, id := range res.Order[1:] {
		if n, ok := p.graph.Node(id); ok {
			out = append(out, n)
		}
	}

	return out
}

// Sort orders routes; CriterionPreference uses the planner's weights.
func (p *Planner) Sort(routes []*route.Route, c ranking.Criterion, f ranking.Family) ([]*route.Route, error) {
	return ranking.SortWeighted(routes, c, f, p.weights)
}

// Analyze summarizes routes.
func (p *Planner) Analyze(routes []*route.Route) route.Summary {
	return route.Summarize(routes)
}

type stop struct {
	node *core.Node
	name string
}

// detours builds src → stop → dst for each stop, in order. The first legs
// share one Dijkstra run from src.
func (p *Planner) detours(src, dst string, stops []stop) []*route.Route {
	if len(stops) == 0 {
		return nil
	}
	from, err := dijkstra.Run(p.graph, src)
	if err != nil {
		return nil
	}
	out := make([]*route.Route, 0, len(stops))
	for _, s := range stops {
		first, ok := from.Route(s.node.ID)
		if !ok {
			continue
		}
		second, ok := dijkstra.ShortestPath(p.graph, s.node.ID, dst)
		if !ok {
			continue
		}
		if r, ok := route.Combine(first, second); ok {
			out = append(out, r.Named(viaPrefix+s.name))
		}
	}

	return out
}

// routeSet keeps routes in insertion order, one per node-ID sequence.
type routeSet struct {
	seen   map[string]bool
	routes []*route.Route
}

func (s *routeSet) add(r *route.Route) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := strings.Join(r.NodeIDs(), "\x00")
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.routes = append(s.routes, r)

	return true
}
