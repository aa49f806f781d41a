// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// Route labels. Searches with a heuristic weight above 1 trade optimality
// for fewer expansions and are labelled DirectRouteName.
const (
	RouteName       = "A* Optimal Path"
	DirectRouteName = "A* Direct Route"
)

// Result is the outcome of one A* search.
type Result struct {
	Source, Target *core.Node

	// Expanded lists closed nodes in expansion order.
	Expanded []string

	// HeuristicWeight is the weight the search ran with.
	HeuristicWeight float64

	gScore map[string]core.Distance
	prev   map[string]*core.Edge
}

// Found reports whether the target was reached.
func (r *Result) Found() bool { return r.gScore[r.Target.ID].Reached() }

// Cost returns the accumulated cost to the target.
func (r *Result) Cost() core.Distance { return r.gScore[r.Target.ID] }

// Route reconstructs the route to the target.
func (r *Result) Route() (*route.Route, bool) {
	if !r.Found() {
		return nil, false
	}

	return route.FromPredecessors(r.Source, r.Target, r.prev)
}

// Run searches from source to target.
func Run(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	src, ok := g.Node(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	dst, ok := g.Node(target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}
	for _, e := range g.Edges() {
		if w := cfg.Weight(e); w < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%g", ErrNegativeWeight, e.Key(), w)
		}
	}

	s := &search{
		g:      g,
		opts:   cfg,
		target: dst,
		gScore: map[string]core.Distance{source: core.Finite(0)},
		prev:   make(map[string]*core.Edge),
		closed: make(map[string]bool),
	}
	heap.Push(&s.open, &pqItem{id: source, g: 0, f: s.estimate(src)})
	s.run()

	return &Result{
		Source:          src,
		Target:          dst,
		Expanded:        s.expanded,
		HeuristicWeight: cfg.HeuristicWeight,
		gScore:          s.gScore,
		prev:            s.prev,
	}, nil
}

type search struct {
	g        *core.Graph
	opts     Options
	target   *core.Node
	gScore   map[string]core.Distance
	prev     map[string]*core.Edge
	closed   map[string]bool
	expanded []string
	open     openSet
}

func (s *search) estimate(n *core.Node) float64 {
	return s.opts.HeuristicWeight * s.opts.Heuristic(n, s.target)
}

func (s *search) run() {
	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*pqItem)
		if s.closed[cur.id] {
			continue
		}
		s.closed[cur.id] = true
		s.expanded = append(s.expanded, cur.id)
		if cur.id == s.target.ID {
			return
		}
		for _, e := range s.g.EdgesFrom(cur.id) {
			v := e.To.ID
			if s.closed[v] {
				continue
			}
			tentative := cur.g + s.opts.Weight(e)
			if !core.Finite(tentative).Less(s.gScore[v]) {
				continue
			}
			s.gScore[v] = core.Finite(tentative)
			s.prev[v] = e
			heap.Push(&s.open, &pqItem{id: v, g: tentative, f: tentative + s.estimate(e.To)})
		}
	}
}

// ShortestPath returns the A* route from source to target, or (nil, false)
// for unknown IDs, invalid options and unreachable targets.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*route.Route, bool) {
	res, err := Run(g, source, target, opts...)
	if err != nil {
		return nil, false
	}
	r, ok := res.Route()
	if !ok {
		return nil, false
	}

	if res.HeuristicWeight > 1 {
		return r.Named(DirectRouteName), true
	}

	return r.Named(RouteName), true
}

type pqItem struct {
	id string
	g  float64
	f  float64
}

// openSet is a min-heap of *pqItem ordered by f, then id.
type openSet []*pqItem

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].id < pq[j].id
}

func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
