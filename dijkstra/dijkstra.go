// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// Result holds the outcome of a single-source run.
type Result struct {
	// Source is the start node.
	Source *core.Node

	// Order lists node IDs in the order they were closed.
	Order []string

	dist   map[string]core.Distance
	prev   map[string]*core.Edge
	closed map[string]bool
}

// Distance returns the final cost to id. Only closed nodes are final; nodes
// still on the frontier after an early exit are unreached.
func (r *Result) Distance(id string) core.Distance {
	if !r.closed[id] {
		return core.Unreached()
	}

	return r.dist[id]
}

// Route reconstructs the path to target from the predecessor edges.
// It returns false when target was never closed.
func (r *Result) Route(target string) (*route.Route, bool) {
	if !r.closed[target] {
		return nil, false
	}
	if target == r.Source.ID {
		return route.Single(r.Source), true
	}
	e, ok := r.prev[target]
	if !ok {
		return nil, false
	}

	return route.FromPredecessors(r.Source, e.To, r.prev)
}

// Reached returns the IDs with a final distance, sorted.
func (r *Result) Reached() []string {
	out := make([]string, 0, len(r.closed))
	for id := range r.closed {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Run computes shortest costs from source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//  4. No edge may have a negative cost (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	src, ok := g.Node(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// Fail fast on negative costs; relaxation relies on closed nodes being final.
	for _, e := range g.Edges() {
		if w := cfg.Weight(e); w < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%g", ErrNegativeWeight, e.Key(), w)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]core.Distance, g.NodeCount()),
		prev:    make(map[string]*core.Edge, g.NodeCount()),
		closed:  make(map[string]bool, g.NodeCount()),
	}
	r.init(source)
	r.process()

	return &Result{Source: src, Order: r.order, dist: r.dist, prev: r.prev, closed: r.closed}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]core.Distance // unreached entries are simply absent
	prev    map[string]*core.Edge    // node ID → edge that reached it
	closed  map[string]bool
	order   []string
	pq      nodePQ
}

// init seeds the source at cost zero.
func (r *runner) init(source string) {
	r.dist[source] = core.Finite(0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest open node until the heap is empty, the target is
// popped, or the frontier exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.closed[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.closed[u] = true
		r.order = append(r.order, u)
		if u == r.options.Target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax improves neighbours of u whose cost through u is strictly lower.
func (r *runner) relax(u string, du float64) {
	for _, e := range r.g.EdgesFrom(u) {
		v := e.To.ID
		if r.closed[v] {
			continue
		}
		nd := du + r.options.Weight(e)
		if nd > r.options.MaxDistance {
			continue
		}
		if !core.Finite(nd).Less(r.dist[v]) {
			continue
		}
		r.dist[v] = core.Finite(nd)
		r.prev[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a node and its tentative cost.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
