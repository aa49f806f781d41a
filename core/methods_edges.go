// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddEdge inserts e, auto-adding both endpoints to the node table.
// Unless OneWay() is given, the reverse edge (e.Reverse()) is inserted too.
//
// Endpoint nodes already present under the same ID are replaced by the
// edge's node values, matching AddNode's overwrite semantics.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge, opts ...AddOption) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.From == nil || e.To == nil {
		return fmt.Errorf("%w: edge endpoint", ErrNilNode)
	}
	if e.From.ID == "" || e.To.ID == "" {
		return fmt.Errorf("%w: edge %q->%q", ErrEmptyNodeID, e.From.ID, e.To.ID)
	}
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.putNodeLocked(e.From)
	g.putNodeLocked(e.To)
	g.appendEdgeLocked(e)
	if !cfg.oneWay {
		g.appendEdgeLocked(e.Reverse())
	}

	return nil
}

func (g *Graph) appendEdgeLocked(e *Edge) {
	g.adjacency[e.From.ID] = append(g.adjacency[e.From.ID], e)
	g.edges = append(g.edges, e)
}

// Edges returns every edge in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesFrom returns the outgoing edges of id in insertion order.
// An unknown id yields an empty slice.
// Complexity: O(deg(id))
func (g *Graph) EdgesFrom(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out
}

// CheapestEdge returns the lowest-weight edge from → to. Among parallel
// edges of equal weight the first inserted wins.
func (g *Graph) CheapestEdge(from, to string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var best *Edge
	for _, e := range g.adjacency[from] {
		if e.To.ID == to && (best == nil || e.Weight < best.Weight) {
			best = e
		}
	}

	return best, best != nil
}

// HasEdge reports whether at least one edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.CheapestEdge(from, to)

	return ok
}

// EdgeKeys returns the distinct (from, to) pairs present in the graph, in
// first-insertion order. Parallel edges collapse to one key.
func (g *Graph) EdgeKeys() []EdgeKey {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	seen := make(map[EdgeKey]struct{}, len(g.edges))
	out := make([]EdgeKey, 0, len(g.edges))
	for _, e := range g.edges {
		k := e.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}

// EdgeCount returns |E|, counting both directions of bidirectional edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
