// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy: fresh Node and Edge values with identical
// fields, the same adjacency order and the same edge order. The clone shares
// nothing with g, so it may be mutated while g is being routed on.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for id := range g.adjacency {
		clone.adjacency[id] = nil
	}
	// Edge endpoints may be stale node values if a node was overwritten after
	// the edge was added; resolve through the node table first.
	resolve := func(n *Node) *Node {
		if c, ok := clone.nodes[n.ID]; ok {
			return c
		}
		cp := *n
		clone.nodes[n.ID] = &cp

		return &cp
	}
	for _, e := range g.edges {
		ne := *e
		ne.From = resolve(e.From)
		ne.To = resolve(e.To)
		clone.appendEdgeLocked(&ne)
	}

	return clone
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.nodes = make(map[string]*Node)
	g.adjacency = make(map[string][]*Edge)
	g.edges = nil
}
