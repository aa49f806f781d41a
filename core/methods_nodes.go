// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/campusnav/geo"
)

// AddNode inserts n, overwriting any node with the same ID. The adjacency
// entry is created empty if absent and left untouched otherwise.
// Complexity: O(1)
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.putNodeLocked(n)

	return nil
}

// putNodeLocked stores n. Caller holds both write locks.
func (g *Graph) putNodeLocked(n *Node) {
	g.nodes[n.ID] = n
	if _, ok := g.adjacency[n.ID]; !ok {
		g.adjacency[n.ID] = nil
	}
}

// Node returns the node with the given ID.
// Complexity: O(1)
func (g *Graph) Node(id string) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is in the node table.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Node(id)

	return ok
}

// Nodes returns every node sorted by ID.
// Complexity: O(V log V)
func (g *Graph) Nodes() []*Node {
	return g.filterNodes(func(*Node) bool { return true })
}

// NodeIDs returns every node ID in ascending order.
func (g *Graph) NodeIDs() []string {
	nodes := g.Nodes()
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}

	return ids
}

// Landmarks returns the nodes flagged as landmarks, sorted by ID.
func (g *Graph) Landmarks() []*Node {
	return g.filterNodes(func(n *Node) bool { return n.Landmark })
}

// FindNodesByName returns nodes whose name contains term, ignoring case,
// sorted by ID. An empty term matches every node.
func (g *Graph) FindNodesByName(term string) []*Node {
	term = strings.ToLower(term)

	return g.filterNodes(func(n *Node) bool {
		return strings.Contains(strings.ToLower(n.Name), term)
	})
}

// NearestNode returns the node closest to p by great-circle distance.
// It returns false for an empty graph.
func (g *Graph) NearestNode(p orb.Point) (*Node, bool) {
	nodes := g.Nodes()
	pts := make([]orb.Point, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Point()
	}
	idx := geo.Closest(p, pts)
	if idx < 0 {
		return nil, false
	}

	return nodes[idx], true
}

func (g *Graph) filterNodes(keep func(*Node) bool) []*Node {
	g.muNode.RLock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	g.muNode.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// String returns "Graph{nodes=V, edges=E}".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{nodes=%d, edges=%d}", g.NodeCount(), g.EdgeCount())
}
