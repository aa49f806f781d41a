// SPDX-License-Identifier: MIT

package core

// Neighbors projects EdgesFrom(id) onto destination nodes, in edge order.
// A destination reachable by parallel edges appears once per edge.
func (g *Graph) Neighbors(id string) []*Node {
	edges := g.EdgesFrom(id)
	out := make([]*Node, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// HasPath reports whether dst is reachable from src by breadth-first search.
// Unknown IDs yield false. A node always reaches itself.
// Complexity: O(V + E)
func (g *Graph) HasPath(src, dst string) bool {
	if !g.HasNode(src) || !g.HasNode(dst) {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	visited := map[string]bool{src: true}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			return true
		}
		for _, e := range g.adjacency[cur] {
			if next := e.To.ID; !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}
