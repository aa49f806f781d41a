// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/campusnav/core"

// FindCycle returns one directed cycle of g as a closed node sequence
// (first == last), rotated so it starts at its smallest ID. Roots are tried
// in ID order, so the reported cycle is deterministic. A nil graph is
// treated as acyclic.
func FindCycle(g *core.Graph) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	state := make(map[string]int)
	var path []string
	var found []string

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = Gray
		path = append(path, id)
		for _, e := range g.EdgesFrom(id) {
			next := e.To.ID
			switch state[next] {
			case Gray:
				found = append([]string(nil), path[IndexOf(path, next):]...)

				return true
			case White:
				if visit(next) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return false
	}

	for _, id := range g.NodeIDs() {
		if state[id] == White && visit(id) {
			c := MinRotation(found)

			return append(c, c[0]), true
		}
	}

	return nil, false
}
