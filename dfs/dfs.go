// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over the whole graph
// with WithFullTraversal. Out-edges are followed in adjacency order.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	ids := g.NodeIDs()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, len(ids)),
			Depth:   make(map[string]int, len(ids)),
			Parent:  make(map[string]string, len(ids)),
			Visited: make(map[string]bool, len(ids)),
		},
	}
	if !o.FullTraversal {
		return w.res, w.traverse(startID, 0)
	}
	for _, id := range ids {
		if w.res.Visited[id] {
			continue
		}
		if err := w.traverse(id, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit %q: %w", id, err)
		}
	}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range w.graph.EdgesFrom(id) {
			next := e.To.ID
			if w.res.Visited[next] {
				continue
			}
			w.res.Parent[next] = id
			if err := w.traverse(next, depth+1); err != nil {
				return err
			}
		}
	}
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
