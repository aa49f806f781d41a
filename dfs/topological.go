// SPDX-License-Identifier: MIT

package dfs

import (
	"context"

	"github.com/katalvlaran/campusnav/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. nil has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort orders every node so that each edge u→v has u before v.
// Roots are tried in ID order and out-edges in adjacency order, so the
// result is deterministic. A two-way edge is a cycle here.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}
	ids := g.NodeIDs()
	t := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(ids)),
		order: make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		if t.state[id] == White {
			if err := t.visit(id); err != nil {
				return nil, err
			}
		}
	}

	return Reverse(t.order), nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray
	for _, e := range t.graph.EdgesFrom(id) {
		if err := t.visit(e.To.ID); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
