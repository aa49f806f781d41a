// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/floydwarshall"
)

var (
	// ErrUnknownNode indicates a source or sink ID missing from the graph.
	ErrUnknownNode = errors.New("transport: unknown node")

	// ErrUnreachable indicates a sink that a source cannot reach.
	ErrUnreachable = errors.New("transport: sink unreachable")
)

// CostMatrix returns the shortest-path cost from every source to every sink.
// Options select the edge cost, as for floydwarshall.Compute.
func CostMatrix(g *core.Graph, sources, sinks []string, opts ...floydwarshall.Option) ([][]float64, error) {
	for _, id := range append(append([]string(nil), sources...), sinks...) {
		if g == nil || !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	m, err := floydwarshall.Compute(g, opts...)
	if err != nil {
		return nil, err
	}

	cost := make([][]float64, len(sources))
	for i, from := range sources {
		cost[i] = make([]float64, len(sinks))
		for j, to := range sinks {
			v, ok := m.Distance(from, to).Value()
			if !ok {
				return nil, fmt.Errorf("%w: %q -> %q", ErrUnreachable, from, to)
			}
			cost[i][j] = v
		}
	}

	return cost, nil
}
