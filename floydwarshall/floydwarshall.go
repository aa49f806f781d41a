// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"errors"
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// RouteName labels routes produced by ShortestPath and Matrix.Route.
const RouteName = "Floyd-Warshall Shortest Path"

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// WeightFunc returns the cost of traversing e.
type WeightFunc func(e *core.Edge) float64

// Options configures Compute.
type Options struct {
	Weight WeightFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses Edge.Weight as the cost.
func DefaultOptions() Options {
	return Options{Weight: func(e *core.Edge) float64 { return e.Weight }}
}

// WithWeightFunc selects the edge cost. nil is ignored.
func WithWeightFunc(f WeightFunc) Option {
	return func(o *Options) {
		if f != nil {
			o.Weight = f
		}
	}
}

// Matrix holds the all-pairs closure of one graph snapshot.
type Matrix struct {
	ids   []string
	nodes []*core.Node
	index map[string]int
	dist  []float64
	hop   []*core.Edge
}

// Compute builds and closes the distance matrix of g.
func Compute(g *core.Graph, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := newMatrix(g.Nodes())
	m.seed(g.Edges(), cfg.Weight)
	m.close()

	return m, nil
}

func newMatrix(nodes []*core.Node) *Matrix {
	n := len(nodes)
	m := &Matrix{
		ids:   make([]string, n),
		nodes: nodes,
		index: make(map[string]int, n),
		dist:  make([]float64, n*n),
		hop:   make([]*core.Edge, n*n),
	}
	inf := math.Inf(1)
	for i, node := range nodes {
		m.ids[i] = node.ID
		m.index[node.ID] = i
		for j := 0; j < n; j++ {
			if i != j {
				m.dist[i*n+j] = inf
			}
		}
	}

	return m
}

// seed writes the cheapest direct edge of every ordered pair.
// Self-loops only matter when they are negative.
func (m *Matrix) seed(edges []*core.Edge, weight WeightFunc) {
	n := len(m.ids)
	for _, e := range edges {
		i, j := m.index[e.From.ID], m.index[e.To.ID]
		w := weight(e)
		if w < m.dist[i*n+j] {
			m.dist[i*n+j] = w
			m.hop[i*n+j] = e
		}
	}
}

// close runs the k → i → j relaxation in place.
func (m *Matrix) close() {
	n := len(m.ids)
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	data := m.dist
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					m.hop[baseI+j] = m.hop[baseI+k]
				}
			}
		}
	}
}

// Size returns the number of nodes.
func (m *Matrix) Size() int { return len(m.ids) }

// NodeIDs returns the matrix order (ascending node ID).
func (m *Matrix) NodeIDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// Distance returns the shortest cost from → to, Unreached for unknown IDs or
// unreachable pairs.
func (m *Matrix) Distance(from, to string) core.Distance {
	i, ok := m.index[from]
	if !ok {
		return core.Unreached()
	}
	j, ok := m.index[to]
	if !ok {
		return core.Unreached()
	}
	d := m.dist[i*len(m.ids)+j]
	if math.IsInf(d, 1) {
		return core.Unreached()
	}

	return core.Finite(d)
}

// HasNegativeCycle reports whether any node can reach itself at negative cost.
func (m *Matrix) HasNegativeCycle() bool {
	n := len(m.ids)
	for i := 0; i < n; i++ {
		if m.dist[i*n+i] < 0 {
			return true
		}
	}

	return false
}

// edges follows first hops from → to. It gives up after n hops, which only
// happens when a negative cycle corrupts the hop table.
func (m *Matrix) edges(from, to string) ([]*core.Edge, bool) {
	if !m.Distance(from, to).Reached() {
		return nil, false
	}
	n := len(m.ids)
	j := m.index[to]
	var out []*core.Edge
	for cur := m.index[from]; cur != j; {
		if len(out) > n {
			return nil, false
		}
		e := m.hop[cur*n+j]
		if e == nil {
			return nil, false
		}
		out = append(out, e)
		cur = m.index[e.To.ID]
	}

	return out, true
}

// Path returns the node IDs along the shortest path from → to.
func (m *Matrix) Path(from, to string) ([]string, bool) {
	edges, ok := m.edges(from, to)
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(edges)+1)
	ids = append(ids, from)
	for _, e := range edges {
		ids = append(ids, e.To.ID)
	}

	return ids, true
}

// Route assembles the shortest path from → to as a named route.
func (m *Matrix) Route(from, to string) (*route.Route, bool) {
	edges, ok := m.edges(from, to)
	if !ok {
		return nil, false
	}

	return route.New(m.nodes[m.index[from]], edges).Named(RouteName), true
}

// ShortestPath computes the closure of g and extracts one route. Repeated
// queries should call Compute once and use Matrix.Route instead.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*route.Route, bool) {
	m, err := Compute(g, opts...)
	if err != nil || m.HasNegativeCycle() {
		return nil, false
	}

	return m.Route(source, target)
}
