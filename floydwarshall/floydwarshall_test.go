// SPDX-License-Identifier: MIT

package floydwarshall_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/floydwarshall"
	"github.com/katalvlaran/campusnav/loader"
)

func TestCompute_NilGraph(t *testing.T) {
	_, err := floydwarshall.Compute(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	_, ok := floydwarshall.ShortestPath(nil, "a", "b")
	assert.False(t, ok)
}

func TestCompute_EmptyGraph(t *testing.T) {
	m, err := floydwarshall.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, m.Size())
	assert.False(t, m.HasNegativeCycle())
	assert.False(t, m.Distance("a", "a").Reached())
}

func TestMatrix_SampleCampus(t *testing.T) {
	m, err := floydwarshall.Compute(loader.SampleGraph())
	require.NoError(t, err)

	assert.Equal(t, 8, m.Size())
	assert.Equal(t, core.Finite(650), m.Distance("main_gate", "comp_sci"))
	assert.Equal(t, core.Finite(950), m.Distance("main_gate", "sports"))
	assert.Equal(t, core.Finite(0), m.Distance("legon", "legon"))
	assert.False(t, m.Distance("main_gate", "nowhere").Reached())

	path, ok := m.Path("main_gate", "comp_sci")
	require.True(t, ok)
	assert.Equal(t, []string{"main_gate", "great_hall", "library", "comp_sci"}, path)

	r, ok := m.Route("main_gate", "comp_sci")
	require.True(t, ok)
	require.NoError(t, r.Validate())
	assert.Equal(t, floydwarshall.RouteName, r.Name)
	assert.Equal(t, 9, r.TravelTime)

	self, ok := m.Path("library", "library")
	require.True(t, ok)
	assert.Equal(t, []string{"library"}, self)
}

func TestMatrix_Unreachable(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("a", "A", 0, 0)
	b := core.NewNode("b", "B", 0, 0.001)
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 100), core.OneWay()))

	m, err := floydwarshall.Compute(g)
	require.NoError(t, err)
	assert.True(t, m.Distance("a", "b").Reached())
	assert.False(t, m.Distance("b", "a").Reached())
	_, ok := m.Route("b", "a")
	assert.False(t, ok)
}

func TestMatrix_ParallelEdgesCollapseToCheapest(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("a", "A", 0, 0)
	b := core.NewNode("b", "B", 0, 0.001)
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 300)))
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 120, core.WithPathType(core.PathFootpath))))

	r, ok := floydwarshall.ShortestPath(g, "a", "b")
	require.True(t, ok)
	assert.Equal(t, 120.0, r.Distance)
	assert.Equal(t, core.PathFootpath, r.Edges[0].PathType)
}

func TestMatrix_NegativeCycle(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("a", "A", 0, 0)
	b := core.NewNode("b", "B", 0, 0.001)
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 10, core.WithWeight(-5))))

	m, err := floydwarshall.Compute(g)
	require.NoError(t, err)
	assert.True(t, m.HasNegativeCycle())

	_, ok := floydwarshall.ShortestPath(g, "a", "b")
	assert.False(t, ok)
}

func TestMatrix_NegativeEdgeWithoutCycle(t *testing.T) {
	g := core.NewGraph()
	a := core.NewNode("a", "A", 0, 0)
	b := core.NewNode("b", "B", 0, 0.001)
	c := core.NewNode("c", "C", 0, 0.002)
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 10), core.OneWay()))
	require.NoError(t, g.AddEdge(core.NewEdge(b, c, 10, core.WithWeight(-3)), core.OneWay()))
	require.NoError(t, g.AddEdge(core.NewEdge(a, c, 10), core.OneWay()))

	m, err := floydwarshall.Compute(g)
	require.NoError(t, err)
	assert.False(t, m.HasNegativeCycle())
	assert.Equal(t, core.Finite(7), m.Distance("a", "c"))
}

func TestCompute_ByTravelTime(t *testing.T) {
	m, err := floydwarshall.Compute(loader.SampleGraph(),
		floydwarshall.WithWeightFunc(func(e *core.Edge) float64 { return float64(e.TravelTime) }))
	require.NoError(t, err)
	// 300m, 200m and 150m hops take 4, 3 and 2 minutes.
	assert.Equal(t, core.Finite(9), m.Distance("main_gate", "comp_sci"))
}

func randomGraph(rng *rand.Rand, n, m int) *core.Graph {
	g := core.NewGraph()
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nodes[i] = core.NewNode(fmt.Sprintf("N%d", i), "", 0, 0)
		_ = g.AddNode(nodes[i])
	}
	for i := 0; i < m; i++ {
		from, to := nodes[rng.Intn(n)], nodes[rng.Intn(n)]
		if from == to {
			continue
		}
		e := core.NewEdge(from, to, float64(1+rng.Intn(50)))
		if rng.Intn(2) == 0 {
			_ = g.AddEdge(e, core.OneWay())
		} else {
			_ = g.AddEdge(e)
		}
	}

	return g
}

func TestMatrix_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		g := randomGraph(rng, 12, 25)
		m, err := floydwarshall.Compute(g)
		require.NoError(t, err)
		for _, s := range g.NodeIDs() {
			res, err := dijkstra.Run(g, s)
			require.NoError(t, err)
			for _, d := range g.NodeIDs() {
				require.Equal(t, res.Distance(d), m.Distance(s, d), "trial %d %s->%s", trial, s, d)
				r, ok := m.Route(s, d)
				if !ok {
					continue
				}
				require.NoError(t, r.Validate())
				want, _ := res.Distance(d).Value()
				require.InDelta(t, want, r.Distance, 1e-9)
			}
		}
	}
}
