// SPDX-License-Identifier: MIT

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusnav/astar"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/ranking"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/search"
)

func routeNames(routes []*route.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Name
	}

	return out
}

type PlannerSuite struct {
	suite.Suite
	g *core.Graph
	p *search.Planner
}

func (s *PlannerSuite) SetupTest() {
	s.g = loader.SampleGraph()
	p, err := search.New(s.g, search.WithCatalog(loader.SampleCatalog(s.g)))
	s.Require().NoError(err)
	s.p = p
}

func (s *PlannerSuite) TestBest() {
	for _, k := range engine.All() {
		r, ok := s.p.Best(k, "main_gate", "comp_sci")
		s.Require().True(ok, k.String())
		s.Equal([]string{"main_gate", "great_hall", "library", "comp_sci"}, r.NodeIDs(), k.String())
		s.InDelta(650, r.Distance, 1e-9)
		s.Equal(9, r.TravelTime)
	}

	r, ok := s.p.Best(engine.Kind(42), "main_gate", "comp_sci")
	s.Require().True(ok)
	s.Equal(dijkstra.RouteName, r.Name, "unknown engines fall back to dijkstra")

	_, ok = s.p.Best(engine.Dijkstra, "main_gate", "ghost")
	s.False(ok)
}

func (s *PlannerSuite) TestMultiple() {
	routes := s.p.Multiple("main_gate", "comp_sci", 10)
	s.Equal([]string{
		search.ShortestName,
		"Route via Night Market",
		"Route via Sports Complex",
		"Route via Commonwealth Hall",
	}, routeNames(routes))

	dists := make([]float64, len(routes))
	for i, r := range routes {
		dists[i] = r.Distance
	}
	s.Equal([]float64{650, 800, 1250, 1300}, dists)

	seen := make(map[string]bool)
	for _, r := range routes {
		key := ""
		for _, id := range r.NodeIDs() {
			key += id + "/"
		}
		s.False(seen[key], "duplicate path %s", key)
		seen[key] = true
	}
}

func (s *PlannerSuite) TestMultipleTruncatesAndGuards() {
	s.Len(s.p.Multiple("main_gate", "comp_sci", 3), 3)
	s.Len(s.p.Multiple("main_gate", "comp_sci", 1), 1)
	s.Empty(s.p.Multiple("main_gate", "comp_sci", 0))
	s.Empty(s.p.Multiple("main_gate", "comp_sci", -1))
	s.Empty(s.p.Multiple("ghost", "comp_sci", 5))
	s.Empty(s.p.Multiple("main_gate", "ghost", 5))
}

func (s *PlannerSuite) TestVia() {
	r, ok := s.p.Via("main_gate", "legon", "comp_sci")
	s.Require().True(ok)
	s.Equal("Combined Route", r.Name)
	s.Equal([]string{"main_gate", "great_hall", "commonwealth", "legon", "sports", "comp_sci"}, r.NodeIDs())
	s.InDelta(1300, r.Distance, 1e-9)
	s.Equal(18, r.TravelTime)
	s.InDelta(route.EstimateCost(1300, 18), r.Cost, 1e-9)

	_, ok = s.p.Via("main_gate", "ghost", "comp_sci")
	s.False(ok)
}

func (s *PlannerSuite) TestByLandmark() {
	routes := s.p.ByLandmark("main_gate", "comp_sci", "hall")
	s.Equal([]string{"Route via Great Hall", "Route via Commonwealth Hall"}, routeNames(routes),
		"legon hall repeats the commonwealth path and is dropped")

	s.Empty(s.p.ByLandmark("main_gate", "comp_sci", ""))
	s.Empty(s.p.ByLandmark("main_gate", "comp_sci", "observatory"))
	s.Empty(s.p.ByLandmark("ghost", "comp_sci", "hall"))
}

func (s *PlannerSuite) TestToDestinations() {
	got := s.p.ToDestinations("main_gate", []string{"comp_sci", "sports", "ghost", "main_gate"})
	s.Len(got, 3)
	s.InDelta(650, got["comp_sci"].Distance, 1e-9)
	s.InDelta(950, got["sports"].Distance, 1e-9)
	s.Equal(1, got["main_gate"].Len())
	s.Empty(s.p.ToDestinations("ghost", []string{"sports"}))
}

func (s *PlannerSuite) TestNearby() {
	ids := func(ns []*core.Node) []string {
		out := make([]string, len(ns))
		for i, n := range ns {
			out[i] = n.ID
		}

		return out
	}
	s.Equal([]string{"great_hall", "night_market"}, ids(s.p.Nearby("main_gate", 1)))
	s.Len(s.p.Nearby("main_gate", 2), 4)
	s.Nil(s.p.Nearby("main_gate", 0))
	s.Nil(s.p.Nearby("main_gate", -1))
	s.Nil(s.p.Nearby("ghost", 2))
}

func (s *PlannerSuite) TestSortAndAnalyze() {
	routes := s.p.Multiple("main_gate", "comp_sci", 10)
	byTime, err := s.p.Sort(routes, ranking.CriterionTime, ranking.FamilyQuick)
	s.Require().NoError(err)
	s.Equal(9, byTime[0].TravelTime)
	s.Equal(18, byTime[len(byTime)-1].TravelTime)

	_, err = s.p.Sort(routes, "scenic", ranking.FamilyMerge)
	s.ErrorIs(err, ranking.ErrUnknownCriterion)

	sum := s.p.Analyze(routes)
	s.Equal(4, sum.Count)
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

func TestNew(t *testing.T) {
	_, err := search.New(nil)
	assert.ErrorIs(t, err, search.ErrNilGraph)

	g := loader.SampleGraph()
	_, err = search.New(g, search.WithWeights(ranking.Weights{}))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	assert.ErrorIs(t, err, ranking.ErrBadWeights)

	_, err = search.New(g, search.WithHeuristicWeight(-2))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	p, err := search.New(g, search.WithCatalog(nil), search.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 8, p.Catalog().Len(), "catalog derived from landmark nodes")
	assert.Equal(t, ranking.DefaultWeights(), p.Weights())
	assert.Same(t, g, p.Graph())
}

func TestHeuristicWeightLabelsDirectRoutes(t *testing.T) {
	p, err := search.New(loader.SampleGraph(), search.WithHeuristicWeight(2))
	require.NoError(t, err)
	r, ok := p.Best(engine.AStar, "main_gate", "sports")
	require.True(t, ok)
	assert.Equal(t, astar.DirectRouteName, r.Name)
}

// detourGraph is a line A–B–C with a single landmark L off the direct path.
func detourGraph(t *testing.T) *core.Graph {
	t.Helper()
	a := core.NewNode("A", "A", 5.650, -0.187)
	b := core.NewNode("B", "B", 5.6505, -0.187)
	c := core.NewNode("C", "C", 5.651, -0.187)
	l := &core.Node{ID: "L", Name: "Lookout", Lat: 5.6505, Lng: -0.186, Landmark: true}
	g := core.NewGraph()
	for _, e := range []*core.Edge{
		core.NewEdge(a, b, 100),
		core.NewEdge(b, c, 100),
		core.NewEdge(a, l, 150),
		core.NewEdge(l, c, 150),
	} {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

func TestMultiple_DetourRespectsTriangleInequality(t *testing.T) {
	p, err := search.New(detourGraph(t))
	require.NoError(t, err)

	routes := p.Multiple("A", "C", 5)
	require.Len(t, routes, 2)
	direct, detour := routes[0], routes[1]
	assert.Equal(t, search.ShortestName, direct.Name)
	assert.Equal(t, "Route via Lookout", detour.Name)
	assert.GreaterOrEqual(t, detour.Distance, direct.Distance)
	require.Len(t, detour.Landmarks, 1)
	assert.Equal(t, "L", detour.Landmarks[0].ID)
}

func TestMultiple_OneWayUnreachable(t *testing.T) {
	a, b := core.NewNode("a", "A", 0, 0), core.NewNode("b", "B", 0, 0)
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 10), core.OneWay()))
	p, err := search.New(g)
	require.NoError(t, err)

	assert.Len(t, p.Multiple("a", "b", 3), 1)
	assert.Empty(t, p.Multiple("b", "a", 3))
}
