// SPDX-License-Identifier: MIT

package route_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// line builds A(0,0) - B(0,0.001) - C(0,0.002) with 100m walkways and a
// one-way 50m road C→D. B is a landmark.
func line(t *testing.T) (*core.Graph, map[string]*core.Node) {
	t.Helper()
	n := map[string]*core.Node{
		"A": core.NewNode("A", "Alpha", 0, 0),
		"B": {ID: "B", Name: "Beta Library", Lat: 0, Lng: 0.001, Landmark: true},
		"C": core.NewNode("C", "Gamma", 0, 0.002),
		"D": core.NewNode("D", "Delta", 0, 0.003),
	}
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(core.NewEdge(n["A"], n["B"], 100)))
	require.NoError(t, g.AddEdge(core.NewEdge(n["B"], n["C"], 100)))
	require.NoError(t, g.AddEdge(core.NewEdge(n["C"], n["D"], 50, core.WithPathType("road")), core.OneWay()))

	return g, n
}

func edge(t *testing.T, g *core.Graph, from, to string) *core.Edge {
	t.Helper()
	e, ok := g.CheapestEdge(from, to)
	require.True(t, ok, "%s->%s", from, to)

	return e
}

func TestSingle(t *testing.T) {
	n := core.NewNode("X", "X Hall", 0, 0)
	r := route.Single(n)

	require.NoError(t, r.Validate())
	assert.Equal(t, 1, r.Len())
	assert.Empty(t, r.Edges)
	assert.Zero(t, r.Distance)
	assert.Zero(t, r.TravelTime)
	assert.Zero(t, r.Cost)
	assert.Same(t, n, r.Start())
	assert.Same(t, n, r.End())
	assert.Equal(t, []string{"Start at X Hall", "Arrive at X Hall"}, r.Directions())
}

func TestNewAccumulatesPerEdge(t *testing.T) {
	g, n := line(t)
	r := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B"), edge(t, g, "B", "C"), edge(t, g, "C", "D")})

	require.NoError(t, r.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D"}, r.NodeIDs())
	assert.Equal(t, 250.0, r.Distance)
	// 2 + 2 walking, 1 on the road.
	assert.Equal(t, 5, r.TravelTime)
	assert.InDelta(t, 250*0.001+5*0.1, r.Cost, 1e-12)
	require.Len(t, r.Landmarks, 1)
	assert.Equal(t, "B", r.Landmarks[0].ID)
	assert.True(t, r.Visits("C"))
	assert.False(t, r.Visits("Z"))
}

func TestValidate(t *testing.T) {
	g, n := line(t)
	assert.ErrorIs(t, (&route.Route{}).Validate(), route.ErrBrokenPath)

	broken := route.New(n["A"], []*core.Edge{edge(t, g, "B", "C")})
	assert.ErrorIs(t, broken.Validate(), route.ErrBrokenPath)

	short := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")})
	short.Edges = nil
	assert.ErrorIs(t, short.Validate(), route.ErrBrokenPath)
}

func TestFromPredecessors(t *testing.T) {
	g, n := line(t)
	prev := map[string]*core.Edge{
		"B": edge(t, g, "A", "B"),
		"C": edge(t, g, "B", "C"),
	}

	r, ok := route.FromPredecessors(n["A"], n["C"], prev)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, r.NodeIDs())
	require.NoError(t, r.Validate())

	self, ok := route.FromPredecessors(n["A"], n["A"], prev)
	require.True(t, ok)
	assert.Equal(t, 1, self.Len())

	_, ok = route.FromPredecessors(n["A"], n["D"], prev)
	assert.False(t, ok, "no predecessor for D")

	// A cycle in the map must not loop forever.
	loop := map[string]*core.Edge{"B": edge(t, g, "C", "B"), "C": edge(t, g, "B", "C")}
	_, ok = route.FromPredecessors(n["A"], n["C"], loop)
	assert.False(t, ok)
}

func TestSamePath(t *testing.T) {
	g, n := line(t)
	a := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")}).Named("one")
	b := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")}).Named("two")
	c := route.New(n["B"], []*core.Edge{edge(t, g, "B", "A")})

	assert.True(t, a.SamePath(b), "names do not matter")
	assert.False(t, a.SamePath(c))
	assert.False(t, a.SamePath(route.Single(n["A"])))
}

func TestDirectionsAndDescription(t *testing.T) {
	g, n := line(t)
	r := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B"), edge(t, g, "B", "C")})

	assert.Equal(t, []string{
		"Start at Alpha",
		"1. Go 100m to Beta Library",
		"2. Go 100m to Gamma",
		"Arrive at Gamma",
	}, r.Directions())
	assert.Equal(t, "Route: Alpha → Gamma\nDistance: 200.0 meters\nLandmarks: Beta Library\n", r.Description())
	assert.Equal(t, "Route{Unnamed, 200.0m, landmarks=1}", r.String())
	assert.Equal(t, "Invalid route", route.Single(n["A"]).Description())
	assert.Equal(t, []string{"No route available"}, (&route.Route{}).Directions())

	assert.True(t, r.PassesThrough("library"))
	assert.False(t, r.PassesThrough("gamma"), "Gamma is not a landmark")
}

func TestCombine(t *testing.T) {
	g, n := line(t)
	first := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")})
	second := route.New(n["B"], []*core.Edge{edge(t, g, "B", "C"), edge(t, g, "C", "D")})

	r, ok := route.Combine(first, second)
	require.True(t, ok)
	require.NoError(t, r.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D"}, r.NodeIDs())
	assert.Equal(t, first.Distance+second.Distance, r.Distance)
	assert.Equal(t, first.TravelTime+second.TravelTime, r.TravelTime)
	assert.InDelta(t, route.EstimateCost(r.Distance, r.TravelTime), r.Cost, 1e-12)
	assert.Len(t, r.Landmarks, 1, "joint landmark counted once")

	_, ok = route.Combine(second, first)
	assert.False(t, ok, "legs must meet")
	_, ok = route.Combine(nil, first)
	assert.False(t, ok)

	viaSelf, ok := route.Combine(route.Single(n["A"]), first)
	require.True(t, ok)
	assert.True(t, viaSelf.SamePath(first))
}

func TestReverseSymmetry(t *testing.T) {
	g, n := line(t)

	// Bidirectional hops mirror exactly.
	fwd := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B"), edge(t, g, "B", "C")})
	back, ok := fwd.Reverse(g)
	require.True(t, ok)
	assert.Equal(t, []string{"C", "B", "A"}, back.NodeIDs())
	assert.Equal(t, fwd.Distance, back.Distance)
	assert.Equal(t, fwd.TravelTime, back.TravelTime)

	// The one-way road has no reverse edge.
	oneWay := route.New(n["B"], []*core.Edge{edge(t, g, "B", "C"), edge(t, g, "C", "D")})
	_, ok = oneWay.Reverse(g)
	assert.False(t, ok)
}

func TestFeature(t *testing.T) {
	g, n := line(t)
	r := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")}).Named("walk")

	ls := r.LineString()
	require.Len(t, ls, 2)
	assert.Equal(t, 0.001, ls[1].Lon())

	raw, err := json.Marshal(r.Feature())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"LineString"`)
	assert.Contains(t, string(raw), `"name":"walk"`)

	raw, err = json.Marshal(route.Single(n["A"]).Feature())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"Point"`)

	fc := route.FeatureCollection([]*route.Route{r, r})
	assert.Len(t, fc.Features, 2)
}

func TestTiming(t *testing.T) {
	g, n := line(t)
	r := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B"), edge(t, g, "B", "C")})

	dep := time.Date(2024, 3, 1, 7, 58, 0, 0, time.UTC)
	assert.Equal(t, dep.Add(4*time.Minute), r.ArrivalAt(dep))
	assert.Equal(t, dep.Add(-4*time.Minute), r.DepartureFor(dep))
	assert.InDelta(t, 3.0, r.AverageSpeed(), 1e-9)
	assert.Zero(t, route.Single(n["A"]).AverageSpeed())

	for minutes, want := range map[int]string{
		0: "< 1 minute", 1: "1 minute", 25: "25 minutes",
		60: "1 hour", 120: "2 hours", 61: "1 hour 1 minute", 135: "2 hours 15 minutes",
	} {
		assert.Equal(t, want, route.FormatMinutes(minutes))
	}
}

func TestSummarize(t *testing.T) {
	g, n := line(t)
	short := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B")})
	long := route.New(n["C"], []*core.Edge{edge(t, g, "C", "D")})
	both := route.New(n["A"], []*core.Edge{edge(t, g, "A", "B"), edge(t, g, "B", "C")})

	assert.Equal(t, route.Summary{}, route.Summarize(nil))

	s := route.Summarize([]*route.Route{short, nil, long, both})
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 350.0, s.TotalDistance)
	assert.InDelta(t, 350.0/3, s.AverageDistance, 1e-9)
	assert.Equal(t, 50.0, s.MinDistance)
	assert.Equal(t, 200.0, s.MaxDistance)
	assert.Equal(t, 7, s.TotalTime)
	assert.Equal(t, 1, s.MinTime)
	assert.Equal(t, 4, s.MaxTime)
	assert.Equal(t, 2, s.WithLandmarks)
}
