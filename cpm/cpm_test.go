// SPDX-License-Identifier: MIT

package cpm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/cpm"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/route"
)

// campusErrands is a small trip plan: two independent errand chains that
// meet at the destination.
func campusErrands() []cpm.Activity {
	return []cpm.Activity{
		{ID: "A1", Name: "Start from Main Gate", Duration: 0},
		{ID: "A2", Name: "Walk to Great Hall", Duration: 5, Predecessors: []string{"A1"}},
		{ID: "A3", Name: "Visit Library", Duration: 10, Predecessors: []string{"A2"}},
		{ID: "A4", Name: "Go to Computer Science", Duration: 8, Predecessors: []string{"A3"}},
		{ID: "A5", Name: "Stop at Bank", Duration: 3, Predecessors: []string{"A2"}},
		{ID: "A6", Name: "Visit Night Market", Duration: 7, Predecessors: []string{"A5"}},
		{ID: "A7", Name: "Reach Destination", Duration: 0, Predecessors: []string{"A4", "A6"}},
	}
}

func TestAnalyze_Errands(t *testing.T) {
	s, err := cpm.Analyze(campusErrands())
	require.NoError(t, err)

	assert.Equal(t, 23, s.Duration)
	assert.Equal(t, []string{"A1", "A2", "A3", "A4", "A7"}, s.CriticalPath)

	want := map[string][5]int{ // ES, EF, LS, LF, slack
		"A1": {0, 0, 0, 0, 0},
		"A2": {0, 5, 0, 5, 0},
		"A3": {5, 15, 5, 15, 0},
		"A4": {15, 23, 15, 23, 0},
		"A5": {5, 8, 13, 16, 8},
		"A6": {8, 15, 16, 23, 8},
		"A7": {23, 23, 23, 23, 0},
	}
	for id, w := range want {
		tm, ok := s.Timing(id)
		require.True(t, ok, id)
		got := [5]int{tm.EarliestStart, tm.EarliestFinish, tm.LatestStart, tm.LatestFinish, tm.Slack}
		assert.Equal(t, w, got, id)
	}

	_, ok := s.Timing("missing")
	assert.False(t, ok)
	assert.Equal(t, "A1", s.Timings[0].ID, "input order kept")
	assert.Contains(t, s.String(), "Critical path: A1 → A2 → A3 → A4 → A7")
	assert.Contains(t, s.String(), "Project duration: 23")
}

func TestAnalyze_Empty(t *testing.T) {
	s, err := cpm.Analyze(nil)
	require.NoError(t, err)
	assert.Zero(t, s.Duration)
	assert.Empty(t, s.CriticalPath)
}

func TestAnalyze_ParallelIndependent(t *testing.T) {
	s, err := cpm.Analyze([]cpm.Activity{
		{ID: "x", Duration: 4},
		{ID: "y", Duration: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, 9, s.Duration)
	assert.Equal(t, []string{"y"}, s.CriticalPath)
	x, _ := s.Timing("x")
	assert.Equal(t, 5, x.Slack)
	assert.Equal(t, 9, x.LatestFinish)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []cpm.Activity
		want error
	}{
		{"empty id", []cpm.Activity{{ID: ""}}, cpm.ErrEmptyID},
		{"negative", []cpm.Activity{{ID: "a", Duration: -1}}, cpm.ErrNegativeDuration},
		{"duplicate", []cpm.Activity{{ID: "a"}, {ID: "a"}}, cpm.ErrDuplicateActivity},
		{"unknown", []cpm.Activity{{ID: "a", Predecessors: []string{"ghost"}}}, cpm.ErrUnknownActivity},
		{"self loop", []cpm.Activity{{ID: "a", Predecessors: []string{"a"}}}, cpm.ErrCycle},
		{"cycle", []cpm.Activity{
			{ID: "a", Predecessors: []string{"c"}},
			{ID: "b", Predecessors: []string{"a"}},
			{ID: "c", Predecessors: []string{"b"}},
		}, cpm.ErrCycle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cpm.Analyze(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_CycleMessage(t *testing.T) {
	_, err := cpm.Analyze([]cpm.Activity{
		{ID: "a", Predecessors: []string{"b"}},
		{ID: "b", Predecessors: []string{"a"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a → b → a")
}

func TestFromRoute(t *testing.T) {
	r, ok := dijkstra.ShortestPath(loader.SampleGraph(), "main_gate", "comp_sci")
	require.True(t, ok)

	acts := cpm.FromRoute(r, 10, "library", "comp_sci")
	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"leg-1", "leg-2", "stop-1-library", "leg-3"}, ids)
	assert.Equal(t, "Walk to Great Hall", acts[0].Name)
	assert.Equal(t, []string{"leg-2"}, acts[2].Predecessors)

	s, err := cpm.Analyze(acts)
	require.NoError(t, err)
	assert.Equal(t, r.TravelTime+10, s.Duration)
	assert.Equal(t, ids, s.CriticalPath)

	assert.Nil(t, cpm.FromRoute(nil, 5))
}

func activityIDs(acts []cpm.Activity) []string {
	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}

	return ids
}

func TestFromRoute_SpurRevisitsStop(t *testing.T) {
	// A - B - C with the landmark L on a spur off B; 100m hops take 2 minutes.
	g := core.NewGraph()
	a, b, c, l := core.NewNode("A", "A", 0, 0), core.NewNode("B", "B", 0, 0),
		core.NewNode("C", "C", 0, 0), core.NewNode("L", "L", 0, 0)
	require.NoError(t, g.AddEdge(core.NewEdge(a, b, 100)))
	require.NoError(t, g.AddEdge(core.NewEdge(b, c, 100)))
	require.NoError(t, g.AddEdge(core.NewEdge(b, l, 100)))

	first, ok := dijkstra.ShortestPath(g, "A", "L")
	require.True(t, ok)
	second, ok := dijkstra.ShortestPath(g, "L", "C")
	require.True(t, ok)
	trip, ok := route.Combine(first, second)
	require.True(t, ok)
	require.Equal(t, []string{"A", "B", "L", "B", "C"}, trip.NodeIDs())

	acts := cpm.FromRoute(trip, 5, "B", "L")
	assert.Equal(t, []string{"leg-1", "stop-1-B", "leg-2", "stop-2-L", "leg-3", "leg-4"}, activityIDs(acts))
	s, err := cpm.Analyze(acts)
	require.NoError(t, err)
	assert.Equal(t, 4*2+2*5, s.Duration)

	// Passing B on the way back from the spur adds no dwell.
	acts = cpm.FromRoute(trip, 5, "L")
	assert.Equal(t, []string{"leg-1", "leg-2", "stop-1-L", "leg-3", "leg-4"}, activityIDs(acts))
	s, err = cpm.Analyze(acts)
	require.NoError(t, err)
	assert.Equal(t, 4*2+5, s.Duration)
}
