// SPDX-License-Identifier: MIT

package transport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/transport"
)

// areas is a four-zone redistribution problem where each zone is cheapest
// to serve from itself.
func areas() transport.Problem {
	return transport.Problem{
		Supply: []float64{100, 150, 200, 120},
		Demand: []float64{180, 160, 140, 90},
		Cost: [][]float64{
			{2, 4, 3, 5},
			{4, 2, 5, 3},
			{3, 5, 2, 4},
			{5, 3, 4, 2},
		},
	}
}

// textbook is the classic 3×4 instance with known heuristic costs.
func textbook() transport.Problem {
	return transport.Problem{
		Supply: []float64{7, 9, 18},
		Demand: []float64{5, 8, 7, 14},
		Cost: [][]float64{
			{19, 30, 50, 10},
			{70, 30, 40, 60},
			{40, 8, 70, 20},
		},
	}
}

func assertFeasible(t *testing.T, p transport.Problem, pl *transport.Plan) {
	t.Helper()
	for i, row := range pl.Allocation {
		var s float64
		for _, q := range row {
			assert.GreaterOrEqual(t, q, 0.0)
			s += q
		}
		assert.InDelta(t, p.Supply[i], s, 1e-9, "supply %d", i)
	}
	for j := range p.Demand {
		var d float64
		for i := range pl.Allocation {
			d += pl.Allocation[i][j]
		}
		assert.InDelta(t, p.Demand[j], d, 1e-9, "demand %d", j)
	}
}

func TestNorthwestCorner(t *testing.T) {
	p := areas()
	pl, err := transport.NorthwestCorner(p)
	require.NoError(t, err)
	assertFeasible(t, p, pl)
	assert.Equal(t, [][]float64{
		{100, 0, 0, 0},
		{80, 70, 0, 0},
		{0, 90, 110, 0},
		{0, 0, 30, 90},
	}, pl.Allocation)
	assert.InDelta(t, 1630, pl.TotalCost, 1e-9)

	p = textbook()
	pl, err = transport.NorthwestCorner(p)
	require.NoError(t, err)
	assertFeasible(t, p, pl)
	assert.InDelta(t, 1015, pl.TotalCost, 1e-9)
}

func TestVogel(t *testing.T) {
	p := areas()
	pl, err := transport.Vogel(p)
	require.NoError(t, err)
	assertFeasible(t, p, pl)
	assert.Equal(t, [][]float64{
		{100, 0, 0, 0},
		{0, 150, 0, 0},
		{60, 0, 140, 0},
		{20, 10, 0, 90},
	}, pl.Allocation)
	assert.InDelta(t, 1270, pl.TotalCost, 1e-9)

	p = textbook()
	pl, err = transport.Vogel(p)
	require.NoError(t, err)
	assertFeasible(t, p, pl)
	assert.InDelta(t, 779, pl.TotalCost, 1e-9)
}

func TestVogelNeverWorseHere(t *testing.T) {
	for _, p := range []transport.Problem{areas(), textbook()} {
		nw, err := transport.NorthwestCorner(p)
		require.NoError(t, err)
		v, err := transport.Vogel(p)
		require.NoError(t, err)
		assert.LessOrEqual(t, v.TotalCost, nw.TotalCost)
	}
}

func TestShipments(t *testing.T) {
	p := textbook()
	pl, err := transport.Vogel(p)
	require.NoError(t, err)
	sh := pl.Shipments(p)
	require.Len(t, sh, 6)
	assert.Equal(t, transport.Shipment{From: 0, To: 0, Quantity: 5, Cost: 95}, sh[0])

	var total float64
	for _, s := range sh {
		total += s.Cost
	}
	assert.InDelta(t, pl.TotalCost, total, 1e-9)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    transport.Problem
		want error
	}{
		{"empty", transport.Problem{}, transport.ErrShape},
		{"rows", transport.Problem{Supply: []float64{1}, Demand: []float64{1}}, transport.ErrShape},
		{"cols", transport.Problem{
			Supply: []float64{1}, Demand: []float64{1},
			Cost: [][]float64{{1, 2}},
		}, transport.ErrShape},
		{"negative supply", transport.Problem{
			Supply: []float64{-1}, Demand: []float64{-1},
			Cost: [][]float64{{1}},
		}, transport.ErrNegative},
		{"nan cost", transport.Problem{
			Supply: []float64{1}, Demand: []float64{1},
			Cost: [][]float64{{math.NaN()}},
		}, transport.ErrNegative},
		{"unbalanced", transport.Problem{
			Supply: []float64{2}, Demand: []float64{1},
			Cost: [][]float64{{1}},
		}, transport.ErrUnbalanced},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), tc.want)
			_, err := transport.Vogel(tc.p)
			assert.ErrorIs(t, err, tc.want)
			_, err = transport.NorthwestCorner(tc.p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCostMatrix(t *testing.T) {
	g := loader.SampleGraph()
	cost, err := transport.CostMatrix(g,
		[]string{"main_gate", "legon"},
		[]string{"comp_sci", "sports"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{650, 950}, {500, 200}}, cost)

	_, err = transport.CostMatrix(g, []string{"ghost"}, []string{"sports"})
	assert.ErrorIs(t, err, transport.ErrUnknownNode)

	a, b := core.NewNode("a", "A", 0, 0), core.NewNode("b", "B", 0, 0)
	island := core.NewGraph()
	require.NoError(t, island.AddNode(a))
	require.NoError(t, island.AddNode(b))
	_, err = transport.CostMatrix(island, []string{"a"}, []string{"b"})
	assert.ErrorIs(t, err, transport.ErrUnreachable)
}
