// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape indicates that the cost matrix does not match supply × demand.
	ErrShape = errors.New("transport: cost matrix shape mismatch")

	// ErrNegative indicates a negative or non-finite quantity.
	ErrNegative = errors.New("transport: negative or non-finite quantity")

	// ErrUnbalanced indicates that total supply differs from total demand.
	ErrUnbalanced = errors.New("transport: supply and demand are unbalanced")
)

// eps absorbs float noise in remaining quantities and balance checks.
const eps = 1e-9

// Problem is a transportation problem. Cost[i][j] is the unit cost of
// shipping from supply point i to demand point j.
type Problem struct {
	Supply []float64
	Demand []float64
	Cost   [][]float64
}

// Validate checks shape, signs and balance.
func (p Problem) Validate() error {
	m, n := len(p.Supply), len(p.Demand)
	if m == 0 || n == 0 {
		return fmt.Errorf("%w: %d supplies, %d demands", ErrShape, m, n)
	}
	if len(p.Cost) != m {
		return fmt.Errorf("%w: %d cost rows for %d supplies", ErrShape, len(p.Cost), m)
	}
	for i, row := range p.Cost {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), n)
		}
		for j, c := range row {
			if !finite(c) {
				return fmt.Errorf("%w: cost[%d][%d]=%v", ErrNegative, i, j, c)
			}
		}
	}
	totalS, err := sum(p.Supply, "supply")
	if err != nil {
		return err
	}
	totalD, err := sum(p.Demand, "demand")
	if err != nil {
		return err
	}
	if math.Abs(totalS-totalD) > eps*math.Max(1, totalS) {
		return fmt.Errorf("%w: supply %g, demand %g", ErrUnbalanced, totalS, totalD)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func sum(xs []float64, what string) (float64, error) {
	var total float64
	for i, x := range xs {
		if x < 0 || !finite(x) {
			return 0, fmt.Errorf("%w: %s[%d]=%v", ErrNegative, what, i, x)
		}
		total += x
	}

	return total, nil
}

// Plan is a feasible allocation.
type Plan struct {
	// Allocation[i][j] is the quantity shipped from supply i to demand j.
	Allocation [][]float64

	// TotalCost is Σ Allocation[i][j] · Cost[i][j].
	TotalCost float64
}

// Shipment is one non-zero cell of a Plan.
type Shipment struct {
	From, To int
	Quantity float64
	Cost     float64
}

// Shipments lists the non-zero cells row by row.
func (pl *Plan) Shipments(p Problem) []Shipment {
	var out []Shipment
	for i, row := range pl.Allocation {
		for j, q := range row {
			if q > eps {
				out = append(out, Shipment{From: i, To: j, Quantity: q, Cost: q * p.Cost[i][j]})
			}
		}
	}

	return out
}

// state tracks remaining quantities while a heuristic runs.
type state struct {
	p      Problem
	supply []float64
	demand []float64
	alloc  [][]float64
}

func newState(p Problem) *state {
	s := &state{
		p:      p,
		supply: append([]float64(nil), p.Supply...),
		demand: append([]float64(nil), p.Demand...),
		alloc:  make([][]float64, len(p.Supply)),
	}
	for i := range s.alloc {
		s.alloc[i] = make([]float64, len(p.Demand))
	}

	return s
}

// ship moves as much as possible through cell (i, j).
func (s *state) ship(i, j int) {
	q := math.Min(s.supply[i], s.demand[j])
	s.alloc[i][j] += q
	s.supply[i] -= q
	s.demand[j] -= q
}

func (s *state) plan() *Plan {
	pl := &Plan{Allocation: s.alloc}
	for i, row := range s.alloc {
		for j, q := range row {
			pl.TotalCost += q * s.p.Cost[i][j]
		}
	}

	return pl
}

// NorthwestCorner builds a plan by filling cells from the top-left corner,
// moving down when a supply runs out and right when a demand is met.
func NorthwestCorner(p Problem) (*Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := newState(p)
	i, j := 0, 0
	for i < len(s.supply) && j < len(s.demand) {
		switch {
		case s.supply[i] <= eps:
			i++
		case s.demand[j] <= eps:
			j++
		default:
			s.ship(i, j)
		}
	}

	return s.plan(), nil
}
