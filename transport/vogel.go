// SPDX-License-Identifier: MIT

package transport

import "math"

// Vogel builds a plan with Vogel's approximation method.
//
// The penalty of a row or column is the gap between its two cheapest open
// cells, or the cost of its only open cell. The line with the largest
// penalty is served first at its cheapest cell. Ties prefer rows over
// columns, then lower indices.
func Vogel(p Problem) (*Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := newState(p)
	for {
		rows, cols := s.open(s.supply), s.open(s.demand)
		if len(rows) == 0 || len(cols) == 0 {
			break
		}

		best, isRow, line := math.Inf(-1), false, -1
		for _, i := range rows {
			if pen := penalty(cols, func(j int) float64 { return p.Cost[i][j] }); pen > best {
				best, isRow, line = pen, true, i
			}
		}
		for _, j := range cols {
			if pen := penalty(rows, func(i int) float64 { return p.Cost[i][j] }); pen > best {
				best, isRow, line = pen, false, j
			}
		}

		if isRow {
			s.ship(line, cheapest(cols, func(j int) float64 { return p.Cost[line][j] }))
		} else {
			s.ship(cheapest(rows, func(i int) float64 { return p.Cost[i][line] }), line)
		}
	}

	return s.plan(), nil
}

// open returns the indices whose remaining quantity is positive.
func (s *state) open(remaining []float64) []int {
	idx := make([]int, 0, len(remaining))
	for i, q := range remaining {
		if q > eps {
			idx = append(idx, i)
		}
	}

	return idx
}

func penalty(idx []int, cost func(int) float64) float64 {
	first, second := math.Inf(1), math.Inf(1)
	for _, k := range idx {
		c := cost(k)
		switch {
		case c < first:
			first, second = c, first
		case c < second:
			second = c
		}
	}
	if math.IsInf(second, 1) {
		return first
	}

	return second - first
}

func cheapest(idx []int, cost func(int) float64) int {
	best := idx[0]
	for _, k := range idx[1:] {
		if cost(k) < cost(best) {
			best = k
		}
	}

	return best
}
