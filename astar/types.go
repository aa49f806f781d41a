// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNodeNotFound is returned when the source or target ID is absent.
	ErrNodeNotFound = errors.New("astar: node not found")

	// ErrNegativeWeight is returned when an edge has a negative cost.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from a node to the target.
type Heuristic func(from, to *core.Node) float64

// Euclidean is the flat-earth straight-line distance in meters.
func Euclidean(from, to *core.Node) float64 { return geo.Euclidean(from.Point(), to.Point()) }

// Manhattan is the flat-earth |dx|+|dy| distance in meters.
func Manhattan(from, to *core.Node) float64 { return geo.Manhattan(from.Point(), to.Point()) }

// Zero never estimates; A* then behaves like Dijkstra.
func Zero(_, _ *core.Node) float64 { return 0 }

// WeightFunc returns the cost of traversing e.
type WeightFunc func(e *core.Edge) float64

// Options holds the search parameters.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Run is invoked.
type Options struct {
	// Heuristic estimates the remaining cost; defaults to Euclidean.
	Heuristic Heuristic

	// HeuristicWeight scales h. Values above 1 may yield non-optimal routes.
	HeuristicWeight float64

	// Weight is the edge cost; defaults to Edge.Weight.
	Weight WeightFunc

	err error
}

// Option configures A* via functional arguments.
type Option func(*Options)

// DefaultOptions returns Euclidean, weight 1 and Edge.Weight costs.
func DefaultOptions() Options {
	return Options{
		Heuristic:       Euclidean,
		HeuristicWeight: 1,
		Weight:          func(e *core.Edge) float64 { return e.Weight },
	}
}

// WithHeuristic selects the estimate. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithHeuristicWeight scales the heuristic by w.
//
//	w == 1: classic A*
//	w > 1:  greedier, possibly non-optimal
//	w < 0, NaN or Inf: invalid → ErrOptionViolation
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: heuristic weight must be a finite non-negative number (%v)", ErrOptionViolation, w)

			return
		}
		o.HeuristicWeight = w
	}
}

// WithWeightFunc selects the edge cost. nil is ignored.
func WithWeightFunc(f WeightFunc) Option {
	return func(o *Options) {
		if f != nil {
			o.Weight = f
		}
	}
}
