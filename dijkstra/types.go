// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrSourceNotFound indicates that the source node does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// WeightFunc returns the cost of traversing e.
type WeightFunc func(e *core.Edge) float64

// ByWeight uses Edge.Weight. This is the default.
func ByWeight(e *core.Edge) float64 { return e.Weight }

// ByDistance uses Edge.Distance in meters.
func ByDistance(e *core.Edge) float64 { return e.Distance }

// ByTravelTime uses Edge.TravelTime in minutes.
func ByTravelTime(e *core.Edge) float64 { return float64(e.TravelTime) }

// Options configures a Dijkstra run.
//
// Target      – optional node ID; the run stops once it is popped.
// Weight      – edge cost function; defaults to ByWeight.
// MaxDistance – nodes whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Target      string
	Weight      WeightFunc
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget enables early exit when target is popped from the frontier.
func WithTarget(target string) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithWeightFunc selects the edge cost. A nil f restores ByWeight.
func WithWeightFunc(f WeightFunc) Option {
	return func(o *Options) {
		if f == nil {
			f = ByWeight
		}
		o.Weight = f
	}
}

// WithMaxDistance caps exploration at max.
// Negative values panic with ErrBadMaxDistance, as the option is a
// programming-time constant.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: no target, ByWeight, no distance cap.
func DefaultOptions() Options {
	return Options{
		Weight:      ByWeight,
		MaxDistance: math.Inf(1),
	}
}
