// SPDX-License-Identifier: MIT

package ranking

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/campusnav/route"
)

// Compare returns a negative number when a sorts before b, zero when they
// are equivalent and a positive number otherwise.
type Compare[T any] func(a, b T) int

// RouteCompare is the Compare specialisation used for routes.
type RouteCompare = Compare[*route.Route]

// Key builds an ascending Compare from a key extractor.
func Key[T any, K constraints.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}
}

// Reverse flips cmp.
func Reverse[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Then chains comparisons: later ones only break ties of earlier ones.
func Then[T any](cmps ...Compare[T]) Compare[T] {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// Built-in route comparisons.
var (
	ByDistance   = Key(func(r *route.Route) float64 { return r.Distance })
	ByTravelTime = Key(func(r *route.Route) int { return r.TravelTime })
	ByCost       = Key(func(r *route.Route) float64 { return r.Cost })

	// ByLandmarks puts routes with more landmarks first.
	ByLandmarks = Reverse(Key(func(r *route.Route) int { return len(r.Landmarks) }))

	// ByDistanceThenTime is the compound order used when an unstable sort
	// must still honour the secondary key.
	ByDistanceThenTime = Then(ByDistance, ByTravelTime)
)
