// SPDX-License-Identifier: MIT

package ranking

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/campusnav/route"
)

// ErrBadWeights is returned by Weights.Validate.
var ErrBadWeights = errors.New("ranking: invalid preference weights")

// Weights tune the preference score.
type Weights struct {
	Distance  float64 `koanf:"distance"`
	Time      float64 `koanf:"time"`
	Landmarks float64 `koanf:"landmarks"`
}

// DefaultWeights favours distance slightly over time and landmarks.
func DefaultWeights() Weights {
	return Weights{Distance: 0.4, Time: 0.3, Landmarks: 0.3}
}

// Validate rejects negative or non-finite weights and the all-zero set.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{"distance": w.Distance, "time": w.Time, "landmarks": w.Landmarks} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrBadWeights, name, v)
		}
	}
	if w.Distance+w.Time+w.Landmarks == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrBadWeights)
	}

	return nil
}

// PreferenceScore combines kilometres, hours and an inverse landmark count.
// Lower is better.
//
//	score = km·w.Distance + hours·w.Time + 1/(1+landmarks)·w.Landmarks
func PreferenceScore(r *route.Route, w Weights) float64 {
	km := r.Distance / 1000
	hours := float64(r.TravelTime) / 60
	inv := 1 / (1 + float64(len(r.Landmarks)))

	return km*w.Distance + hours*w.Time + inv*w.Landmarks
}

// ByPreference orders routes by ascending PreferenceScore.
func ByPreference(w Weights) RouteCompare {
	return Key(func(r *route.Route) float64 { return PreferenceScore(r, w) })
}

// Preference returns routes stably sorted by preference score.
func Preference(routes []*route.Route, w Weights) []*route.Route {
	return MergeSort(routes, ByPreference(w))
}

// MultiCriteria sorts by travel time and then, stably, by distance.
func MultiCriteria(routes []*route.Route) []*route.Route {
	return MergeSort(MergeSort(routes, ByTravelTime), ByDistance)
}
