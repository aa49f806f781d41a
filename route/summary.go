// SPDX-License-Identifier: MIT

package route

// Summary aggregates a set of routes.
type Summary struct {
	Count int

	TotalDistance   float64
	AverageDistance float64
	MinDistance     float64
	MaxDistance     float64

	TotalTime   int
	AverageTime float64
	MinTime     int
	MaxTime     int

	// WithLandmarks counts routes passing at least one landmark.
	WithLandmarks int
}

// Summarize computes a Summary. Nil entries are skipped; an empty input
// yields the zero Summary.
func Summarize(routes []*Route) Summary {
	var s Summary
	for _, r := range routes {
		if r == nil {
			continue
		}
		if s.Count == 0 {
			s.MinDistance, s.MaxDistance = r.Distance, r.Distance
			s.MinTime, s.MaxTime = r.TravelTime, r.TravelTime
		}
		s.Count++
		s.TotalDistance += r.Distance
		s.TotalTime += r.TravelTime
		s.MinDistance = min(s.MinDistance, r.Distance)
		s.MaxDistance = max(s.MaxDistance, r.Distance)
		s.MinTime = min(s.MinTime, r.TravelTime)
		s.MaxTime = max(s.MaxTime, r.TravelTime)
		if len(r.Landmarks) > 0 {
			s.WithLandmarks++
		}
	}
	if s.Count > 0 {
		s.AverageDistance = s.TotalDistance / float64(s.Count)
		s.AverageTime = float64(s.TotalTime) / float64(s.Count)
	}

	return s
}
