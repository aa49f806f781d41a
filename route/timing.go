// SPDX-License-Identifier: MIT

package route

import (
	"fmt"
	"time"
)

// Duration returns TravelTime as a time.Duration.
func (r *Route) Duration() time.Duration {
	return time.Duration(r.TravelTime) * time.Minute
}

// ArrivalAt returns when a walker leaving at departure arrives.
func (r *Route) ArrivalAt(departure time.Time) time.Time {
	return departure.Add(r.Duration())
}

// DepartureFor returns when to leave to arrive at arrival.
func (r *Route) DepartureFor(arrival time.Time) time.Time {
	return arrival.Add(-r.Duration())
}

// AverageSpeed returns km/h over the whole route, or 0 when either total is
// zero.
func (r *Route) AverageSpeed() float64 {
	if r.Distance <= 0 || r.TravelTime <= 0 {
		return 0
	}

	return (r.Distance / 1000) / (float64(r.TravelTime) / 60)
}

// FormatMinutes renders a travel time for people: "< 1 minute",
// "1 minute", "25 minutes", "2 hours", "1 hour 5 minutes".
func FormatMinutes(minutes int) string {
	switch {
	case minutes < 1:
		return "< 1 minute"
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	}
	h, m := minutes/60, minutes%60
	hours := plural(h, "hour")
	if m == 0 {
		return hours
	}

	return hours + " " + plural(m, "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
