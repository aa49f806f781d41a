// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/route"
)

func (a *app) printRoute(r *route.Route) {
	fmt.Fprintln(a.out, r.Name)
	for _, line := range r.Directions() {
		fmt.Fprintf(a.out, "  %s\n", line)
	}
	fmt.Fprintf(a.out, "Distance: %s\n", geo.FormatDistance(r.Distance))
	fmt.Fprintf(a.out, "Time: %s\n", route.FormatMinutes(r.TravelTime))
}

func (a *app) printRoutes(routes []*route.Route) {
	for i, r := range routes {
		fmt.Fprintf(a.out, "%d. %-28s %10s %12s  %v\n",
			i+1, r.Name, geo.FormatDistance(r.Distance), route.FormatMinutes(r.TravelTime), r.NodeIDs())
	}
	s := a.planner.Analyze(routes)
	fmt.Fprintf(a.out, "%d routes, distance %s to %s, time %s to %s\n", s.Count,
		geo.FormatDistance(s.MinDistance), geo.FormatDistance(s.MaxDistance),
		route.FormatMinutes(s.MinTime), route.FormatMinutes(s.MaxTime))
}
