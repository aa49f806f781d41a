// SPDX-License-Identifier: MIT

package route_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// ExampleCombine joins two legs that meet at the library.
func ExampleCombine() {
	gate := core.NewNode("gate", "Main Gate", 5.6508, -0.1870)
	lib := &core.Node{ID: "lib", Name: "Balme Library", Lat: 5.6525, Lng: -0.1845, Landmark: true}
	dcit := core.NewNode("dcit", "Computer Science", 5.6530, -0.1840)

	first := route.New(gate, []*core.Edge{core.NewEdge(gate, lib, 500)})
	second := route.New(lib, []*core.Edge{core.NewEdge(lib, dcit, 150)})

	r, _ := route.Combine(first, second)
	for _, line := range r.Directions() {
		fmt.Println(line)
	}
	fmt.Printf("%.0fm, %s\n", r.Distance, route.FormatMinutes(r.TravelTime))
	// Output:
	// Start at Main Gate
	// 1. Go 500m to Balme Library
	// 2. Go 150m to Computer Science
	// Arrive at Computer Science
	// 650m, 8 minutes
}
