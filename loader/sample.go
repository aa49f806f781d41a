// SPDX-License-Identifier: MIT

package loader

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/landmark"
)

var sampleNodes = []struct {
	id, name, desc string
	lat, lng       float64
}{
	{"main_gate", "Main Gate", "University main entrance", 5.6508, -0.1870},
	{"great_hall", "Great Hall", "Main assembly hall", 5.6520, -0.1850},
	{"library", "Balme Library", "Main university library", 5.6525, -0.1845},
	{"comp_sci", "Computer Science Department", "DCIT Department building", 5.6530, -0.1840},
	{"night_market", "Night Market", "Food and shopping area", 5.6515, -0.1860},
	{"commonwealth", "Commonwealth Hall", "Traditional residential hall", 5.6540, -0.1820},
	{"legon", "Legon Hall", "Traditional residential hall", 5.6545, -0.1825},
	{"sports", "Sports Complex", "Main sports facilities", 5.6550, -0.1830},
}

var sampleEdges = []struct {
	from, to string
	meters   float64
}{
	{"main_gate", "great_hall", 300},
	{"great_hall", "library", 200},
	{"library", "comp_sci", 150},
	{"main_gate", "night_market", 250},
	{"night_market", "great_hall", 200},
	{"great_hall", "commonwealth", 400},
	{"commonwealth", "legon", 100},
	{"legon", "sports", 200},
	{"comp_sci", "sports", 300},
}

var sampleLandmarks = []struct {
	node, category, desc string
	importance           float64
}{
	{"main_gate", "Transport", "Main entrance to the university", 1.0},
	{"great_hall", "Academic", "Main assembly and graduation hall", 0.9},
	{"library", "Academic", "Main university library with study areas", 0.8},
	{"comp_sci", "Academic", "DCIT Department building", 0.7},
	{"night_market", "Dining", "Food court and shopping area", 0.8},
	{"commonwealth", "Residential", "Traditional residential hall", 0.6},
	{"legon", "Residential", "Traditional residential hall", 0.6},
	{"sports", "Recreation", "Main sports and recreation facilities", 0.7},
}

// SampleGraph returns a fresh copy of the built-in campus: eight landmark
// nodes joined by nine two-way walkways.
func SampleGraph() *core.Graph {
	return sampleGraph(core.DefaultSpeeds())
}

func sampleGraph(speeds core.SpeedTable) *core.Graph {
	g := core.NewGraph()
	byID := make(map[string]*core.Node, len(sampleNodes))
	for _, s := range sampleNodes {
		n := &core.Node{ID: s.id, Name: s.name, Lat: s.lat, Lng: s.lng, Description: s.desc, Landmark: true}
		byID[s.id] = n
		_ = g.AddNode(n)
	}
	for _, s := range sampleEdges {
		_ = g.AddEdge(core.NewEdge(byID[s.from], byID[s.to], s.meters, core.WithSpeedTable(speeds)))
	}

	return g
}

// SampleCatalog returns the landmark catalog of the built-in campus, anchored
// to the nodes of g. Entries whose node is missing from g are skipped.
func SampleCatalog(g *core.Graph) *landmark.Catalog {
	c, _ := landmark.NewCatalog()
	for _, s := range sampleLandmarks {
		n, ok := g.Node(s.node)
		if !ok {
			continue
		}
		_ = c.Add(landmark.New("lm_"+s.node, n.Name, s.category, s.desc, n, s.importance))
	}

	return c
}
