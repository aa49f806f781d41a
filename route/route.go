// SPDX-License-Identifier: MIT

package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// Cost factors applied to total distance (meters) and total travel time
// (minutes) when deriving Route.Cost.
const (
	DistanceCostFactor = 0.001
	TimeCostFactor     = 0.1
)

// ErrBrokenPath reports a Route whose edges do not chain its path nodes.
var ErrBrokenPath = errors.New("route: edges do not follow path")

// Route is an ordered walk through the graph with accumulated totals.
type Route struct {
	// Name is a human-readable label such as "Shortest Distance Route".
	Name string

	// Path lists the visited nodes, start and end inclusive.
	Path []*core.Node

	// Edges has len(Path)-1 entries; Edges[i] goes Path[i] → Path[i+1].
	Edges []*core.Edge

	// Distance is the sum of edge distances in meters.
	Distance float64

	// TravelTime is the sum of edge travel times in minutes.
	TravelTime int

	// Landmarks is the sub-sequence of Path flagged as landmarks.
	Landmarks []*core.Node

	// Cost is the ranking scalar derived from Distance and TravelTime.
	Cost float64
}

// EstimateCost returns distance*DistanceCostFactor + minutes*TimeCostFactor.
func EstimateCost(distance float64, minutes int) float64 {
	return distance*DistanceCostFactor + float64(minutes)*TimeCostFactor
}

// Single returns the degenerate route that starts and ends at n.
func Single(n *core.Node) *Route {
	r := &Route{}
	r.addNode(n)
	r.updateCost()

	return r
}

// New assembles a route that starts at start and follows edges in order.
// It trusts the edges to chain; use Validate to check.
func New(start *core.Node, edges []*core.Edge) *Route {
	r := Single(start)
	for _, e := range edges {
		r.addNode(e.To)
		r.addEdge(e)
	}
	r.updateCost()

	return r
}

// FromPredecessors walks prev backwards from target to source, where
// prev[id] is the edge used to reach id. It returns false when the chain is
// broken before reaching source.
func FromPredecessors(source, target *core.Node, prev map[string]*core.Edge) (*Route, bool) {
	if source == nil || target == nil {
		return nil, false
	}
	var rev []*core.Edge
	cur := target.ID
	// A valid chain is at most len(prev) edges long.
	for steps := 0; cur != source.ID; steps++ {
		e, ok := prev[cur]
		if !ok || e == nil || steps > len(prev) {
			return nil, false
		}
		rev = append(rev, e)
		cur = e.From.ID
	}
	edges := make([]*core.Edge, len(rev))
	for i, e := range rev {
		edges[len(rev)-1-i] = e
	}

	return New(source, edges), true
}

func (r *Route) addNode(n *core.Node) {
	r.Path = append(r.Path, n)
	if n.Landmark {
		r.Landmarks = append(r.Landmarks, n)
	}
}

func (r *Route) addEdge(e *core.Edge) {
	r.Edges = append(r.Edges, e)
	r.Distance += e.Distance
	r.TravelTime += e.TravelTime
}

func (r *Route) updateCost() {
	r.Cost = EstimateCost(r.Distance, r.TravelTime)
}

// Named sets Name and returns r for chaining.
func (r *Route) Named(name string) *Route {
	r.Name = name

	return r
}

// Validate checks the structural invariants: a non-empty path, one edge per
// hop, and each edge joining its neighbouring path nodes.
func (r *Route) Validate() error {
	if r == nil || len(r.Path) == 0 {
		return fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	if len(r.Edges) != len(r.Path)-1 {
		return fmt.Errorf("%w: %d nodes, %d edges", ErrBrokenPath, len(r.Path), len(r.Edges))
	}
	for i, e := range r.Edges {
		if e.From.ID != r.Path[i].ID || e.To.ID != r.Path[i+1].ID {
			return fmt.Errorf("%w: edge %d is %s", ErrBrokenPath, i, e.Key())
		}
	}

	return nil
}

// Start returns the first node, or nil for an empty route.
func (r *Route) Start() *core.Node {
	if len(r.Path) == 0 {
		return nil
	}

	return r.Path[0]
}

// End returns the last node, or nil for an empty route.
func (r *Route) End() *core.Node {
	if len(r.Path) == 0 {
		return nil
	}

	return r.Path[len(r.Path)-1]
}

// Len returns the number of path nodes.
func (r *Route) Len() int { return len(r.Path) }

// NodeIDs returns the path as node IDs.
func (r *Route) NodeIDs() []string {
	ids := make([]string, len(r.Path))
	for i, n := range r.Path {
		ids[i] = n.ID
	}

	return ids
}

// SamePath reports whether r and o visit the identical ordered sequence of
// node IDs. Totals and names are ignored.
func (r *Route) SamePath(o *Route) bool {
	if len(r.Path) != len(o.Path) {
		return false
	}
	for i := range r.Path {
		if r.Path[i].ID != o.Path[i].ID {
			return false
		}
	}

	return true
}

// Visits reports whether the path contains the node id.
func (r *Route) Visits(id string) bool {
	for _, n := range r.Path {
		if n.ID == id {
			return true
		}
	}

	return false
}

// PassesThrough reports whether a landmark on the route has a name
// containing name, ignoring case.
func (r *Route) PassesThrough(name string) bool {
	name = strings.ToLower(name)
	for _, n := range r.Landmarks {
		if strings.Contains(strings.ToLower(n.Name), name) {
			return true
		}
	}

	return false
}

// Directions renders one instruction per edge between a start and an
// arrival line. A single-node route starts and arrives at the same place.
func (r *Route) Directions() []string {
	if len(r.Path) == 0 {
		return []string{"No route available"}
	}
	out := make([]string, 0, len(r.Edges)+2)
	out = append(out, "Start at "+r.Start().Name)
	for i, e := range r.Edges {
		out = append(out, fmt.Sprintf("%d. Go %.0fm to %s", i+1, e.Distance, e.To.Name))
	}

	return append(out, "Arrive at "+r.End().Name)
}

// Description is a short multi-line summary: endpoints, distance and the
// landmarks passed.
func (r *Route) Description() string {
	if len(r.Path) < 2 {
		return "Invalid route"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Route: %s → %s\n", r.Start().Name, r.End().Name)
	fmt.Fprintf(&b, "Distance: %.1f meters\n", r.Distance)
	if len(r.Landmarks) > 0 {
		names := make([]string, len(r.Landmarks))
		for i, n := range r.Landmarks {
			names[i] = n.Name
		}
		fmt.Fprintf(&b, "Landmarks: %s\n", strings.Join(names, ", "))
	}

	return b.String()
}

// String returns "Route{name, distance, landmarks=n}".
func (r *Route) String() string {
	name := r.Name
	if name == "" {
		name = "Unnamed"
	}

	return fmt.Sprintf("Route{%s, %.1fm, landmarks=%d}", name, r.Distance, len(r.Landmarks))
}
