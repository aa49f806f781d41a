// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil *Node was passed, directly or as an edge endpoint.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNilEdge indicates a nil *Edge was passed to AddEdge.
	ErrNilEdge = errors.New("core: edge is nil")
)

// Node is a campus location.
//
// Identity is the ID alone; two Nodes with the same ID are the same place.
// Nodes are shared by the Graph, its Edges and every Route built from it, so
// they must not be mutated after insertion.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Name is the display name, e.g. "Balme Library".
	Name string

	// Lat and Lng are WGS84 degrees.
	Lat float64
	Lng float64

	// Description is optional free text.
	Description string

	// Landmark marks notable places used for via-landmark routing.
	Landmark bool
}

// NewNode returns a non-landmark Node.
func NewNode(id, name string, lat, lng float64) *Node {
	return &Node{ID: id, Name: name, Lat: lat, Lng: lng}
}

// Point returns the node position as an orb.Point (longitude first).
func (n *Node) Point() orb.Point { return orb.Point{n.Lng, n.Lat} }

// Equal reports whether n and o denote the same node ID.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.ID == o.ID
}

// String returns "Name (ID)".
func (n *Node) String() string {
	return fmt.Sprintf("%s (%s)", n.Name, n.ID)
}

// EdgeKey is the (from, to) identity of an edge. It ignores weight, so
// parallel edges share a key. Use it to deduplicate, never to store.
type EdgeKey struct {
	From string
	To   string
}

// Reverse returns the key of the opposite direction.
func (k EdgeKey) Reverse() EdgeKey { return EdgeKey{From: k.To, To: k.From} }

// String returns "from->to".
func (k EdgeKey) String() string { return k.From + "->" + k.To }

// Edge is a directed connection between two Nodes.
//
// Weight is the routing cost the engines minimize; it equals Distance unless
// set otherwise (for example to minutes, for time-optimized routing).
// TravelTime is whole minutes, rounded up, derived when the edge is built.
type Edge struct {
	From *Node
	To   *Node

	// Distance in meters.
	Distance float64

	// Weight is the routing cost.
	Weight float64

	// TravelTime in minutes.
	TravelTime int

	// PathType is a free-form tag: "walkway", "road", "stairs", ...
	PathType string

	// SpeedKmh is an explicit speed override; zero means "use the path type".
	SpeedKmh float64
}

// Key returns the (from, to) identity of e.
func (e *Edge) Key() EdgeKey { return EdgeKey{From: e.From.ID, To: e.To.ID} }

// String renders the edge for logs and debugging.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge{%s -> %s, distance=%.1fm, time=%dmin, type=%s}",
		e.From.Name, e.To.Name, e.Distance, e.TravelTime, e.PathType)
}

// AddOption configures a single AddEdge call.
type AddOption func(*addConfig)

type addConfig struct {
	oneWay bool
}

// OneWay inserts only the given direction; no reverse edge is created.
func OneWay() AddOption {
	return func(c *addConfig) { c.oneWay = true }
}

// Graph is the in-memory campus network.
//
// muNode protects nodes; muEdgeAdj protects adjacency and edges.
// Lock order is always muNode then muEdgeAdj.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards adjacency and edges

	nodes     map[string]*Node   // node ID → Node
	adjacency map[string][]*Edge // node ID → outgoing edges, insertion order
	edges     []*Edge            // all edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]*Edge),
	}
}
