// SPDX-License-Identifier: MIT

// Package engine puts the three pathfinding algorithms behind one Finder
// interface, selected by a closed Kind enum.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/astar"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/floydwarshall"
	"github.com/katalvlaran/campusnav/route"
)

// ErrUnknownEngine is returned by ParseKind for unrecognised names.
var ErrUnknownEngine = errors.New("engine: unknown engine")

// Kind selects a pathfinding algorithm.
type Kind int

const (
	Dijkstra Kind = iota
	AStar
	FloydWarshall

	kindCount
)

// Finder finds one route from src to dst. A false result means no route,
// including unknown node IDs.
type Finder interface {
	FindPath(g *core.Graph, src, dst string) (*route.Route, bool)
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc func(g *core.Graph, src, dst string) (*route.Route, bool)

// FindPath calls f.
func (f FinderFunc) FindPath(g *core.Graph, src, dst string) (*route.Route, bool) {
	return f(g, src, dst)
}

var names = [...]string{
	Dijkstra:      "dijkstra",
	AStar:         "astar",
	FloydWarshall: "floyd-warshall",
}

var finders = [...]Finder{
	Dijkstra: FinderFunc(func(g *core.Graph, src, dst string) (*route.Route, bool) {
		return dijkstra.ShortestPath(g, src, dst)
	}),
	AStar: FinderFunc(func(g *core.Graph, src, dst string) (*route.Route, bool) {
		return astar.ShortestPath(g, src, dst)
	}),
	FloydWarshall: FinderFunc(func(g *core.Graph, src, dst string) (*route.Route, bool) {
		return floydwarshall.ShortestPath(g, src, dst)
	}),
}

// Both tables must cover every Kind; a missing trailing entry fails to compile.
var (
	_ = [1]struct{}{}[len(names)-int(kindCount)]
	_ = [1]struct{}{}[len(finders)-int(kindCount)]
)

// Valid reports whether k names a known engine.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String returns the CLI name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return names[k]
}

// Lookup returns the Finder for k, or nil for an invalid Kind.
func Lookup(k Kind) Finder {
	if !k.Valid() {
		return nil
	}

	return finders[k]
}

// WeightedAStar returns an A* Finder whose heuristic is scaled by w.
// Invalid weights make every query report no route.
func WeightedAStar(w float64) Finder {
	return FinderFunc(func(g *core.Graph, src, dst string) (*route.Route, bool) {
		return astar.ShortestPath(g, src, dst, astar.WithHeuristicWeight(w))
	})
}

// All lists every Kind in declaration order.
func All() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// ParseKind accepts the String form plus a few aliases, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "floyd-warshall", "floydwarshall", "floyd", "fw":
		return FloydWarshall, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so Kind can be decoded
// straight from configuration.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
