// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/landmark"
	"github.com/katalvlaran/campusnav/ranking"
)

// Route names assigned by Multiple.
const (
	ShortestName    = "Shortest Distance Route"
	OptimalName     = "Optimal Route (A*)"
	AlternativeName = "Alternative Route"
	viaPrefix       = "Route via "
)

var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrOptionViolation is returned by New when an option value is invalid.
	ErrOptionViolation = errors.New("search: invalid option")
)

// Option configures a Planner.
type Option func(*config)

type config struct {
	catalog         *landmark.Catalog
	logger          *slog.Logger
	weights         ranking.Weights
	heuristicWeight float64
	err             error
}

// WithCatalog sets the landmark catalog used by ByLandmark. Without it the
// catalog is derived from the graph's landmark nodes. nil is ignored.
func WithCatalog(c *landmark.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithLogger sets the logger; queries log at debug level. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithWeights sets the preference weights used by ByLandmark and by Sort
// with ranking.CriterionPreference.
func WithWeights(w ranking.Weights) Option {
	return func(cfg *config) {
		if err := w.Validate(); err != nil {
			cfg.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)

			return
		}
		cfg.weights = w
	}
}

// WithHeuristicWeight scales the A* heuristic. Values above 1 trade
// optimality for fewer expansions. It must be finite and non-negative.
func WithHeuristicWeight(w float64) Option {
	return func(cfg *config) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			cfg.err = fmt.Errorf("%w: heuristic weight %v", ErrOptionViolation, w)

			return
		}
		cfg.heuristicWeight = w
	}
}

// Planner answers route queries over one graph.
type Planner struct {
	graph   *core.Graph
	catalog *landmark.Catalog
	logger  *slog.Logger
	weights ranking.Weights
	astar   engine.Finder
	hw      float64
}

// New returns a Planner for g.
func New(g *core.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := config{
		logger:          slog.New(slog.DiscardHandler),
		weights:         ranking.DefaultWeights(),
		heuristicWeight: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.catalog == nil {
		cfg.catalog = landmark.FromGraph(g)
	}

	p := &Planner{
		graph:   g,
		catalog: cfg.catalog,
		logger:  cfg.logger,
		weights: cfg.weights,
		astar:   engine.Lookup(engine.AStar),
		hw:      cfg.heuristicWeight,
	}
	if p.hw != 1 {
		p.astar = engine.WeightedAStar(p.hw)
	}

	return p, nil
}

// Graph returns the planner's graph.
func (p *Planner) Graph() *core.Graph { return p.graph }

// Catalog returns the planner's landmark catalog.
func (p *Planner) Catalog() *landmark.Catalog { return p.catalog }

// Weights returns the preference weights in use.
func (p *Planner) Weights() ranking.Weights { return p.weights }

// finder resolves kind, applying the heuristic weight to A*. An invalid
// kind falls back to Dijkstra.
func (p *Planner) finder(kind engine.Kind) engine.Finder {
	switch {
	case kind == engine.AStar:
		return p.astar
	case kind.Valid():
		return engine.Lookup(kind)
	default:
		p.logger.Warn("unknown engine, using dijkstra", slog.String("engine", kind.String()))

		return engine.Lookup(engine.Dijkstra)
	}
}
