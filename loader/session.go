// SPDX-License-Identifier: MIT

package loader

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/landmark"
)

// File names looked up by LoadFiles.
const (
	NodesFile     = "nodes.csv"
	EdgesFile     = "edges.csv"
	LandmarksFile = "landmarks.csv"
)

// SourceSample is reported by Source after LoadSample.
const SourceSample = "sample"

// ErrNoNodes is returned when a load yields an empty node set.
var ErrNoNodes = errors.New("loader: no nodes loaded")

// Session holds the campus data of one run.
type Session struct {
	// ID distinguishes sessions in logs.
	ID uuid.UUID

	logger *slog.Logger
	speeds core.SpeedTable

	mu      sync.RWMutex
	graph   *core.Graph
	catalog *landmark.Catalog
	source  string
	loaded  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSpeeds overrides path-type speeds (km/h) for every edge loaded later.
func WithSpeeds(overrides map[string]float64) Option {
	return func(s *Session) { s.speeds = s.speeds.Merge(overrides) }
}

// NewSession returns an empty session with a fresh ID.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New(),
		logger: slog.New(slog.DiscardHandler),
		speeds: core.DefaultSpeeds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session", s.ID.String()))

	return s
}

// Loaded reports whether any load has succeeded.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// Graph returns the loaded graph, or nil before the first successful load.
func (s *Session) Graph() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph
}

// Catalog returns the loaded landmark catalog, or nil before the first
// successful load.
func (s *Session) Catalog() *landmark.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog
}

// Source describes where the current data came from.
func (s *Session) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.source
}

func (s *Session) commit(g *core.Graph, c *landmark.Catalog, source string) {
	s.mu.Lock()
	s.graph, s.catalog, s.source, s.loaded = g, c, source, true
	s.mu.Unlock()

	s.logger.Info("campus data loaded",
		slog.String("source", source),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("landmarks", c.Len()),
	)
}

// LoadSample replaces the session data with the built-in campus.
func (s *Session) LoadSample() {
	g := sampleGraph(s.speeds)
	s.commit(g, SampleCatalog(g), SourceSample)
}

// Load picks a loader from source: "" or "sample" loads the built-in campus,
// a .yaml/.yml path loads YAML and anything else is treated as a CSV
// directory.
func (s *Session) Load(source string) error {
	switch ext := strings.ToLower(filepath.Ext(source)); {
	case source == "" || source == SourceSample:
		s.LoadSample()

		return nil
	case ext == ".yaml" || ext == ".yml":
		f, err := os.Open(source)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()

		return s.loadYAML(f, source)
	default:
		return s.LoadFiles(source)
	}
}

// LoadFiles reads nodes.csv, edges.csv and the optional landmarks.csv from dir.
func (s *Session) LoadFiles(dir string) error {
	nodes, err := os.Open(filepath.Join(dir, NodesFile))
	if err != nil {
		return errors.WithStack(err)
	}
	defer nodes.Close()

	edges, err := os.Open(filepath.Join(dir, EdgesFile))
	if err != nil {
		return errors.WithStack(err)
	}
	defer edges.Close()

	var landmarks io.Reader
	lf, err := os.Open(filepath.Join(dir, LandmarksFile))
	switch {
	case err == nil:
		defer lf.Close()
		landmarks = lf
	case errors.Is(err, os.ErrNotExist):
		s.logger.Debug("no landmarks file, deriving catalog from nodes", slog.String("dir", dir))
	default:
		return errors.WithStack(err)
	}

	return s.loadCSV(nodes, edges, landmarks, dir)
}

// LoadCSV reads the three CSV streams. landmarks may be nil, in which case
// every landmark node gets a catalog entry with default importance.
func (s *Session) LoadCSV(nodes, edges, landmarks io.Reader) error {
	return s.loadCSV(nodes, edges, landmarks, "csv")
}

func (s *Session) loadCSV(nodesR, edgesR, landmarksR io.Reader, source string) error {
	nodes, err := ReadNodes(nodesR)
	if err != nil {
		return errors.Wrap(err, "load nodes")
	}
	edges, err := ReadEdges(edgesR)
	if err != nil {
		return errors.Wrap(err, "load edges")
	}
	var lms []LandmarkRow
	if landmarksR != nil {
		if lms, err = ReadLandmarks(landmarksR); err != nil {
			return errors.Wrap(err, "load landmarks")
		}
	}

	return s.build(nodes, edges, lms, landmarksR == nil, source)
}

// LoadYAML reads a CampusFile. Without a landmarks section every landmark
// node gets a catalog entry with default importance.
func (s *Session) LoadYAML(r io.Reader) error {
	return s.loadYAML(r, "yaml")
}

func (s *Session) loadYAML(r io.Reader, source string) error {
	f, err := DecodeYAML(r)
	if err != nil {
		return err
	}
	nodes, edges, lms := f.rows()

	return s.build(nodes, edges, lms, len(f.Landmarks) == 0, source)
}

func (s *Session) build(nodes []*core.Node, edges []EdgeRow, lms []LandmarkRow, derive bool, source string) error {
	if len(nodes) == 0 {
		return errors.WithStack(ErrNoNodes)
	}
	g := core.NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return errors.Wrapf(err, "add node %q", n.ID)
		}
	}
	for _, row := range edges {
		from, okFrom := g.Node(row.From)
		to, okTo := g.Node(row.To)
		if !okFrom || !okTo {
			s.logger.Warn("skipping edge with unknown endpoint",
				slog.String("from", row.From), slog.String("to", row.To), slog.Int("line", row.Line))

			continue
		}
		var opts []core.AddOption
		if !row.Bidirectional {
			opts = append(opts, core.OneWay())
		}
		if err := g.AddEdge(row.Edge(from, to, s.speeds), opts...); err != nil {
			return errors.Wrapf(err, "add edge at line %d", row.Line)
		}
	}

	c, _ := landmark.NewCatalog()
	if derive {
		c = landmark.FromGraph(g)
	}
	for _, row := range lms {
		n, ok := g.Node(row.NodeID)
		if !ok {
			s.logger.Warn("skipping landmark with unknown location",
				slog.String("id", row.ID), slog.String("location", row.NodeID), slog.Int("line", row.Line))

			continue
		}
		if err := c.Add(landmark.New(row.ID, row.Name, row.Category, row.Description, n, row.Importance)); err != nil {
			s.logger.Warn("skipping landmark", slog.String("id", row.ID), slog.Any("error", err))
		}
	}
	s.commit(g, c, source)

	return nil
}
