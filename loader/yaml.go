// SPDX-License-Identifier: MIT

package loader

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/landmark"
)

// CampusFile is the YAML form of a whole campus.
type CampusFile struct {
	Nodes     []NodeSpec     `yaml:"nodes"`
	Edges     []EdgeSpec     `yaml:"edges"`
	Landmarks []LandmarkSpec `yaml:"landmarks,omitempty"`
}

// NodeSpec is one node entry.
type NodeSpec struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Description string  `yaml:"description,omitempty"`
	Landmark    bool    `yaml:"landmark,omitempty"`
}

// EdgeSpec is one edge entry. Omitted distance means haversine.
type EdgeSpec struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Distance *float64 `yaml:"distance,omitempty"`
	PathType string   `yaml:"path_type,omitempty"`
	SpeedKmh float64  `yaml:"speed_kmh,omitempty"`
	OneWay   bool     `yaml:"one_way,omitempty"`
}

// LandmarkSpec is one landmark entry. Omitted importance means the default.
type LandmarkSpec struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description,omitempty"`
	Node        string   `yaml:"node"`
	Importance  *float64 `yaml:"importance,omitempty"`
}

// DecodeYAML reads a CampusFile.
func DecodeYAML(r io.Reader) (*CampusFile, error) {
	var f CampusFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}

		return nil, errors.Wrap(err, "decode campus yaml")
	}

	return &f, nil
}

// EncodeYAML writes g and c as a CampusFile. Each directed edge becomes a
// one-way entry.
func EncodeYAML(w io.Writer, g *core.Graph, c *landmark.Catalog) error {
	var f CampusFile
	for _, n := range g.Nodes() {
		f.Nodes = append(f.Nodes, NodeSpec{
			ID: n.ID, Name: n.Name, Lat: n.Lat, Lng: n.Lng,
			Description: n.Description, Landmark: n.Landmark,
		})
	}
	for _, e := range g.Edges() {
		d := e.Distance
		f.Edges = append(f.Edges, EdgeSpec{
			From: e.From.ID, To: e.To.ID, Distance: &d,
			PathType: e.PathType, SpeedKmh: e.SpeedKmh, OneWay: true,
		})
	}
	if c != nil {
		for _, l := range c.All() {
			imp := l.Importance
			f.Landmarks = append(f.Landmarks, LandmarkSpec{
				ID: l.ID, Name: l.Name, Category: l.Category,
				Description: l.Description, Node: l.Node.ID, Importance: &imp,
			})
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return errors.Wrap(err, "encode campus yaml")
	}

	return errors.WithStack(enc.Close())
}

func (f *CampusFile) rows() ([]*core.Node, []EdgeRow, []LandmarkRow) {
	nodes := make([]*core.Node, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		nodes = append(nodes, &core.Node{
			ID: n.ID, Name: n.Name, Lat: n.Lat, Lng: n.Lng,
			Description: n.Description, Landmark: n.Landmark,
		})
	}
	edges := make([]EdgeRow, 0, len(f.Edges))
	for i, e := range f.Edges {
		row := EdgeRow{
			From: e.From, To: e.To, Distance: -1, PathType: e.PathType,
			SpeedKmh: e.SpeedKmh, Bidirectional: !e.OneWay, Line: i + 1,
		}
		if e.Distance != nil {
			row.Distance = *e.Distance
		}
		if row.PathType == "" {
			row.PathType = core.PathWalkway
		}
		edges = append(edges, row)
	}
	var lms []LandmarkRow
	for i, l := range f.Landmarks {
		row := LandmarkRow{
			ID: l.ID, Name: l.Name, Category: l.Category, Description: l.Description,
			NodeID: l.Node, Importance: landmark.DefaultImportance, Line: i + 1,
		}
		if l.Importance != nil {
			row.Importance = *l.Importance
		}
		lms = append(lms, row)
	}

	return nodes, edges, lms
}
