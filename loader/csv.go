// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/landmark"
)

// CSV headers written by the Write* functions.
var (
	NodesHeader     = []string{"id", "name", "latitude", "longitude", "description", "isLandmark"}
	EdgesHeader     = []string{"sourceId", "destinationId", "distanceMeters", "pathType", "speedKmh", "bidirectional"}
	LandmarksHeader = []string{"id", "name", "category", "description", "locationId", "importance"}
)

// EdgeRow is one parsed line of edges.csv.
type EdgeRow struct {
	From, To      string
	Distance      float64 // negative when the column was blank
	PathType      string
	SpeedKmh      float64
	Bidirectional bool
	Line          int
}

// LandmarkRow is one parsed line of landmarks.csv.
type LandmarkRow struct {
	ID, Name, Category, Description string
	NodeID                          string
	Importance                      float64
	Line                            int
}

// eachRecord skips the header and calls fn with every record and its
// 1-based file line.
func eachRecord(r io.Reader, minFields int, name string, fn func(rec []string, line int) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errors.Wrapf(err, "read %s header", name)
	}
	lineNum := 1
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return errors.Wrapf(readErr, "read %s", name)
		}
		lineNum++
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < minFields {
			return errors.Errorf("invalid %s format at line %d: expected at least %d columns, got %d",
				name, lineNum, minFields, len(record))
		}
		if err := fn(record, lineNum); err != nil {
			return err
		}
	}
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}

func parseFloat(s, what, name string, line int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s in %s at line %d", what, name, line)
	}

	return v, nil
}

func parseBool(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}

	return v
}

// ReadNodes parses nodes.csv.
func ReadNodes(r io.Reader) ([]*core.Node, error) {
	var nodes []*core.Node
	err := eachRecord(r, 4, "nodes.csv", func(rec []string, line int) error {
		lat, err := parseFloat(field(rec, 2), "latitude", "nodes.csv", line)
		if err != nil {
			return err
		}
		lng, err := parseFloat(field(rec, 3), "longitude", "nodes.csv", line)
		if err != nil {
			return err
		}
		id := field(rec, 0)
		if id == "" {
			return errors.Errorf("empty node id in nodes.csv at line %d", line)
		}
		nodes = append(nodes, &core.Node{
			ID:          id,
			Name:        field(rec, 1),
			Lat:         lat,
			Lng:         lng,
			Description: field(rec, 4),
			Landmark:    parseBool(field(rec, 5), false),
		})

		return nil
	})

	return nodes, err
}

// ReadEdges parses edges.csv without resolving node IDs.
func ReadEdges(r io.Reader) ([]EdgeRow, error) {
	var rows []EdgeRow
	err := eachRecord(r, 2, "edges.csv", func(rec []string, line int) error {
		row := EdgeRow{
			From:          field(rec, 0),
			To:            field(rec, 1),
			Distance:      -1,
			PathType:      core.PathWalkway,
			Bidirectional: parseBool(field(rec, 5), true),
			Line:          line,
		}
		if s := field(rec, 2); s != "" {
			d, err := parseFloat(s, "distance", "edges.csv", line)
			if err != nil {
				return err
			}
			row.Distance = d
		}
		if s := field(rec, 3); s != "" {
			row.PathType = s
		}
		if s := field(rec, 4); s != "" {
			v, err := parseFloat(s, "speed", "edges.csv", line)
			if err != nil {
				return err
			}
			row.SpeedKmh = v
		}
		rows = append(rows, row)

		return nil
	})

	return rows, err
}

// ReadLandmarks parses landmarks.csv without resolving node IDs.
func ReadLandmarks(r io.Reader) ([]LandmarkRow, error) {
	var rows []LandmarkRow
	err := eachRecord(r, 5, "landmarks.csv", func(rec []string, line int) error {
		row := LandmarkRow{
			ID:          field(rec, 0),
			Name:        field(rec, 1),
			Category:    field(rec, 2),
			Description: field(rec, 3),
			NodeID:      field(rec, 4),
			Importance:  landmark.DefaultImportance,
			Line:        line,
		}
		if s := field(rec, 5); s != "" {
			v, err := parseFloat(s, "importance", "landmarks.csv", line)
			if err != nil {
				return err
			}
			row.Importance = v
		}
		rows = append(rows, row)

		return nil
	})

	return rows, err
}

// Edge builds the directed edge described by row. Blank distances use the
// haversine distance; a positive speed weights the edge by minutes.
func (row EdgeRow) Edge(from, to *core.Node, speeds core.SpeedTable) *core.Edge {
	distance := row.Distance
	if distance < 0 {
		distance = geo.Haversine(from.Point(), to.Point())
	}
	opts := []core.EdgeOption{core.WithPathType(row.PathType), core.WithSpeedTable(speeds)}
	if row.SpeedKmh > 0 {
		opts = append(opts,
			core.WithSpeed(row.SpeedKmh),
			core.WithWeight(distance/1000/row.SpeedKmh*60))
	}

	return core.NewEdge(from, to, distance, opts...)
}

func formatFloat(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

// WriteNodesCSV writes nodes in the nodes.csv format.
func WriteNodesCSV(w io.Writer, nodes []*core.Node) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(NodesHeader); err != nil {
		return errors.WithStack(err)
	}
	for _, n := range nodes {
		rec := []string{
			n.ID, n.Name,
			formatFloat(n.Lat, 6), formatFloat(n.Lng, 6),
			n.Description, strconv.FormatBool(n.Landmark),
		}
		if err := cw.Write(rec); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()

	return errors.WithStack(cw.Error())
}

// WriteEdgesCSV writes every directed edge as a one-way row, so reading the
// file back reproduces the same adjacency.
func WriteEdgesCSV(w io.Writer, edges []*core.Edge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(EdgesHeader); err != nil {
		return errors.WithStack(err)
	}
	for _, e := range edges {
		speed := ""
		if e.SpeedKmh > 0 {
			speed = formatFloat(e.SpeedKmh, 1)
		}
		rec := []string{e.From.ID, e.To.ID, formatFloat(e.Distance, 1), e.PathType, speed, "false"}
		if err := cw.Write(rec); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()

	return errors.WithStack(cw.Error())
}

// WriteLandmarksCSV writes ls in the landmarks.csv format.
func WriteLandmarksCSV(w io.Writer, ls []*landmark.Landmark) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LandmarksHeader); err != nil {
		return errors.WithStack(err)
	}
	for _, l := range ls {
		rec := []string{l.ID, l.Name, l.Category, l.Description, l.Node.ID, formatFloat(l.Importance, 2)}
		if err := cw.Write(rec); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()

	return errors.WithStack(cw.Error())
}
