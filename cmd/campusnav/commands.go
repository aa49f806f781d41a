// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/cpm"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/engine"
	"github.com/katalvlaran/campusnav/floydwarshall"
	"github.com/katalvlaran/campusnav/landmark"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/ranking"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/transport"
)

// required reports the first empty flag among name/value pairs.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return errors.Errorf("-%s flag is required", pairs[i])
		}
	}

	return nil
}

func runRoute(args []string, env *environment) error {
	fs, c := newFlagSet("route", env)
	from := fs.String("from", "", "source node ID")
	to := fs.String("to", "", "destination node ID")
	eng := fs.String("engine", "", "dijkstra, astar or floyd-warshall (default from config)")
	asJSON := fs.Bool("geojson", false, "print the route as a GeoJSON feature collection")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from, "to", *to); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	kind := a.cfg.Routing.Engine
	if *eng != "" {
		if kind, err = engine.ParseKind(*eng); err != nil {
			return err
		}
	}
	r, ok := a.planner.Best(kind, *from, *to)
	if !ok {
		return errors.Errorf("no route from %q to %q", *from, *to)
	}
	if *asJSON {
		return a.writeGeoJSON([]*route.Route{r})
	}
	a.printRoute(r)

	return nil
}

func runRoutes(args []string, env *environment) error {
	fs, c := newFlagSet("routes", env)
	from := fs.String("from", "", "source node ID")
	to := fs.String("to", "", "destination node ID")
	maxRoutes := fs.Int("max", 0, "maximum number of routes (default from config)")
	criterion := fs.String("sort", "", "distance, time, cost, landmarks, preference or multi (default from config)")
	family := fs.String("family", "", "quick or merge (default from config)")
	asJSON := fs.Bool("geojson", false, "print the routes as a GeoJSON feature collection")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from, "to", *to); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	limit := a.cfg.Routing.MaxRoutes
	if *maxRoutes > 0 {
		limit = *maxRoutes
	}
	routes := a.planner.Multiple(*from, *to, limit)
	if len(routes) == 0 {
		return errors.Errorf("no route from %q to %q", *from, *to)
	}
	if routes, err = a.sort(routes, *criterion, *family); err != nil {
		return err
	}
	if *asJSON {
		return a.writeGeoJSON(routes)
	}
	a.printRoutes(routes)

	return nil
}

func (a *app) sort(routes []*route.Route, criterion, family string) ([]*route.Route, error) {
	s := a.cfg.Routing.Sort
	var err error
	if criterion != "" {
		if s.Criterion, err = ranking.ParseCriterion(criterion); err != nil {
			return nil, err
		}
	}
	if family != "" {
		if s.Family, err = ranking.ParseFamily(family); err != nil {
			return nil, err
		}
	}

	return a.planner.Sort(routes, s.Criterion, s.Family)
}

func runVia(args []string, env *environment) error {
	fs, c := newFlagSet("via", env)
	from := fs.String("from", "", "source node ID")
	via := fs.String("via", "", "intermediate node ID")
	to := fs.String("to", "", "destination node ID")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from, "via", *via, "to", *to); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	r, ok := a.planner.Via(*from, *via, *to)
	if !ok {
		return errors.Errorf("no route from %q via %q to %q", *from, *via, *to)
	}
	a.printRoute(r)

	return nil
}

func runLandmark(args []string, env *environment) error {
	fs, c := newFlagSet("landmark", env)
	from := fs.String("from", "", "source node ID")
	to := fs.String("to", "", "destination node ID")
	keyword := fs.String("keyword", "", "landmark name, category or description fragment")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from, "to", *to, "keyword", *keyword); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	routes := a.planner.ByLandmark(*from, *to, *keyword)
	if len(routes) == 0 {
		return errors.Errorf("no landmark matching %q connects %q and %q", *keyword, *from, *to)
	}
	a.printRoutes(routes)

	return nil
}

func runLandmarks(args []string, env *environment) error {
	fs, c := newFlagSet("landmarks", env)
	keyword := fs.String("keyword", "", "search fragment")
	category := fs.String("category", "", "exact category, case-insensitive")
	near := fs.String("near", "", "lat,lng to search around")
	radius := fs.Float64("radius", 250, "search radius in meters for -near")
	top := fs.Int("top", 0, "only the n most important")
	if err := parse(fs, args); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	cat := a.session.Catalog()
	var ls []*landmark.Landmark
	switch {
	case *keyword != "":
		ls = cat.Search(*keyword)
	case *category != "":
		ls = cat.ByCategory(*category)
	case *near != "":
		p, err := parsePoint(*near)
		if err != nil {
			return err
		}
		ls = cat.Near(p, *radius)
	case *top > 0:
		ls = cat.MostImportant(*top)
	default:
		ls = cat.All()
	}
	for _, l := range ls {
		fmt.Fprintf(a.out, "%-16s %-30s %-20s %.2f\n", l.ID, l.Name, l.Type(), l.Importance)
	}
	st := cat.Stats()
	fmt.Fprintf(a.out, "%d of %d landmarks, %d categories\n", len(ls), st.Total, len(st.Categories))

	return nil
}

// parsePoint reads "lat,lng".
func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("invalid point %q, want lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "latitude %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "longitude %q", parts[1])
	}

	return orb.Point{lng, lat}, nil
}

func runNodes(args []string, env *environment) error {
	fs, c := newFlagSet("nodes", env)
	name := fs.String("name", "", "only nodes whose name contains this")
	if err := parse(fs, args); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	g := a.session.Graph()
	nodes := g.Nodes()
	if *name != "" {
		nodes = g.FindNodesByName(*name)
	}
	for _, n := range nodes {
		mark := ""
		if n.Landmark {
			mark = " *"
		}
		fmt.Fprintf(a.out, "%-16s %-30s %9.4f %9.4f%s\n", n.ID, n.Name, n.Lat, n.Lng, mark)
	}
	fmt.Fprintf(a.out, "%d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())

	return nil
}

func runNearby(args []string, env *environment) error {
	fs, c := newFlagSet("nearby", env)
	from := fs.String("from", "", "node ID")
	hops := fs.Int("hops", 1, "maximum number of edges")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	nodes := a.planner.Nearby(*from, *hops)
	if nodes == nil {
		return errors.Errorf("unknown node %q or invalid hop count %d", *from, *hops)
	}
	for _, n := range nodes {
		fmt.Fprintf(a.out, "%-16s %s\n", n.ID, n.Name)
	}

	return nil
}

func runSchedule(args []string, env *environment) error {
	fs, c := newFlagSet("schedule", env)
	from := fs.String("from", "", "source node ID")
	to := fs.String("to", "", "destination node ID")
	stops := fs.String("stops", "", "comma-separated node IDs to stop at, visited in order")
	dwell := fs.Int("dwell", 10, "minutes spent at each stop")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("from", *from, "to", *to); err != nil {
		return err
	}
	if *dwell < 0 {
		return errors.Errorf("-dwell must not be negative, got %d", *dwell)
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	waypoints := []string{*from}
	if *stops != "" {
		waypoints = append(waypoints, splitList(*stops)...)
	}
	waypoints = append(waypoints, *to)

	trip, ok := dijkstra.ShortestPath(a.session.Graph(), waypoints[0], waypoints[1])
	for i := 1; ok && i < len(waypoints)-1; i++ {
		var leg *route.Route
		if leg, ok = dijkstra.ShortestPath(a.session.Graph(), waypoints[i], waypoints[i+1]); ok {
			trip, ok = route.Combine(trip, leg)
		}
	}
	if !ok {
		return errors.Errorf("no trip through %s", strings.Join(waypoints, " → "))
	}

	s, err := cpm.Analyze(cpm.FromRoute(trip, *dwell, waypoints[1:len(waypoints)-1]...))
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, s.String())

	return nil
}

// parseQuantities reads "id:qty,id:qty".
func parseQuantities(s string) ([]string, []float64, error) {
	var ids []string
	var qty []float64
	for _, item := range splitList(s) {
		id, q, found := strings.Cut(item, ":")
		if !found {
			return nil, nil, errors.Errorf("invalid entry %q, want id:quantity", item)
		}
		v, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "quantity of %q", id)
		}
		ids = append(ids, strings.TrimSpace(id))
		qty = append(qty, v)
	}

	return ids, qty, nil
}

func runDistribute(args []string, env *environment) error {
	fs, c := newFlagSet("distribute", env)
	sources := fs.String("sources", "", "supplies as id:qty,id:qty")
	sinks := fs.String("sinks", "", "demands as id:qty,id:qty")
	method := fs.String("method", "vogel", "vogel or northwest")
	byTime := fs.Bool("time", false, "cost by travel minutes instead of meters")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("sources", *sources, "sinks", *sinks); err != nil {
		return err
	}
	solve := transport.Vogel
	switch strings.ToLower(*method) {
	case "vogel":
	case "northwest", "nw":
		solve = transport.NorthwestCorner
	default:
		return errors.Errorf("unknown method %q", *method)
	}
	srcIDs, supply, err := parseQuantities(*sources)
	if err != nil {
		return err
	}
	dstIDs, demand, err := parseQuantities(*sinks)
	if err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	g := a.session.Graph()
	var cost [][]float64
	if *byTime {
		cost, err = transport.CostMatrix(g, srcIDs, dstIDs, floydwarshall.WithWeightFunc(func(e *core.Edge) float64 {
			return float64(e.TravelTime)
		}))
	} else {
		cost, err = transport.CostMatrix(g, srcIDs, dstIDs)
	}
	if err != nil {
		return err
	}
	p := transport.Problem{Supply: supply, Demand: demand, Cost: cost}
	plan, err := solve(p)
	if err != nil {
		return err
	}
	for _, s := range plan.Shipments(p) {
		fmt.Fprintf(a.out, "%-16s -> %-16s %8.2f units %10.2f\n", srcIDs[s.From], dstIDs[s.To], s.Quantity, s.Cost)
	}
	fmt.Fprintf(a.out, "Total cost: %.2f\n", plan.TotalCost)

	return nil
}

func runExport(args []string, env *environment) error {
	fs, c := newFlagSet("export", env)
	format := fs.String("format", "yaml", "yaml or csv")
	out := fs.String("out", "", "output file (yaml, default stdout) or directory (csv)")
	if err := parse(fs, args); err != nil {
		return err
	}
	a, err := setup(c, env)
	if err != nil {
		return err
	}

	g, cat := a.session.Graph(), a.session.Catalog()
	switch strings.ToLower(*format) {
	case "yaml", "yml":
		if *out == "" {
			return loader.EncodeYAML(a.out, g, cat)
		}
		f, err := os.Create(*out)
		if err != nil {
			return errors.Wrap(err, "create export file")
		}
		defer f.Close()

		return loader.EncodeYAML(f, g, cat)
	case "csv":
		if err := required("out", *out); err != nil {
			return err
		}

		return exportCSV(*out, a)
	default:
		return errors.Errorf("unknown export format %q", *format)
	}
}

func exportCSV(dir string, a *app) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create export directory")
	}
	g := a.session.Graph()
	writers := []struct {
		name  string
		write func(f *os.File) error
	}{
		{loader.NodesFile, func(f *os.File) error { return loader.WriteNodesCSV(f, g.Nodes()) }},
		{loader.EdgesFile, func(f *os.File) error { return loader.WriteEdgesCSV(f, g.Edges()) }},
		{loader.LandmarksFile, func(f *os.File) error { return loader.WriteLandmarksCSV(f, a.session.Catalog().All()) }},
	}
	for _, w := range writers {
		path := filepath.Join(dir, w.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %s", path)
		}
		if err := w.write(f); err != nil {
			f.Close()

			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s", path)
		}
		a.logger.Info("exported", "file", path)
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func (a *app) writeGeoJSON(routes []*route.Route) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(route.FeatureCollection(routes)), "encode geojson")
}
