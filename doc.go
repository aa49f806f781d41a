// Package campusnav finds walking routes across a university campus.
//
// 🚀 What is campusnav?
//
//	An in-memory campus graph with landmark-aware route planning:
//		• Core primitives: nodes with coordinates, directed edges with
//		  distance, travel time and weight, thread-safe under locks
//		• Geo helpers: haversine, euclidean and manhattan distances, bearings
//		• Shortest paths: Dijkstra, A* (optionally weighted), Floyd–Warshall
//		• Traversals: BFS (reachability, hop-limited neighbourhoods), DFS
//		  (topological order, cycle detection)
//		• Route planning: alternatives, detours via landmarks, via-points,
//		  ranking by distance, time, cost, landmarks or preference
//		• Trip scheduling with the critical path method
//		• Transportation plans between campus nodes (northwest corner, Vogel)
//
// Everything is organized under subpackages:
//
//	core/          Graph, Node, Edge and the speed table
//	geo/           distances, bearings and unit formatting on orb points
//	route/         Route values, combination, summaries and GeoJSON
//	dijkstra/      single-source shortest paths
//	astar/         goal-directed search with pluggable heuristics
//	floydwarshall/ all-pairs distance matrix
//	bfs/, dfs/     traversals
//	engine/        engine selection by name
//	ranking/       generic sorts and route criteria
//	landmark/      landmark catalog and search
//	search/        the route planner tying the above together
//	cpm/           critical path scheduling
//	transport/     transportation problem heuristics
//	loader/        CSV and YAML campus data, built-in sample campus
//	config/, logs/ koanf configuration and slog setup
//	cmd/campusnav  the command-line front end
//
// Quick start:
//
//	g := loader.SampleGraph()
//	p, _ := search.New(g, search.WithCatalog(loader.SampleCatalog(g)))
//	for _, r := range p.Multiple("main_gate", "comp_sci", 3) {
//		fmt.Println(r.Name, r.Distance)
//	}
package campusnav
