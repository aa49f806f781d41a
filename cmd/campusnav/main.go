// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/logs"
	"github.com/katalvlaran/campusnav/search"
)

// Supported subcommands:
// - route:      one route with the selected engine
// - routes:     ranked alternatives, including landmark detours
// - via:        a route through one intermediate node
// - landmark:   detours through landmarks matching a keyword
// - landmarks:  list or search the landmark catalog
// - nodes:      list campus nodes
// - nearby:     nodes within a few hops
// - schedule:   critical-path timing of a trip with stops
// - distribute: transportation plan between campus nodes
// - export:     write the loaded campus as CSV or YAML

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type command struct {
	name    string
	summary string
	run     func(args []string, env *environment) error
}

var commands = []command{
	{"route", "find one route between two nodes", runRoute},
	{"routes", "list ranked alternative routes", runRoutes},
	{"via", "route through an intermediate node", runVia},
	{"landmark", "routes via landmarks matching a keyword", runLandmark},
	{"landmarks", "list or search landmarks", runLandmarks},
	{"nodes", "list campus nodes", runNodes},
	{"nearby", "nodes within a number of hops", runNearby},
	{"schedule", "critical-path timing of a trip with stops", runSchedule},
	{"distribute", "plan shipments between campus nodes", runDistribute},
	{"export", "write the campus as CSV files or YAML", runExport},
}

// environment carries the process streams into subcommands.
type environment struct {
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	env := &environment{stdout: stdout, stderr: stderr}
	if len(args) < 1 {
		printUsage(stderr)

		return errors.New("missing subcommand")
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], env)
		}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(stdout)

		return nil
	}
	printUsage(stderr)

	return errors.Errorf("unknown subcommand %q", args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: campusnav <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Every command accepts -config <file.yaml> and -data <dir|file.yaml|sample>.")
}

// common holds the flags shared by every subcommand.
type common struct {
	config *string
	data   *string
}

func newFlagSet(name string, env *environment) (*flag.FlagSet, common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	c := common{
		config: fs.String("config", "", "YAML configuration file"),
		data:   fs.String("data", "", "campus data: CSV directory, YAML file or \"sample\" (overrides config)"),
	}

	return fs, c
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", fs.Name())
	}
	if fs.NArg() > 0 {
		return errors.Errorf("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}

	return nil
}

// app is the loaded state a subcommand works with.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *loader.Session
	planner *search.Planner
	out     io.Writer
}

func setup(c common, env *environment) (*app, error) {
	cfg, err := config.Load(*c.config)
	if err != nil {
		return nil, err
	}
	if *c.data != "" {
		cfg.Data.Source = *c.data
	}
	logger, err := logs.NewWithWriter(env.stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	session := loader.NewSession(loader.WithLogger(logger), loader.WithSpeeds(cfg.Speeds))
	if err := session.Load(cfg.Data.Source); err != nil {
		return nil, errors.Wrap(err, "load campus")
	}
	planner, err := search.New(session.Graph(),
		search.WithCatalog(session.Catalog()),
		search.WithLogger(logger),
		search.WithWeights(cfg.Routing.Weights),
		search.WithHeuristicWeight(cfg.Routing.HeuristicWeight),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create planner")
	}

	return &app{cfg: cfg, logger: logger, session: session, planner: planner, out: env.stdout}, nil
}
