// SPDX-License-Identifier: MIT

package cpm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/ranking"
	"github.com/katalvlaran/campusnav/route"
)

var (
	// ErrEmptyID indicates an activity without an ID.
	ErrEmptyID = errors.New("cpm: activity ID is empty")

	// ErrDuplicateActivity indicates two activities share an ID.
	ErrDuplicateActivity = errors.New("cpm: duplicate activity")

	// ErrNegativeDuration indicates an activity with a negative duration.
	ErrNegativeDuration = errors.New("cpm: negative duration")

	// ErrUnknownActivity indicates a predecessor that is not declared.
	ErrUnknownActivity = errors.New("cpm: unknown activity")

	// ErrCycle indicates circular precedence.
	ErrCycle = errors.New("cpm: precedence cycle")
)

// Activity is one unit of work.
type Activity struct {
	ID           string
	Name         string
	Duration     int
	Predecessors []string
}

// Timing holds the computed schedule of one activity.
type Timing struct {
	Activity

	EarliestStart  int
	EarliestFinish int
	LatestStart    int
	LatestFinish   int
	Slack          int
}

// Critical reports whether the activity has no slack.
func (t Timing) Critical() bool { return t.Slack == 0 }

// Schedule is the result of Analyze.
type Schedule struct {
	// Timings in the order the activities were given.
	Timings []Timing

	// CriticalPath lists critical activity IDs by earliest start.
	CriticalPath []string

	// Duration is the project completion time.
	Duration int

	index map[string]int
}

// Timing returns the computed timing for id.
func (s *Schedule) Timing(id string) (Timing, bool) {
	i, ok := s.index[id]
	if !ok {
		return Timing{}, false
	}

	return s.Timings[i], true
}

// String renders the schedule as a fixed-width table.
func (s *Schedule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-28s %8s %5s %5s %5s %5s %5s\n",
		"ID", "Name", "Duration", "ES", "EF", "LS", "LF", "Slack")
	for _, t := range s.Timings {
		mark := ""
		if t.Critical() {
			mark = " *"
		}
		fmt.Fprintf(&b, "%-10s %-28s %8d %5d %5d %5d %5d %5d%s\n",
			t.ID, t.Name, t.Duration, t.EarliestStart, t.EarliestFinish,
			t.LatestStart, t.LatestFinish, t.Slack, mark)
	}
	fmt.Fprintf(&b, "Critical path: %s\n", strings.Join(s.CriticalPath, " → "))
	fmt.Fprintf(&b, "Project duration: %d\n", s.Duration)

	return b.String()
}

// Analyze computes the schedule of activities. An empty input yields an
// empty schedule.
func Analyze(activities []Activity) (*Schedule, error) {
	s := &Schedule{
		Timings: make([]Timing, len(activities)),
		index:   make(map[string]int, len(activities)),
	}
	for i, a := range activities {
		switch {
		case a.ID == "":
			return nil, fmt.Errorf("%w: position %d", ErrEmptyID, i)
		case a.Duration < 0:
			return nil, fmt.Errorf("%w: %q has %d", ErrNegativeDuration, a.ID, a.Duration)
		}
		if _, dup := s.index[a.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateActivity, a.ID)
		}
		s.index[a.ID] = i
		s.Timings[i] = Timing{Activity: a}
	}

	g, err := s.network()
	if err != nil {
		return nil, err
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			cycle, _ := dfs.FindCycle(g)

			return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " → "))
		}

		return nil, err
	}

	s.forward(order)
	s.backward(g, order)
	s.critical(order)

	return s, nil
}

// network builds the activity-on-node graph: one node per activity, one
// one-way edge per precedence link.
func (s *Schedule) network() (*core.Graph, error) {
	g := core.NewGraph()
	nodes := make([]*core.Node, len(s.Timings))
	for i, t := range s.Timings {
		nodes[i] = core.NewNode(t.ID, t.Name, 0, 0)
		if err := g.AddNode(nodes[i]); err != nil {
			return nil, err
		}
	}
	for i, t := range s.Timings {
		for _, p := range t.Predecessors {
			j, ok := s.index[p]
			if !ok {
				return nil, fmt.Errorf("%w: %q (predecessor of %q)", ErrUnknownActivity, p, t.ID)
			}
			e := core.NewEdge(nodes[j], nodes[i], float64(s.Timings[j].Duration))
			if err := g.AddEdge(e, core.OneWay()); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func (s *Schedule) forward(order []string) {
	for _, id := range order {
		t := &s.Timings[s.index[id]]
		t.EarliestStart = 0
		for _, p := range t.Predecessors {
			if ef := s.Timings[s.index[p]].EarliestFinish; ef > t.EarliestStart {
				t.EarliestStart = ef
			}
		}
		t.EarliestFinish = t.EarliestStart + t.Duration
		if t.EarliestFinish > s.Duration {
			s.Duration = t.EarliestFinish
		}
	}
}

func (s *Schedule) backward(g *core.Graph, order []string) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		t := &s.Timings[s.index[id]]
		t.LatestFinish = s.Duration
		for _, e := range g.EdgesFrom(id) {
			if ls := s.Timings[s.index[e.To.ID]].LatestStart; ls < t.LatestFinish {
				t.LatestFinish = ls
			}
		}
		t.LatestStart = t.LatestFinish - t.Duration
		t.Slack = t.LatestStart - t.EarliestStart
	}
}

func (s *Schedule) critical(order []string) {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	var crit []Timing
	for _, t := range s.Timings {
		if t.Critical() {
			crit = append(crit, t)
		}
	}
	crit = ranking.MergeSort(crit, ranking.Then(
		ranking.Key(func(t Timing) int { return t.EarliestStart }),
		ranking.Key(func(t Timing) int { return t.EarliestFinish }),
		ranking.Key(func(t Timing) int { return pos[t.ID] }),
	))
	s.CriticalPath = make([]string, len(crit))
	for i, t := range crit {
		s.CriticalPath[i] = t.ID
	}
}

// FromRoute turns a route into a chain of activities: one per leg, each
// lasting the leg's travel time, plus a stop of dwell minutes for each entry
// of stops. Stops are matched in order against the intermediate nodes the
// route arrives at, so a node passed several times dwells only where its
// stop falls due. Stop IDs are "stop-<n>-<node ID>" with n counting from 1.
func FromRoute(r *route.Route, dwell int, stops ...string) []Activity {
	if r == nil || len(r.Edges) == 0 {
		return nil
	}

	out := make([]Activity, 0, len(r.Edges)+len(stops))
	prev := ""
	add := func(a Activity) {
		if prev != "" {
			a.Predecessors = []string{prev}
		}
		out = append(out, a)
		prev = a.ID
	}
	next, last := 0, len(r.Edges)-1
	for i, e := range r.Edges {
		add(Activity{
			ID:       fmt.Sprintf("leg-%d", i+1),
			Name:     fmt.Sprintf("Walk to %s", e.To.Name),
			Duration: e.TravelTime,
		})
		if i < last && next < len(stops) && e.To.ID == stops[next] {
			next++
			add(Activity{
				ID:       fmt.Sprintf("stop-%d-%s", next, e.To.ID),
				Name:     fmt.Sprintf("Stop at %s", e.To.Name),
				Duration: dwell,
			})
		}
	}

	return out
}
