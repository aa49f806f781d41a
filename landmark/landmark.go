// SPDX-License-Identifier: MIT

// Package landmark keeps a searchable catalog of named campus places, each
// anchored to a graph node.
package landmark

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// DefaultImportance is assigned when a landmark is created without one.
const DefaultImportance = 0.5

// Type is the coarse grouping derived from a landmark's category.
type Type int

const (
	Other Type = iota
	Academic
	Residential
	Dining
	Recreation
	Service
	Transport
)

var typeNames = [...]string{
	Other:       "Other",
	Academic:    "Academic Buildings",
	Residential: "Residential Halls",
	Dining:      "Dining & Food",
	Recreation:  "Recreation & Sports",
	Service:     "Services & Facilities",
	Transport:   "Transportation",
}

// String returns the display name of t.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// TypeOf maps a free-form category to a Type by substring.
func TypeOf(category string) Type {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "academic"):
		return Academic
	case strings.Contains(c, "residential"):
		return Residential
	case strings.Contains(c, "dining"):
		return Dining
	case strings.Contains(c, "recreation"):
		return Recreation
	case strings.Contains(c, "service"):
		return Service
	case strings.Contains(c, "transport"):
		return Transport
	}

	return Other
}

// Landmark is a named place of interest at a graph node.
type Landmark struct {
	ID          string
	Name        string
	Category    string
	Description string
	Node        *core.Node
	Importance  float64
}

// New returns a landmark with importance clamped to [0,1].
func New(id, name, category, description string, node *core.Node, importance float64) *Landmark {
	return &Landmark{
		ID:          id,
		Name:        name,
		Category:    category,
		Description: description,
		Node:        node,
		Importance:  clamp(importance),
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}

// Type derives the grouping from Category.
func (l *Landmark) Type() Type { return TypeOf(l.Category) }

// Matches reports whether term occurs in the name, category or description,
// ignoring case.
func (l *Landmark) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	for _, field := range []string{l.Name, l.Category, l.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (l *Landmark) String() string {
	return fmt.Sprintf("Landmark{name='%s', category='%s', importance=%.2f}", l.Name, l.Category, l.Importance)
}
