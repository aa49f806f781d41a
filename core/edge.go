// SPDX-License-Identifier: MIT

package core

import (
	"math"
	"strings"
)

// Path types with a known default speed.
const (
	PathWalkway  = "walkway"
	PathFootpath = "footpath"
	PathStairs   = "stairs"
	PathRoad     = "road"
	PathBike     = "bike"
)

// Default speeds in km/h.
const (
	WalkingSpeed = 5.0
	CyclingSpeed = 12.0
	DrivingSpeed = 30.0
)

// SpeedTable maps a lower-case path type to a speed in km/h.
// Unknown path types fall back to WalkingSpeed.
type SpeedTable map[string]float64

// DefaultSpeeds returns a fresh copy of the built-in speed table.
func DefaultSpeeds() SpeedTable {
	return SpeedTable{
		"road":     DrivingSpeed,
		"drive":    DrivingSpeed,
		"driving":  DrivingSpeed,
		"car":      DrivingSpeed,
		"bike":     CyclingSpeed,
		"bicycle":  CyclingSpeed,
		"cycle":    CyclingSpeed,
		"cycling":  CyclingSpeed,
		"walkway":  WalkingSpeed,
		"footpath": WalkingSpeed,
		"stairs":   WalkingSpeed,
	}
}

// Speed returns the speed for pathType. Lookups are case-insensitive.
func (t SpeedTable) Speed(pathType string) float64 {
	if s, ok := t[strings.ToLower(strings.TrimSpace(pathType))]; ok && s > 0 {
		return s
	}

	return WalkingSpeed
}

// Merge returns a copy of t with overrides applied. Non-positive overrides
// are ignored.
func (t SpeedTable) Merge(overrides map[string]float64) SpeedTable {
	out := make(SpeedTable, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		if v > 0 {
			out[strings.ToLower(k)] = v
		}
	}

	return out
}

// TravelTimeMinutes returns ceil(distance_km / speed * 60).
// A non-positive speed is treated as WalkingSpeed.
func TravelTimeMinutes(distance, speedKmh float64) int {
	if speedKmh <= 0 {
		speedKmh = WalkingSpeed
	}

	return int(math.Ceil(distance / 1000 / speedKmh * 60))
}

// EdgeOption customizes NewEdge.
type EdgeOption func(*edgeBuild)

type edgeBuild struct {
	edge   *Edge
	speeds SpeedTable
}

// WithWeight sets the routing cost; without it the weight equals the distance.
func WithWeight(w float64) EdgeOption {
	return func(b *edgeBuild) { b.edge.Weight = w }
}

// WithPathType sets the path type tag.
func WithPathType(pt string) EdgeOption {
	return func(b *edgeBuild) { b.edge.PathType = pt }
}

// WithSpeed sets an explicit speed override in km/h. Zero clears it.
func WithSpeed(kmh float64) EdgeOption {
	return func(b *edgeBuild) { b.edge.SpeedKmh = kmh }
}

// WithSpeedTable resolves the path-type speed from t instead of DefaultSpeeds.
func WithSpeedTable(t SpeedTable) EdgeOption {
	return func(b *edgeBuild) { b.speeds = t }
}

var defaultSpeeds = DefaultSpeeds()

// NewEdge builds a directed edge from → to of the given length in meters.
// Defaults: weight = distance, path type "walkway", no speed override.
func NewEdge(from, to *Node, distance float64, opts ...EdgeOption) *Edge {
	b := edgeBuild{
		edge: &Edge{
			From:     from,
			To:       to,
			Distance: distance,
			Weight:   distance,
			PathType: PathWalkway,
		},
		speeds: defaultSpeeds,
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.edge.TravelTime = TravelTimeMinutes(distance, b.effectiveSpeed())

	return b.edge
}

func (b *edgeBuild) effectiveSpeed() float64 {
	if b.edge.SpeedKmh > 0 {
		return b.edge.SpeedKmh
	}

	return b.speeds.Speed(b.edge.PathType)
}

// Reverse returns a new edge with swapped endpoints and the same distance,
// weight, travel time, path type and speed override.
func (e *Edge) Reverse() *Edge {
	return &Edge{
		From:       e.To,
		To:         e.From,
		Distance:   e.Distance,
		Weight:     e.Weight,
		TravelTime: e.TravelTime,
		PathType:   e.PathType,
		SpeedKmh:   e.SpeedKmh,
	}
}
