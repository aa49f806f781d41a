// SPDX-License-Identifier: MIT

package geo

import (
	"fmt"
	"strings"
)

// Unit is a length unit distances can be converted to.
type Unit int

const (
	Meters Unit = iota
	Kilometers
	Miles
	Feet
	Yards
)

// ParseUnit maps a unit name to a Unit. Unknown names fall back to Meters.
func ParseUnit(s string) Unit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km", "kilometers", "kilometres":
		return Kilometers
	case "mi", "mile", "miles":
		return Miles
	case "ft", "foot", "feet":
		return Feet
	case "yd", "yard", "yards":
		return Yards
	default:
		return Meters
	}
}

// ConvertDistance converts meters into u.
func ConvertDistance(meters float64, u Unit) float64 {
	switch u {
	case Kilometers:
		return meters / 1000
	case Miles:
		return meters / 1609.344
	case Feet:
		return meters * 3.28084
	case Yards:
		return meters * 1.09361
	default:
		return meters
	}
}

// FormatDistance renders meters for display: whole meters below one
// kilometer, kilometers with two decimals otherwise.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.2f km", meters/1000)
}
