// SPDX-License-Identifier: MIT

package core

import "strconv"

// Distance is an optional path cost. The zero value means "unreached", so a
// freshly allocated distance table needs no sentinel initialization.
type Distance struct {
	value   float64
	reached bool
}

// Finite returns a reached Distance of v.
func Finite(v float64) Distance { return Distance{value: v, reached: true} }

// Unreached returns the zero Distance.
func Unreached() Distance { return Distance{} }

// Reached reports whether d holds a value.
func (d Distance) Reached() bool { return d.reached }

// Value returns the cost and whether it is reached.
func (d Distance) Value() (float64, bool) { return d.value, d.reached }

// Less orders reached distances by value; unreached is greater than any
// reached distance and not less than another unreached one.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reached:
		return false
	case !o.reached:
		return true
	default:
		return d.value < o.value
	}
}

// Add extends d by w. Unreached stays unreached.
func (d Distance) Add(w float64) Distance {
	if !d.reached {
		return d
	}

	return Finite(d.value + w)
}

// String renders the value, or "unreached".
func (d Distance) String() string {
	if !d.reached {
		return "unreached"
	}

	return strconv.FormatFloat(d.value, 'f', -1, 64)
}
