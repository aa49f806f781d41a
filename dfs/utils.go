// SPDX-License-Identifier: MIT

package dfs

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// MinRotation rotates an open cycle so it starts at its smallest element.
func MinRotation(c []string) []string {
	if len(c) == 0 {
		return nil
	}
	best := 0
	for i, v := range c {
		if v < c[best] {
			best = i
		}
	}
	out := make([]string, 0, len(c))
	out = append(out, c[best:]...)

	return append(out, c[:best]...)
}
