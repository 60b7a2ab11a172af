// SPDX-License-Identifier: Apache-2.0

package capacity

import "math"

const maxInt = math.MaxInt

// Round returns the smallest multiple of unit that is greater than or equal to n.
//
// The second return value is false if the result would overflow an int, or if unit is not positive.
func Round(n int, unit int) (int, bool) {
	if unit <= 0 || n < 0 {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	blocks := (n-1)/unit + 1
	if blocks > maxInt/unit {
		return 0, false
	}
	return blocks * unit, true
}

// Terminated returns the capacity required to hold size bytes followed by a terminator,
// rounded up to a whole number of units.
func Terminated(size int, unit int) (int, bool) {
	if size < 0 || size > maxInt-1 {
		return 0, false
	}
	return Round(size+1, unit)
}
