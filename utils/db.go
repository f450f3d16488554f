// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DBToLinear converts a decibel value to a linear amplitude multiplier.
func DBToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// LinearToDB converts a linear amplitude to decibels.
// Returns -Inf for zero or negative amplitudes.
func LinearToDB(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(linear)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
