package utils

import "math"

// Round2 rounds a monetary amount to two decimal places. Intermediate sums
// stay unrounded; rounding happens once at the point a value is recorded or
// displayed.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
