// Package epsilon implements tolerance-based floating point
// comparison. It is the single source of truth for "close enough"
// throughout the geom packages: anything that compares two floats
// goes through Equal rather than choosing its own tolerance.
package epsilon

import "math"

// Eps is the shared absolute tolerance.
const Eps = 1e-6

// Equal reports whether a and b differ by less than Eps.
//
// NaN is never equal to anything, itself included.
func Equal(a, b float64) bool {
	return EqualWithin(a, b, Eps)
}

// EqualWithin reports whether a and b differ by less than eps.
func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
