package lpdict

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute tolerance used by every comparison in the solver.
const Tolerance = 1e-7

// truncateStep keeps 10 decimal digits.
const truncateStep = 1e10

// wholeFloat is the magnitude from which a float64 has no fractional part.
const wholeFloat = 1 << 52

// IsClose reports whether a and b are equal within Tolerance.
func IsClose(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// IsZero reports whether v is within Tolerance of zero.
func IsZero(v float64) bool {
	return IsClose(v, 0)
}

// Truncate drops every decimal digit after the tenth.
// A value whose scaled form sits a few ulps away from an integer is snapped
// to that integer first, so Truncate(Truncate(v)) == Truncate(v).
// Values of magnitude 2^52 and above are returned unchanged.
func Truncate(v float64) float64 {
	if math.Abs(v) >= wholeFloat {
		return v
	}
	s := v * truncateStep
	r := math.Round(s)
	a := math.Abs(s)
	if math.Abs(s-r) <= 4*(math.Nextafter(a, math.Inf(1))-a) {
		return r / truncateStep
	}
	return math.Trunc(s) / truncateStep
}

// Normalize truncates v, or returns an exact zero when v is within Tolerance of zero.
func Normalize(v float64) float64 {
	if math.Abs(v) > Tolerance {
		return Truncate(v)
	}
	return 0
}
