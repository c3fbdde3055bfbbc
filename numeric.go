package polyroot

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Values at or beyond this magnitude have no fractional digits left to round.
const maxExactFloat = 1 << 53

// Round rounds x to places fractional digits, half away from zero.
// NaN and ±Inf are returned unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	if math.Abs(x)*math.Pow10(places) >= maxExactFloat {
		return x
	}
	r, err := stats.Round(x, places)
	if err != nil {
		return math.NaN()
	}
	return r
}

// IsZero reports whether x rounds to zero at the given precision.
func IsZero(x float64, places int) bool {
	return Round(x, places) == 0
}

// SignChange reports whether y1 and y2 have strictly opposite signs.
// A zero on either side is not a sign change.
func SignChange(y1, y2 float64) bool {
	return y1 < 0 && y2 > 0 || y1 > 0 && y2 < 0
}

func IsEven(n int) bool { return n%2 == 0 }

// normalizeZero maps -0 to +0.
func normalizeZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
