// Package score maps alignment e-values onto the [0, 1000] BED score range.
package score

import (
	"math"
)

const (
	// rawMax is the log-scaled value given to a zero e-value (255 + the 2.0 offset)
	rawMax = 257.0

	// Max is the BED score given to a zero e-value
	Max = 1000.0
)

// Transform converts an e-value to a BED score: -log10(evalue) + 2,
// linearly rescaled from [0, 257] to [0, 1000] and truncated toward zero.
//
// The result isn't clamped: e-values above 100 give negative scores.
func Transform(evalue float64) int {
	raw := -log10(evalue) + 2.0
	if math.IsInf(raw, 0) {
		raw = rawMax
	}
	return truncate(Lerp(raw, 0.0, rawMax, 0.0, Max))
}

// log10 is math.Log10, also accurate for subnormal x: math.Log10
// returns about -307.95 for every x below the smallest normal float64.
func log10(x float64) float64 {
	if x > 0 && x < 0x1p-1022 {
		return math.Log10(x*0x1p54) - 54*math.Log10(2)
	}
	return math.Log10(x)
}

// Lerp linearly interpolates value from the source range onto the target range.
func Lerp(value, sourceMin, sourceMax, targetMin, targetMax float64) float64 {
	return targetMin + (targetMax-targetMin)*((value-sourceMin)/(sourceMax-sourceMin))
}

// truncate toward zero, saturating at the int32 range. NaN is 0.
func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
