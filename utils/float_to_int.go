// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt16 scales a normalized sample in [-1, 1] to the int16 range,
// rounding to the nearest step and clamping anything outside the range.
func FloatToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * math.MaxInt16)
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat is the inverse of FloatToInt16 for in-range values.
func Int16ToFloat(s int16) float64 {
	return float64(s) / math.MaxInt16
}
