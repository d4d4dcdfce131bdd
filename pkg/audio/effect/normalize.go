// ABOUTME: Peak normalization
// ABOUTME: Scales a buffer so its absolute peak equals a ceiling
package effect

import "math"

// Peak returns the largest absolute sample value in buf
func Peak(buf []float64) float64 {
	peak := 0.0
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize scales buf in place so that Peak(buf) == ceiling and returns
// the peak measured before scaling. Silent buffers are left unchanged.
func Normalize(buf []float64, ceiling float64) float64 {
	peak := Peak(buf)
	if peak == 0 {
		return 0
	}

	for i := range buf {
		buf[i] = buf[i] / peak * ceiling
	}

	return peak
}
