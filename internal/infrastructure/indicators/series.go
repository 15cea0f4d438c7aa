package indicators

import "math"

// Series values before an indicator's warm-up period are NaN. Comparisons
// against NaN are false, so boolean conditions never fire during warm-up.

func nan() float64 { return math.NaN() }

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// RollingMax returns the max over the trailing window ending at each index.
// NaN until the window is full or while the window contains a NaN.
func RollingMax(data []float64, window int) []float64 {
	out := nanSlice(len(data))
	for i := window - 1; i < len(data); i++ {
		maxVal := data[i-window+1]
		ok := true
		for j := i - window + 2; j <= i; j++ {
			if math.IsNaN(data[j]) {
				ok = false
				break
			}
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		if ok && !math.IsNaN(maxVal) {
			out[i] = maxVal
		}
	}
	return out
}

// RollingMin is the mirror of RollingMax.
func RollingMin(data []float64, window int) []float64 {
	out := nanSlice(len(data))
	for i := window - 1; i < len(data); i++ {
		minVal := data[i-window+1]
		ok := true
		for j := i - window + 2; j <= i; j++ {
			if math.IsNaN(data[j]) {
				ok = false
				break
			}
			if data[j] < minVal {
				minVal = data[j]
			}
		}
		if ok && !math.IsNaN(minVal) {
			out[i] = minVal
		}
	}
	return out
}

// Round2 rounds to two decimal places, the precision used for all price
// levels and ratios surfaced to callers.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
