package indicators

import "math"

// EMA computes the Exponential Moving Average, seeded with the simple
// average of the first period values. Indices before period-1 are NaN.
func EMA(data []float64, period int) []float64 {
	ema := nanSlice(len(data))
	if len(data) < period {
		return ema
	}

	k := 2.0 / (float64(period) + 1.0)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += data[i]
	}
	ema[period-1] = sum / float64(period)

	for i := period; i < len(data); i++ {
		ema[i] = (data[i] * k) + (ema[i-1] * (1 - k))
	}

	return ema
}

// SMA computes the Simple Moving Average. Indices before period-1 are NaN.
func SMA(data []float64, period int) []float64 {
	sma := nanSlice(len(data))
	if len(data) < period {
		return sma
	}

	sum := 0.0
	for i, v := range data {
		sum += v
		if i >= period {
			sum -= data[i-period]
		}
		if i >= period-1 {
			sma[i] = sum / float64(period)
		}
	}
	return sma
}

// emaOver applies EMA smoothing to a series that may carry a NaN warm-up
// prefix, seeding from the first stretch of defined values.
func emaOver(data []float64, period int) []float64 {
	start := 0
	for start < len(data) && math.IsNaN(data[start]) {
		start++
	}
	out := nanSlice(len(data))
	if len(data)-start < period {
		return out
	}
	tail := EMA(data[start:], period)
	copy(out[start:], tail)
	return out
}
