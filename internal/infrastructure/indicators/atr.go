package indicators

import "math"

// ATR computes the Wilder-smoothed Average True Range.
func ATR(highs, lows, closes []float64, period int) []float64 {
	length := len(closes)
	atr := nanSlice(length)
	if length < period+1 {
		return atr
	}

	trs := make([]float64, length)
	trs[0] = highs[0] - lows[0]
	for i := 1; i < length; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])

		maxVal := hl
		if hc > maxVal {
			maxVal = hc
		}
		if lc > maxVal {
			maxVal = lc
		}
		trs[i] = maxVal
	}

	sumTR := 0.0
	for i := 0; i < period; i++ {
		sumTR += trs[i]
	}
	atr[period-1] = sumTR / float64(period)

	for i := period; i < length; i++ {
		atr[i] = (atr[i-1]*float64(period-1) + trs[i]) / float64(period)
	}

	return atr
}

// SimpleATR is the mean of the last period true ranges, used for the
// clustering tolerance in support/resistance detection.
func SimpleATR(highs, lows, closes []float64, period int) float64 {
	length := len(closes)
	if length < period+1 {
		return 0
	}

	sum := 0.0
	for i := length - period; i < length; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])

		tr := hl
		if hc > tr {
			tr = hc
		}
		if lc > tr {
			tr = lc
		}
		sum += tr
	}
	return sum / float64(period)
}
