package indicators

// VWAP computes cumulative Volume Weighted Average Price from the start of
// the series (not session-reset).
func VWAP(highs, lows, closes, volumes []float64) []float64 {
	length := len(closes)
	vwap := nanSlice(length)

	cumulativeTPV := 0.0
	cumulativeVol := 0.0

	for i := 0; i < length; i++ {
		typicalPrice := (highs[i] + lows[i] + closes[i]) / 3.0
		cumulativeTPV += typicalPrice * volumes[i]
		cumulativeVol += volumes[i]

		if cumulativeVol > 0 {
			vwap[i] = cumulativeTPV / cumulativeVol
		}
	}

	return vwap
}
