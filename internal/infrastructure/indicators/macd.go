package indicators

import "math"

// MACD returns the MACD line, signal line and histogram using the standard
// 12/26/9 EMA convention.
func MACD(closes []float64) (line, signal, hist []float64) {
	ema12 := EMA(closes, 12)
	ema26 := EMA(closes, 26)

	line = nanSlice(len(closes))
	for i := range closes {
		if !math.IsNaN(ema12[i]) && !math.IsNaN(ema26[i]) {
			line[i] = ema12[i] - ema26[i]
		}
	}

	signal = emaOver(line, 9)

	hist = nanSlice(len(closes))
	for i := range closes {
		if !math.IsNaN(line[i]) && !math.IsNaN(signal[i]) {
			hist[i] = line[i] - signal[i]
		}
	}
	return line, signal, hist
}
