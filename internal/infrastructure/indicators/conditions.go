package indicators

// Derived boolean conditions over price series. All of these are false
// wherever a contributing indicator is still in its NaN warm-up.

// EMAStacked flags bars where close > EMA9 > EMA21 > EMA50, the bullish
// alignment used by the momentum scorer and signal engine.
func EMAStacked(closes []float64) []bool {
	ema9 := EMA(closes, 9)
	ema21 := EMA(closes, 21)
	ema50 := EMA(closes, 50)

	out := make([]bool, len(closes))
	for i := range closes {
		out[i] = closes[i] > ema9[i] && ema9[i] > ema21[i] && ema21[i] > ema50[i]
	}
	return out
}

// Crossover flags the exact bar where the fast EMA moves from at-or-below
// to above the slow EMA. The strict prior-bar comparison makes it fire only
// once per crossing.
func Crossover(closes []float64, fast, slow int) []bool {
	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	out := make([]bool, len(closes))
	for i := 1; i < len(closes); i++ {
		out[i] = fastEMA[i] > slowEMA[i] && fastEMA[i-1] <= slowEMA[i-1]
	}
	return out
}

// Crossunder is the bearish mirror of Crossover.
func Crossunder(closes []float64, fast, slow int) []bool {
	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)

	out := make([]bool, len(closes))
	for i := 1; i < len(closes); i++ {
		out[i] = fastEMA[i] < slowEMA[i] && fastEMA[i-1] >= slowEMA[i-1]
	}
	return out
}

// RSIPullback flags bars where the EMAs are stacked bullishly and RSI sits
// in the 40-50 dip-buy zone.
func RSIPullback(closes []float64) []bool {
	rsi := RSI(closes, 14)
	stacked := EMAStacked(closes)

	out := make([]bool, len(closes))
	for i := range closes {
		out[i] = stacked[i] && rsi[i] >= 40 && rsi[i] <= 50
	}
	return out
}

// ATRTrailingStop is the rolling 20-bar high minus multiplier times ATR.
func ATRTrailingStop(highs, lows, closes []float64, multiplier float64) []float64 {
	atr := ATR(highs, lows, closes, 14)
	rollingHigh := RollingMax(highs, 20)

	out := nanSlice(len(closes))
	for i := range closes {
		out[i] = rollingHigh[i] - multiplier*atr[i]
	}
	return out
}

// RSIDivergence flags bearish divergence: close equals its rolling max over
// lookback bars while RSI does not equal its own rolling max.
func RSIDivergence(closes []float64, lookback int) []bool {
	rsi := RSI(closes, 14)
	closeMax := RollingMax(closes, lookback)
	rsiMax := RollingMax(rsi, lookback)

	out := make([]bool, len(closes))
	for i := range closes {
		priceNewHigh := closes[i] == closeMax[i]
		rsiNewHigh := rsi[i] == rsiMax[i]
		out[i] = priceNewHigh && !rsiNewHigh
	}
	return out
}
