package usecase

import (
	"math"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// RSRanking computes relative strength versus the benchmark over 1, 3 and
// 6 month horizons (21/63/126 trading days). Missing history or an
// undefined ratio yields 0 for that horizon.
func RSRanking(stockClose, benchClose []float64) map[string]float64 {
	periods := map[string]int{"1m": 21, "3m": 63, "6m": 126}
	scores := make(map[string]float64, len(periods))
	for label, period := range periods {
		if len(stockClose) < period || len(benchClose) < period {
			scores[label] = 0
			continue
		}
		rs := indicators.RelativeStrength(stockClose, benchClose, period)
		last := rs[len(rs)-1]
		if math.IsNaN(last) {
			last = 0
		}
		scores[label] = last
	}
	return scores
}

// IsVolumeSurging reports whether the latest bar's volume exceeds
// multiplier times the 20-day average.
func IsVolumeSurging(bars []domain.Bar, multiplier float64) bool {
	if len(bars) == 0 {
		return false
	}
	surges := indicators.VolumeSurge(volumeSeries(bars), multiplier)
	return surges[len(surges)-1]
}

// IsNear52wHigh reports whether the last close is within threshold of the
// 52-week high. The window is capped at 252 trailing bars.
func IsNear52wHigh(bars []domain.Bar, threshold float64) bool {
	if len(bars) < 5 {
		return false
	}
	lookback := len(bars)
	if lookback > 252 {
		lookback = 252
	}
	high52w := bars[len(bars)-lookback].High
	for _, b := range bars[len(bars)-lookback:] {
		if b.High > high52w {
			high52w = b.High
		}
	}
	lastClose := bars[len(bars)-1].Close
	return lastClose >= high52w*(1-threshold)
}

// IsEMAAligned reports whether the EMAs are stacked bullishly on the
// latest bar.
func IsEMAAligned(bars []domain.Bar) bool {
	if len(bars) == 0 {
		return false
	}
	stacked := indicators.EMAStacked(closeSeries(bars))
	return stacked[len(stacked)-1]
}

// DetectBreakout reports whether the last close cleared the highest high
// of the prior lookback bars (excluding the current bar) on a 1.5x volume
// surge.
func DetectBreakout(bars []domain.Bar, lookback int) bool {
	if len(bars) < lookback+1 {
		return false
	}
	resistance := bars[len(bars)-lookback-1].High
	for _, b := range bars[len(bars)-lookback-1 : len(bars)-1] {
		if b.High > resistance {
			resistance = b.High
		}
	}
	lastClose := bars[len(bars)-1].Close
	return lastClose > resistance && IsVolumeSurging(bars, 1.5)
}

// ComputeMomentumScore returns a composite 0-100 momentum score built from
// five independently capped 0-20 components: relative strength vs the
// benchmark, volume surge, proximity to the 52-week high, EMA alignment
// and breakout detection.
func ComputeMomentumScore(bars, benchBars []domain.Bar) float64 {
	score := 0.0

	// 1. Relative strength (0-20): RS of 1.1+ earns full points.
	if len(bars) >= 63 && len(benchBars) >= 63 {
		rs := RSRanking(closeSeries(bars), closeSeries(benchBars))
		score += math.Min(20, math.Max(0, (rs["3m"]-0.9)*100))
	}

	// 2. Volume surge (0-20)
	if IsVolumeSurging(bars, 1.5) {
		volumes := volumeSeries(bars)
		avgVol := indicators.VolumeSMA(volumes, 20)
		last := avgVol[len(avgVol)-1]
		if last > 0 {
			ratio := volumes[len(volumes)-1] / last
			score += math.Min(20, ratio*5)
		}
	}

	// 3. Near 52-week high (0-20), mutually exclusive tiers
	if IsNear52wHigh(bars, 0.05) {
		score += 20
	} else if IsNear52wHigh(bars, 0.10) {
		score += 12
	} else if IsNear52wHigh(bars, 0.15) {
		score += 6
	}

	// 4. EMA alignment (0-20), partial credit for close > EMA50
	if IsEMAAligned(bars) {
		score += 20
	} else if len(bars) > 0 {
		closes := closeSeries(bars)
		ema50 := indicators.EMA(closes, 50)
		if closes[len(closes)-1] > ema50[len(ema50)-1] {
			score += 8
		}
	}

	// 5. Breakout (0-20)
	if DetectBreakout(bars, 20) {
		score += 20
	}

	return math.Min(100, score)
}
