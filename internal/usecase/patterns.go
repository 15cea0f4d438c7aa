package usecase

import (
	"math"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// DetectPatterns returns the coarse setup tags present on the latest bars.
// Requires at least 50 bars.
func DetectPatterns(bars []domain.Bar) []domain.SetupType {
	if len(bars) < 50 {
		return nil
	}

	var patterns []domain.SetupType
	if isTightConsolidation(bars, 10) {
		patterns = append(patterns, domain.SetupTightConsolidation)
	}
	if isFlagPattern(bars, 20, 10) {
		patterns = append(patterns, domain.SetupFlag)
	}
	if isFlatBase(bars, 20) {
		patterns = append(patterns, domain.SetupFlatBase)
	}
	if isGapUp(bars) {
		patterns = append(patterns, domain.SetupGapUp)
	}
	return patterns
}

// isTightConsolidation flags a volatility squeeze: the high-low range of
// the last lookback bars is under 1.5x the 14-day ATR.
func isTightConsolidation(bars []domain.Bar, lookback int) bool {
	if len(bars) < lookback+14 {
		return false
	}
	atr := indicators.ATR(highSeries(bars), lowSeries(bars), closeSeries(bars), 14)
	atrVal := atr[len(atr)-1]
	if math.IsNaN(atrVal) || atrVal <= 0 {
		return false
	}
	recent := bars[len(bars)-lookback:]
	high := recent[0].High
	low := recent[0].Low
	for _, b := range recent {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high-low < atrVal*1.5
}

// isFlagPattern flags a bull flag: a >10% rally followed by a pullback
// retracing under half the rally, with EMAs still stacked.
func isFlagPattern(bars []domain.Bar, rallyLookback, pullbackLookback int) bool {
	needed := rallyLookback + pullbackLookback
	if len(bars) < needed {
		return false
	}

	rallyStart := bars[len(bars)-needed].Close
	rallyEnd := bars[len(bars)-pullbackLookback].Close
	rallyPct := 0.0
	if rallyStart > 0 {
		rallyPct = (rallyEnd - rallyStart) / rallyStart
	}
	if rallyPct < 0.10 {
		return false
	}

	pullbackLow := bars[len(bars)-pullbackLookback].Low
	for _, b := range bars[len(bars)-pullbackLookback:] {
		if b.Low < pullbackLow {
			pullbackLow = b.Low
		}
	}
	pullbackDepth := (rallyEnd - pullbackLow) / (rallyEnd - rallyStart)
	if pullbackDepth > 0.50 {
		return false
	}

	return IsEMAAligned(bars)
}

// isFlatBase flags a consolidation near the lookback-period high with a
// range under 10% of the high.
func isFlatBase(bars []domain.Bar, lookback int) bool {
	if len(bars) < lookback {
		return false
	}
	recent := bars[len(bars)-lookback:]
	periodHigh := recent[0].High
	periodLow := recent[0].Low
	for _, b := range recent {
		if b.High > periodHigh {
			periodHigh = b.High
		}
		if b.Low < periodLow {
			periodLow = b.Low
		}
	}
	lastClose := bars[len(bars)-1].Close

	nearHigh := lastClose >= periodHigh*0.95
	tightRange := (periodHigh-periodLow)/periodHigh < 0.10
	return nearHigh && tightRange
}

// isGapUp flags an earnings-style gap: open >3% above the prior close on
// more than 2x average volume.
func isGapUp(bars []domain.Bar) bool {
	if len(bars) < 21 {
		return false
	}
	last := bars[len(bars)-1]
	prevClose := bars[len(bars)-2].Close

	gapPct := 0.0
	if prevClose > 0 {
		gapPct = (last.Open - prevClose) / prevClose
	}

	avgVol := 0.0
	for _, b := range bars[len(bars)-20:] {
		avgVol += float64(b.Volume)
	}
	avgVol /= 20

	volRatio := 0.0
	if avgVol > 0 {
		volRatio = float64(last.Volume) / avgVol
	}

	return gapPct > 0.03 && volRatio > 2.0
}
