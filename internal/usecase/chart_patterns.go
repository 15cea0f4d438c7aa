package usecase

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// DetectAllPatterns runs every geometric pattern detector and returns the
// combined list sorted by confidence descending. Detectors run
// independently; a panic in one never aborts the others. Requires at least
// 30 bars.
func DetectAllPatterns(bars []domain.Bar) []domain.ChartPattern {
	if len(bars) < 30 {
		return nil
	}

	detectors := []func([]domain.Bar) []domain.ChartPattern{
		DetectHeadAndShoulders,
		DetectInverseHeadAndShoulders,
		DetectDoubleTop,
		DetectDoubleBottom,
		DetectTriangle,
		DetectCupAndHandle,
		DetectWedge,
	}

	var patterns []domain.ChartPattern
	for _, detector := range detectors {
		patterns = append(patterns, runDetector(detector, bars)...)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Confidence > patterns[j].Confidence
	})
	return patterns
}

func runDetector(detector func([]domain.Bar) []domain.ChartPattern, bars []domain.Bar) (results []domain.ChartPattern) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
		}
	}()
	return detector(bars)
}

// DetectHeadAndShoulders finds bearish H&S reversals among pivot-high
// triples within the last 80 bars. Each head index is used at most once.
func DetectHeadAndShoulders(bars []domain.Bar) []domain.ChartPattern {
	pivots := recentPivots(indicators.PivotHighs(highSeries(bars), 5), len(bars)-80)
	if len(pivots) < 3 {
		return nil
	}

	lows := lowSeries(bars)
	var results []domain.ChartPattern
	usedHeads := make(map[int]bool)

	for i := 0; i+2 < len(pivots); i++ {
		ls, head, rs := pivots[i], pivots[i+1], pivots[i+2]

		if usedHeads[head.Index] {
			continue
		}
		if head.Price <= ls.Price || head.Price <= rs.Price {
			continue
		}

		avgShoulder := (ls.Price + rs.Price) / 2
		shoulderDiff := math.Abs(ls.Price-rs.Price) / avgShoulder
		if shoulderDiff > 0.05 {
			continue
		}
		if (head.Price-avgShoulder)/avgShoulder < 0.03 {
			continue
		}

		trough1 := minOver(lows, ls.Index, head.Index)
		trough2 := minOver(lows, head.Index, rs.Index)
		neckline := (trough1 + trough2) / 2

		height := head.Price - neckline
		target := neckline - height
		confidence := math.Max(0.5, 0.85-shoulderDiff*5)

		usedHeads[head.Index] = true
		results = append(results, domain.ChartPattern{
			PatternType: domain.PatternHeadAndShoulders,
			Confidence:  indicators.Round2(confidence),
			TargetPrice: indicators.Round2(target),
			Bias:        domain.BiasBearish,
			BoundaryPoints: []domain.BoundaryPoint{
				{Time: bars[ls.Index].Timestamp, Price: ls.Price},
				{Time: bars[ls.Index+(head.Index-ls.Index)/2].Timestamp, Price: trough1},
				{Time: bars[head.Index].Timestamp, Price: head.Price},
				{Time: bars[head.Index+(rs.Index-head.Index)/2].Timestamp, Price: trough2},
				{Time: bars[rs.Index].Timestamp, Price: rs.Price},
			},
			Description: fmt.Sprintf("Head & Shoulders: neckline at $%.2f, bearish target $%.2f. Head at $%.2f with shoulders at ~$%.2f.",
				neckline, target, head.Price, avgShoulder),
		})
	}

	return results
}

// DetectInverseHeadAndShoulders is the bullish mirror among pivot lows.
func DetectInverseHeadAndShoulders(bars []domain.Bar) []domain.ChartPattern {
	pivots := recentPivots(indicators.PivotLows(lowSeries(bars), 5), len(bars)-80)
	if len(pivots) < 3 {
		return nil
	}

	highs := highSeries(bars)
	var results []domain.ChartPattern
	usedHeads := make(map[int]bool)

	for i := 0; i+2 < len(pivots); i++ {
		ls, head, rs := pivots[i], pivots[i+1], pivots[i+2]

		if usedHeads[head.Index] {
			continue
		}
		if head.Price >= ls.Price || head.Price >= rs.Price {
			continue
		}

		avgShoulder := (ls.Price + rs.Price) / 2
		shoulderDiff := math.Abs(ls.Price-rs.Price) / avgShoulder
		if shoulderDiff > 0.05 {
			continue
		}
		if (avgShoulder-head.Price)/avgShoulder < 0.03 {
			continue
		}

		peak1 := maxOver(highs, ls.Index, head.Index)
		peak2 := maxOver(highs, head.Index, rs.Index)
		neckline := (peak1 + peak2) / 2

		height := neckline - head.Price
		target := neckline + height
		confidence := math.Max(0.5, 0.85-shoulderDiff*5)

		usedHeads[head.Index] = true
		results = append(results, domain.ChartPattern{
			PatternType: domain.PatternInverseHeadAndShoulders,
			Confidence:  indicators.Round2(confidence),
			TargetPrice: indicators.Round2(target),
			Bias:        domain.BiasBullish,
			BoundaryPoints: []domain.BoundaryPoint{
				{Time: bars[ls.Index].Timestamp, Price: ls.Price},
				{Time: bars[ls.Index+(head.Index-ls.Index)/2].Timestamp, Price: peak1},
				{Time: bars[head.Index].Timestamp, Price: head.Price},
				{Time: bars[head.Index+(rs.Index-head.Index)/2].Timestamp, Price: peak2},
				{Time: bars[rs.Index].Timestamp, Price: rs.Price},
			},
			Description: fmt.Sprintf("Inverse H&S: neckline at $%.2f, bullish target $%.2f. Bullish reversal pattern.",
				neckline, target),
		})
	}

	return results
}

// DetectDoubleTop finds consecutive pivot-high pairs at similar heights
// within the last 60 bars, separated by at least 10 bars with a trough at
// least 3% below. Each pivot is usable once.
func DetectDoubleTop(bars []domain.Bar) []domain.ChartPattern {
	const tolerance = 0.03
	pivots := recentPivots(indicators.PivotHighs(highSeries(bars), 5), len(bars)-60)
	if len(pivots) < 2 {
		return nil
	}

	lows := lowSeries(bars)
	var results []domain.ChartPattern
	used := make(map[int]bool)

	for i := 0; i+1 < len(pivots); i++ {
		p1, p2 := pivots[i], pivots[i+1]
		if used[p1.Index] || used[p2.Index] {
			continue
		}

		avgPeak := (p1.Price + p2.Price) / 2
		if math.Abs(p1.Price-p2.Price)/avgPeak > tolerance {
			continue
		}
		if p2.Index-p1.Index < 10 {
			continue
		}

		trough := minOver(lows, p1.Index, p2.Index)
		if (avgPeak-trough)/avgPeak < 0.03 {
			continue
		}

		target := trough - (avgPeak - trough)

		used[p1.Index] = true
		used[p2.Index] = true
		results = append(results, domain.ChartPattern{
			PatternType: domain.PatternDoubleTop,
			Confidence:  0.70,
			TargetPrice: indicators.Round2(target),
			Bias:        domain.BiasBearish,
			BoundaryPoints: []domain.BoundaryPoint{
				{Time: bars[p1.Index].Timestamp, Price: p1.Price},
				{Time: bars[(p1.Index+p2.Index)/2].Timestamp, Price: trough},
				{Time: bars[p2.Index].Timestamp, Price: p2.Price},
			},
			Description: fmt.Sprintf("Double Top at ~$%.2f with support at $%.2f. Bearish target $%.2f.",
				avgPeak, trough, target),
		})
	}

	return results
}

// DetectDoubleBottom is the bullish mirror of DetectDoubleTop.
func DetectDoubleBottom(bars []domain.Bar) []domain.ChartPattern {
	const tolerance = 0.03
	pivots := recentPivots(indicators.PivotLows(lowSeries(bars), 5), len(bars)-60)
	if len(pivots) < 2 {
		return nil
	}

	highs := highSeries(bars)
	var results []domain.ChartPattern
	used := make(map[int]bool)

	for i := 0; i+1 < len(pivots); i++ {
		p1, p2 := pivots[i], pivots[i+1]
		if used[p1.Index] || used[p2.Index] {
			continue
		}

		avgLow := (p1.Price + p2.Price) / 2
		if math.Abs(p1.Price-p2.Price)/avgLow > tolerance {
			continue
		}
		if p2.Index-p1.Index < 10 {
			continue
		}

		peak := maxOver(highs, p1.Index, p2.Index)
		if (peak-avgLow)/avgLow < 0.03 {
			continue
		}

		target := peak + (peak - avgLow)

		used[p1.Index] = true
		used[p2.Index] = true
		results = append(results, domain.ChartPattern{
			PatternType: domain.PatternDoubleBottom,
			Confidence:  0.70,
			TargetPrice: indicators.Round2(target),
			Bias:        domain.BiasBullish,
			BoundaryPoints: []domain.BoundaryPoint{
				{Time: bars[p1.Index].Timestamp, Price: p1.Price},
				{Time: bars[(p1.Index+p2.Index)/2].Timestamp, Price: peak},
				{Time: bars[p2.Index].Timestamp, Price: p2.Price},
			},
			Description: fmt.Sprintf("Double Bottom at ~$%.2f with resistance at $%.2f. Bullish target $%.2f.",
				avgLow, peak, target),
		})
	}

	return results
}

// DetectTriangle classifies ascending, descending and symmetrical
// triangles by the least-squares slopes of pivot highs and lows over
// trailing windows of 30/50/70 bars. Only the first match per triangle
// type across window sizes is kept.
func DetectTriangle(bars []domain.Bar) []domain.ChartPattern {
	if len(bars) < 40 {
		return nil
	}

	var results []domain.ChartPattern
	avgPrice := bars[len(bars)-1].Close

	for _, window := range []int{30, 50, 70} {
		if window >= len(bars)-10 {
			continue
		}
		recent := bars[len(bars)-window:]
		highPivots := indicators.PivotHighs(highSeries(recent), 3)
		lowPivots := indicators.PivotLows(lowSeries(recent), 3)
		if len(highPivots) < 2 || len(lowPivots) < 2 {
			continue
		}

		highSlope := pivotSlope(highPivots)
		lowSlope := pivotSlope(lowPivots)
		hPct := highSlope / avgPrice
		lPct := lowSlope / avgPrice

		var patternType domain.PatternType
		var bias domain.Bias
		var description string

		switch {
		case math.Abs(hPct) < 0.001 && lPct > 0.0005:
			patternType = domain.PatternAscendingTriangle
			bias = domain.BiasBullish
			description = "Ascending Triangle: flat resistance with rising support. Bullish breakout expected."
		case hPct < -0.0005 && math.Abs(lPct) < 0.001:
			patternType = domain.PatternDescendingTriangle
			bias = domain.BiasBearish
			description = "Descending Triangle: falling highs with flat support. Bearish breakdown likely."
		case hPct < -0.0003 && lPct > 0.0003:
			patternType = domain.PatternSymmetricalTriangle
			bias = domain.BiasNeutral
			description = "Symmetrical Triangle: converging highs and lows. Breakout direction uncertain."
		default:
			continue
		}

		if hasPatternType(results, patternType) {
			continue
		}

		rangeStart := math.Abs(highPivots[0].Price - lowPivots[0].Price)
		target := 0.0
		switch patternType {
		case domain.PatternAscendingTriangle:
			target = maxPivotPrice(highPivots) + rangeStart
		case domain.PatternDescendingTriangle:
			target = minPivotPrice(lowPivots) - rangeStart
		}

		var boundary []domain.BoundaryPoint
		offset := len(bars) - window
		for _, p := range highPivots {
			boundary = append(boundary, domain.BoundaryPoint{Time: bars[offset+p.Index].Timestamp, Price: p.Price})
		}
		for i := len(lowPivots) - 1; i >= 0; i-- {
			boundary = append(boundary, domain.BoundaryPoint{Time: bars[offset+lowPivots[i].Index].Timestamp, Price: lowPivots[i].Price})
		}

		pattern := domain.ChartPattern{
			PatternType:    patternType,
			Confidence:     0.65,
			Bias:           bias,
			BoundaryPoints: boundary,
			Description:    description,
		}
		if target != 0 {
			pattern.TargetPrice = indicators.Round2(target)
			pattern.Description += fmt.Sprintf(" Target: $%.2f", target)
		}
		results = append(results, pattern)
	}

	return results
}

// DetectCupAndHandle scans lookback windows of 50/60/80 bars for a
// U-shaped base with a shallow handle near the rim. Near-duplicate targets
// within 2% across window sizes are skipped.
func DetectCupAndHandle(bars []domain.Bar) []domain.ChartPattern {
	var results []domain.ChartPattern

	for _, lookback := range []int{50, 60, 80} {
		if len(bars) < lookback+10 {
			continue
		}
		window := bars[len(bars)-lookback:]
		closes := closeSeries(window)

		leftMaxIdx := argMax(closes[:lookback/3])
		leftMax := closes[leftMaxIdx]

		midStart := lookback / 4
		midEnd := lookback * 3 / 4
		cupBottomIdx := midStart + argMin(closes[midStart:midEnd])
		cupBottom := closes[cupBottomIdx]

		// Cup depth must be 8-40% of the left rim.
		cupDepthPct := (leftMax - cupBottom) / leftMax
		if cupDepthPct < 0.08 || cupDepthPct > 0.40 {
			continue
		}

		rightSection := closes[midEnd:]
		if len(rightSection) == 0 {
			continue
		}
		rightMaxIdx := argMax(rightSection)
		rightMax := rightSection[rightMaxIdx]
		if math.Abs(rightMax-leftMax)/leftMax > 0.05 {
			continue
		}

		// Handle: shallow pullback over the final 15 bars.
		handle := closes[len(closes)-15:]
		handleHigh := handle[argMax(handle)]
		handleLow := handle[argMin(handle)]
		handleDepth := (handleHigh - handleLow) / handleHigh
		if handleDepth > cupDepthPct*0.6 {
			continue
		}

		breakoutLevel := rightMax
		target := breakoutLevel + (breakoutLevel - cupBottom)

		if hasNearbyTarget(results, domain.PatternCupAndHandle, indicators.Round2(target), 0.02) {
			continue
		}

		results = append(results, domain.ChartPattern{
			PatternType: domain.PatternCupAndHandle,
			Confidence:  0.70,
			TargetPrice: indicators.Round2(target),
			Bias:        domain.BiasBullish,
			BoundaryPoints: []domain.BoundaryPoint{
				{Time: window[leftMaxIdx].Timestamp, Price: leftMax},
				{Time: window[cupBottomIdx].Timestamp, Price: cupBottom},
				{Time: window[midEnd+rightMaxIdx].Timestamp, Price: rightMax},
			},
			Description: fmt.Sprintf("Cup & Handle (%dd): rim at $%.2f, cup depth %.0f%%. Bullish target $%.2f.",
				lookback, breakoutLevel, cupDepthPct*100, target),
		})
	}

	return results
}

// DetectWedge finds rising (bearish) and falling (bullish) wedges over
// windows of 30/40/55 bars: both pivot slopes share sign, exceed the
// minimum slope threshold and converge. First match per type wins.
func DetectWedge(bars []domain.Bar) []domain.ChartPattern {
	if len(bars) < 30 {
		return nil
	}

	var results []domain.ChartPattern
	foundTypes := make(map[domain.PatternType]bool)
	avgPrice := bars[len(bars)-1].Close

	for _, window := range []int{30, 40, 55} {
		if window >= len(bars)-10 {
			continue
		}
		recent := bars[len(bars)-window:]
		highPivots := indicators.PivotHighs(highSeries(recent), 3)
		lowPivots := indicators.PivotLows(lowSeries(recent), 3)
		if len(highPivots) < 2 || len(lowPivots) < 2 {
			continue
		}

		hPct := pivotSlope(highPivots) / avgPrice
		lPct := pivotSlope(lowPivots) / avgPrice
		offset := len(bars) - window

		lastHigh := highPivots[len(highPivots)-1]
		lastLow := lowPivots[len(lowPivots)-1]
		boundary := []domain.BoundaryPoint{
			{Time: bars[offset+highPivots[0].Index].Timestamp, Price: highPivots[0].Price},
			{Time: bars[offset+lastHigh.Index].Timestamp, Price: lastHigh.Price},
			{Time: bars[offset+lastLow.Index].Timestamp, Price: lastLow.Price},
			{Time: bars[offset+lowPivots[0].Index].Timestamp, Price: lowPivots[0].Price},
		}

		if hPct > 0.0003 && lPct > 0.0003 && lPct > hPct && !foundTypes[domain.PatternRisingWedge] {
			patternRange := lastHigh.Price - lastLow.Price
			target := lastLow.Price - patternRange
			foundTypes[domain.PatternRisingWedge] = true
			results = append(results, domain.ChartPattern{
				PatternType:    domain.PatternRisingWedge,
				Confidence:     0.60,
				TargetPrice:    indicators.Round2(target),
				Bias:           domain.BiasBearish,
				BoundaryPoints: boundary,
				Description: fmt.Sprintf("Rising Wedge (%dd): bearish, both highs and lows rising but converging. Target $%.2f.",
					window, target),
			})
		}

		if hPct < -0.0003 && lPct < -0.0003 && hPct < lPct && !foundTypes[domain.PatternFallingWedge] {
			patternRange := lastHigh.Price - lastLow.Price
			target := lastHigh.Price + patternRange
			foundTypes[domain.PatternFallingWedge] = true
			results = append(results, domain.ChartPattern{
				PatternType:    domain.PatternFallingWedge,
				Confidence:     0.60,
				TargetPrice:    indicators.Round2(target),
				Bias:           domain.BiasBullish,
				BoundaryPoints: boundary,
				Description: fmt.Sprintf("Falling Wedge (%dd): bullish, both highs and lows falling but converging. Target $%.2f.",
					window, target),
			})
		}
	}

	return results
}

// pivotSlope is the least-squares slope of pivot price over pivot index.
func pivotSlope(pivots []indicators.Pivot) float64 {
	xs := make([]float64, len(pivots))
	ys := make([]float64, len(pivots))
	for i, p := range pivots {
		xs[i] = float64(p.Index)
		ys[i] = p.Price
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

func recentPivots(pivots []indicators.Pivot, cutoff int) []indicators.Pivot {
	var recent []indicators.Pivot
	for _, p := range pivots {
		if p.Index > cutoff {
			recent = append(recent, p)
		}
	}
	return recent
}

func hasPatternType(patterns []domain.ChartPattern, t domain.PatternType) bool {
	for _, p := range patterns {
		if p.PatternType == t {
			return true
		}
	}
	return false
}

func hasNearbyTarget(patterns []domain.ChartPattern, t domain.PatternType, target, tolerance float64) bool {
	for _, p := range patterns {
		if p.PatternType == t && math.Abs(p.TargetPrice-target)/target < tolerance {
			return true
		}
	}
	return false
}

func minOver(vals []float64, start, end int) float64 {
	min := vals[start]
	for _, v := range vals[start:end] {
		if v < min {
			min = v
		}
	}
	return min
}

func maxOver(vals []float64, start, end int) float64 {
	max := vals[start]
	for _, v := range vals[start:end] {
		if v > max {
			max = v
		}
	}
	return max
}

func maxPivotPrice(pivots []indicators.Pivot) float64 {
	max := pivots[0].Price
	for _, p := range pivots {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

func minPivotPrice(pivots []indicators.Pivot) float64 {
	min := pivots[0].Price
	for _, p := range pivots {
		if p.Price < min {
			min = p.Price
		}
	}
	return min
}

func argMax(vals []float64) int {
	idx := 0
	for i, v := range vals {
		if v > vals[idx] {
			idx = i
		}
	}
	return idx
}

func argMin(vals []float64) int {
	idx := 0
	for i, v := range vals {
		if v < vals[idx] {
			idx = i
		}
	}
	return idx
}
