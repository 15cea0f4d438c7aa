package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// FibonacciLevels computes retracement (23.6/38.2/50/61.8%) and extension
// (127.2/161.8%) levels from the most significant recent pivot swing.
// Retracements are only kept between the swing and the current price;
// extensions only beyond the current price in the trend direction.
func FibonacciLevels(bars []domain.Bar) []domain.PriceProjection {
	if len(bars) < 30 {
		return nil
	}

	pivotHighs := indicators.PivotHighs(highSeries(bars), 5)
	pivotLows := indicators.PivotLows(lowSeries(bars), 5)
	if len(pivotHighs) == 0 || len(pivotLows) == 0 {
		return nil
	}

	recentHigh := pivotHighs[0]
	for _, p := range pivotHighs {
		if p.Price > recentHigh.Price {
			recentHigh = p
		}
	}
	recentLow := pivotLows[0]
	for _, p := range pivotLows {
		if p.Price < recentLow.Price {
			recentLow = p
		}
	}

	swingRange := recentHigh.Price - recentLow.Price
	if swingRange <= 0 {
		return nil
	}
	swingBars := recentHigh.Index - recentLow.Index
	if swingBars < 0 {
		swingBars = -swingBars
	}

	lastClose := bars[len(bars)-1].Close

	// Days-to-target scales with how fast the originating swing moved.
	estimateDays := func(targetPrice float64) int {
		if swingBars == 0 || swingRange == 0 {
			return 20
		}
		priceDist := math.Abs(targetPrice - lastClose)
		days := int(priceDist / swingRange * float64(swingBars))
		if days < 5 {
			days = 5
		}
		if days > 120 {
			days = 120
		}
		return days
	}

	retracements := []struct {
		ratio float64
		label string
	}{
		{0.236, "Fib 23.6% retracement"},
		{0.382, "Fib 38.2% retracement"},
		{0.500, "Fib 50.0% retracement"},
		{0.618, "Fib 61.8% retracement"},
	}
	extensions := []struct {
		ratio float64
		label string
	}{
		{1.272, "Fib 127.2% extension"},
		{1.618, "Fib 161.8% extension"},
	}

	retraceConfidence := func(ratio float64) float64 {
		if ratio == 0.382 || ratio == 0.618 {
			return 0.65
		}
		return 0.5
	}

	var projections []domain.PriceProjection

	if recentHigh.Index > recentLow.Index {
		// Upswing: retracements are support below, extensions bullish targets.
		for _, fib := range retracements {
			price := recentHigh.Price - swingRange*fib.ratio
			if price < lastClose {
				projections = append(projections, domain.PriceProjection{
					Price:          indicators.Round2(price),
					Confidence:     retraceConfidence(fib.ratio),
					Reason:         fib.label,
					ProjectionType: domain.BiasBearish,
					EstimatedDays:  estimateDays(price),
				})
			}
		}
		for _, fib := range extensions {
			price := recentLow.Price + swingRange*fib.ratio
			if price > lastClose {
				projections = append(projections, domain.PriceProjection{
					Price:          indicators.Round2(price),
					Confidence:     0.45,
					Reason:         fib.label,
					ProjectionType: domain.BiasBullish,
					EstimatedDays:  estimateDays(price),
				})
			}
		}
	} else {
		// Downswing: retracements are resistance above, extensions bearish.
		for _, fib := range retracements {
			price := recentLow.Price + swingRange*fib.ratio
			if price > lastClose {
				projections = append(projections, domain.PriceProjection{
					Price:          indicators.Round2(price),
					Confidence:     retraceConfidence(fib.ratio),
					Reason:         fib.label,
					ProjectionType: domain.BiasBullish,
					EstimatedDays:  estimateDays(price),
				})
			}
		}
		for _, fib := range extensions {
			price := recentHigh.Price - swingRange*fib.ratio
			if price < lastClose && price > 0 {
				projections = append(projections, domain.PriceProjection{
					Price:          indicators.Round2(price),
					Confidence:     0.45,
					Reason:         fib.label,
					ProjectionType: domain.BiasBearish,
					EstimatedDays:  estimateDays(price),
				})
			}
		}
	}

	return projections
}

// ProjectPriceZones merges pattern targets, trendline projection endpoints
// and Fibonacci levels into a deduplicated target list sorted by
// confidence, capped at 6 entries.
func ProjectPriceZones(bars []domain.Bar, patterns []domain.ChartPattern, trends domain.TrendAnalysis) []domain.PriceProjection {
	var projections []domain.PriceProjection
	lastClose := bars[len(bars)-1].Close

	// 1. Pattern measured-move targets.
	for _, pattern := range patterns {
		if pattern.TargetPrice == 0 {
			continue
		}
		projType := domain.BiasBearish
		if pattern.TargetPrice > lastClose {
			projType = domain.BiasBullish
		}
		projections = append(projections, domain.PriceProjection{
			Price:          pattern.TargetPrice,
			Confidence:     pattern.Confidence,
			Reason:         patternReason(pattern.PatternType),
			ProjectionType: projType,
			EstimatedDays:  patternWidthDays(bars, pattern),
		})
	}

	// 2. Trendline projection endpoints, confidence scaled by touches.
	for _, line := range trends.Uptrends {
		if len(line.Projection) == 0 {
			continue
		}
		last := line.Projection[len(line.Projection)-1]
		projections = append(projections, domain.PriceProjection{
			Price:          last.Price,
			Confidence:     math.Min(0.3+float64(line.Touches)*0.1, 0.7),
			Reason:         fmt.Sprintf("Uptrend projection (%d touches)", line.Touches),
			ProjectionType: domain.BiasBullish,
			EstimatedDays:  len(line.Projection),
		})
	}
	for _, line := range trends.Downtrends {
		if len(line.Projection) == 0 {
			continue
		}
		last := line.Projection[len(line.Projection)-1]
		if last.Price <= 0 {
			continue
		}
		projections = append(projections, domain.PriceProjection{
			Price:          last.Price,
			Confidence:     math.Min(0.3+float64(line.Touches)*0.1, 0.7),
			Reason:         fmt.Sprintf("Downtrend projection (%d touches)", line.Touches),
			ProjectionType: domain.BiasBearish,
			EstimatedDays:  len(line.Projection),
		})
	}

	// 3. Fibonacci levels.
	projections = append(projections, FibonacciLevels(bars)...)

	projections = deduplicateProjections(projections, 0.01)

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Confidence > projections[j].Confidence
	})
	if len(projections) > 6 {
		projections = projections[:6]
	}
	return projections
}

// patternWidthDays estimates days-to-target from the pattern's boundary
// time span, clamped to at most 90.
func patternWidthDays(bars []domain.Bar, pattern domain.ChartPattern) int {
	width := 20
	bp := pattern.BoundaryPoints
	if len(bp) >= 2 {
		firstIdx := 0
		for i, b := range bars {
			if !b.Timestamp.Before(bp[0].Time) {
				firstIdx = i
				break
			}
		}
		lastIdx := len(bars) - 1
		for i, b := range bars {
			if !b.Timestamp.Before(bp[len(bp)-1].Time) {
				lastIdx = i
				break
			}
		}
		width = lastIdx - firstIdx
		if width < 10 {
			width = 10
		}
	}
	if width > 90 {
		width = 90
	}
	return width
}

func patternReason(t domain.PatternType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " target"
}

// deduplicateProjections keeps the higher-confidence entry when two
// projections land within tolerance of each other.
func deduplicateProjections(projections []domain.PriceProjection, tolerance float64) []domain.PriceProjection {
	if len(projections) == 0 {
		return nil
	}
	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Confidence > projections[j].Confidence
	})
	var kept []domain.PriceProjection
	for _, proj := range projections {
		isDup := false
		for _, existing := range kept {
			if existing.Price > 0 && math.Abs(proj.Price-existing.Price)/existing.Price < tolerance {
				isDup = true
				break
			}
		}
		if !isDup {
			kept = append(kept, proj)
		}
	}
	return kept
}
