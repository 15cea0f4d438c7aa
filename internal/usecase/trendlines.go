package usecase

import (
	"math"
	"sort"
	"time"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

const (
	trendlineTolerance  = 0.015
	trendlineMinTouches = 2
	projectionPeriods   = 10
)

// DetectUptrendLines fits lines through pairs of rising pivot lows and
// keeps those touched by at least minTouches pivots. Pairing is bounded to
// the 8 pivots after each origin to limit combinations. Returns the top 3
// after deduplication, sorted by touch count descending.
func DetectUptrendLines(bars []domain.Bar, minTouches int, tolerance float64) []domain.TrendLine {
	pivots := indicators.PivotLows(lowSeries(bars), 5)
	return fitTrendLines(bars, pivots, minTouches, tolerance, domain.TrendUp)
}

// DetectDowntrendLines mirrors DetectUptrendLines with falling pivot highs.
func DetectDowntrendLines(bars []domain.Bar, minTouches int, tolerance float64) []domain.TrendLine {
	pivots := indicators.PivotHighs(highSeries(bars), 5)
	return fitTrendLines(bars, pivots, minTouches, tolerance, domain.TrendDown)
}

func fitTrendLines(bars []domain.Bar, pivots []indicators.Pivot, minTouches int, tolerance float64, trend domain.TrendType) []domain.TrendLine {
	if len(pivots) < 2 {
		return nil
	}

	var lines []domain.TrendLine
	n := len(pivots)

	for i := 0; i < n-1; i++ {
		limit := i + 8
		if limit > n {
			limit = n
		}
		for j := i + 1; j < limit; j++ {
			p1, p2 := pivots[i], pivots[j]

			if trend == domain.TrendUp && p2.Price <= p1.Price {
				continue
			}
			if trend == domain.TrendDown && p2.Price >= p1.Price {
				continue
			}

			dx := p2.Index - p1.Index
			if dx == 0 {
				continue
			}
			slope := (p2.Price - p1.Price) / float64(dx)
			intercept := p1.Price - slope*float64(p1.Index)

			touches := 0
			for _, p := range pivots {
				expected := slope*float64(p.Index) + intercept
				if expected > 0 && math.Abs(p.Price-expected)/expected <= tolerance {
					touches++
				}
			}

			if touches >= minTouches {
				lines = append(lines, domain.TrendLine{
					StartIdx:   p1.Index,
					EndIdx:     p2.Index,
					StartPrice: p1.Price,
					EndPrice:   p2.Price,
					StartTime:  bars[p1.Index].Timestamp,
					EndTime:    bars[p2.Index].Timestamp,
					Slope:      slope,
					Intercept:  intercept,
					Touches:    touches,
					TrendType:  trend,
				})
			}
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Touches > lines[j].Touches })
	lines = deduplicateLines(lines, 0.3)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return lines
}

// deduplicateLines drops lines that are the same line found through
// different endpoints: slope ratio within slopeTol of an already-kept line
// and intercept within 5% of it.
func deduplicateLines(lines []domain.TrendLine, slopeTol float64) []domain.TrendLine {
	if len(lines) == 0 {
		return nil
	}
	kept := []domain.TrendLine{lines[0]}
	for _, line := range lines[1:] {
		isDup := false
		for _, existing := range kept {
			if existing.Slope == 0 {
				continue
			}
			slopeRatio := math.Abs(line.Slope / existing.Slope)
			if math.Abs(1-slopeRatio) < slopeTol {
				avgPrice := math.Abs(existing.Intercept)
				if avgPrice == 0 {
					avgPrice = 1
				}
				if math.Abs(line.Intercept-existing.Intercept)/avgPrice < 0.05 {
					isDup = true
					break
				}
			}
		}
		if !isDup {
			kept = append(kept, line)
		}
	}
	return kept
}

// ProjectTrendline extrapolates a line periodsAhead steps past the last
// bar, using the most recent inter-bar delta as the time step. Projection
// stops early if the projected price goes non-positive.
func ProjectTrendline(line domain.TrendLine, bars []domain.Bar, periodsAhead int) []domain.ProjectionPoint {
	lastIdx := len(bars) - 1
	lastTime := bars[lastIdx].Timestamp

	timeStep := 24 * time.Hour
	if len(bars) > 1 {
		timeStep = lastTime.Sub(bars[lastIdx-1].Timestamp)
	}

	var projection []domain.ProjectionPoint
	for step := 1; step <= periodsAhead; step++ {
		price := line.Slope*float64(lastIdx+step) + line.Intercept
		if price <= 0 {
			break
		}
		projection = append(projection, domain.ProjectionPoint{
			Time:  lastTime.Add(timeStep * time.Duration(step)),
			Price: indicators.Round2(price),
		})
	}
	return projection
}

// AnalyzeTrendlines detects all trendlines, attaches projections and
// determines the dominant trend from lines ending within the most recent
// 20 bars.
func AnalyzeTrendlines(bars []domain.Bar) domain.TrendAnalysis {
	if len(bars) < 30 {
		return domain.TrendAnalysis{DominantTrend: domain.BiasNeutral}
	}

	uptrends := DetectUptrendLines(bars, trendlineMinTouches, trendlineTolerance)
	downtrends := DetectDowntrendLines(bars, trendlineMinTouches, trendlineTolerance)

	for i := range uptrends {
		uptrends[i].Projection = ProjectTrendline(uptrends[i], bars, projectionPeriods)
	}
	for i := range downtrends {
		downtrends[i].Projection = ProjectTrendline(downtrends[i], bars, projectionPeriods)
	}

	lastIdx := len(bars) - 1
	recentUp, recentDown := 0, 0
	for _, l := range uptrends {
		if l.EndIdx > lastIdx-20 {
			recentUp++
		}
	}
	for _, l := range downtrends {
		if l.EndIdx > lastIdx-20 {
			recentDown++
		}
	}

	dominant := domain.BiasNeutral
	if recentUp > recentDown {
		dominant = domain.BiasBullish
	} else if recentDown > recentUp {
		dominant = domain.BiasBearish
	}

	return domain.TrendAnalysis{
		Uptrends:      uptrends,
		Downtrends:    downtrends,
		DominantTrend: dominant,
	}
}
