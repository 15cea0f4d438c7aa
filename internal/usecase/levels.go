package usecase

import (
	"math"
	"sort"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// DetectSupportResistance clusters pivot highs and lows into scored
// support and resistance zones, returning the top 5 on each side sorted
// by strength descending.
func DetectSupportResistance(bars []domain.Bar, window, minTouches int) domain.SRLevels {
	if len(bars) < window*3 {
		return domain.SRLevels{}
	}

	highs := highSeries(bars)
	lows := lowSeries(bars)
	closes := closeSeries(bars)

	pivotHighs := indicators.PivotHighs(highs, window)
	pivotLows := indicators.PivotLows(lows, window)

	lastClose := closes[len(closes)-1]
	atrVal := indicators.SimpleATR(highs, lows, closes, 14)

	prices := make([]float64, 0, len(pivotHighs)+len(pivotLows))
	for _, p := range pivotHighs {
		prices = append(prices, p.Price)
	}
	for _, p := range pivotLows {
		prices = append(prices, p.Price)
	}

	// ATR-derived clustering tolerance, at least 1%.
	tolerance := 0.02
	if lastClose > 0 {
		tolerance = atrVal / lastClose
	}
	if tolerance < 0.01 {
		tolerance = 0.01
	}

	clusters := indicators.ClusterLevels(prices, tolerance)

	zoneWidth := atrVal * 0.3
	var levels []domain.Level
	for _, c := range clusters {
		if c.Touches < minTouches {
			continue
		}
		level := domain.Level{
			Price:      c.Price,
			Touches:    c.Touches,
			ZoneTop:    indicators.Round2(c.ZoneTop + zoneWidth),
			ZoneBottom: indicators.Round2(c.ZoneBottom - zoneWidth),
		}
		level.Strength = scoreLevel(level, closes)
		levels = append(levels, level)
	}

	var support, resistance []domain.Level
	for _, l := range levels {
		if l.Price < lastClose {
			l.LevelType = domain.LevelSupport
			support = append(support, l)
		} else {
			l.LevelType = domain.LevelResistance
			resistance = append(resistance, l)
		}
	}

	sort.SliceStable(support, func(i, j int) bool { return support[i].Strength > support[j].Strength })
	sort.SliceStable(resistance, func(i, j int) bool { return resistance[i].Strength > resistance[j].Strength })

	if len(support) > 5 {
		support = support[:5]
	}
	if len(resistance) > 5 {
		resistance = resistance[:5]
	}

	return domain.SRLevels{Support: support, Resistance: resistance}
}

// scoreLevel weights a zone by touch count plus a recency bonus for how
// recently the close series revisited it.
func scoreLevel(level domain.Level, closes []float64) float64 {
	totalBars := len(closes)
	lastTouchDist := totalBars
	for i := totalBars - 1; i >= 0; i-- {
		if closes[i] >= level.ZoneBottom && closes[i] <= level.ZoneTop {
			lastTouchDist = totalBars - i
			break
		}
	}
	recencyBonus := 50 - lastTouchDist
	if recencyBonus < 0 {
		recencyBonus = 0
	}
	return round1(float64(level.Touches*15 + recencyBonus))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
