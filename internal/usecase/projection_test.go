package usecase

import (
	"testing"

	"momentum-screener/internal/domain"
)

// swingCloses falls from 100 to 80, rallies to 120, then pulls back to 105.
func swingCloses() []float64 {
	closes := make([]float64, 60)
	for i := 0; i <= 15; i++ {
		closes[i] = 100 - float64(i)*20.0/15.0
	}
	for i := 16; i <= 40; i++ {
		closes[i] = 80 + float64(i-15)*40.0/25.0
	}
	for i := 41; i < 60; i++ {
		closes[i] = 120 - float64(i-40)*15.0/19.0
	}
	return closes
}

func TestFibonacciLevelsUpswing(t *testing.T) {
	projections := FibonacciLevels(mkBars(swingCloses()))

	// Swing 79 -> 121 with the last close at ~105: the 23.6% retracement
	// sits above price and is dropped; three retracements below, two
	// extensions above.
	if len(projections) != 5 {
		t.Fatalf("expected 5 levels, got %d: %+v", len(projections), projections)
	}

	bearish, bullish := 0, 0
	for _, p := range projections {
		switch p.ProjectionType {
		case domain.BiasBearish:
			bearish++
		case domain.BiasBullish:
			bullish++
		}
		if p.EstimatedDays < 5 || p.EstimatedDays > 120 {
			t.Errorf("%s: estimated days %d out of [5,120]", p.Reason, p.EstimatedDays)
		}
	}
	if bearish != 3 {
		t.Errorf("bearish retracements = %d, want 3", bearish)
	}
	if bullish != 2 {
		t.Errorf("bullish extensions = %d, want 2", bullish)
	}

	confidences := map[float64]int{}
	for _, p := range projections {
		confidences[p.Confidence]++
	}
	if confidences[0.65] != 2 {
		t.Errorf("expected two 0.65-confidence levels (38.2/61.8), got %d", confidences[0.65])
	}
	if confidences[0.45] != 2 {
		t.Errorf("expected two 0.45-confidence extensions, got %d", confidences[0.45])
	}
}

func TestFibonacciLevelsShortSeries(t *testing.T) {
	if projections := FibonacciLevels(mkBars(risingCloses(20, 100, 1))); projections != nil {
		t.Errorf("expected nil for short series, got %d levels", len(projections))
	}
}

func TestProjectPriceZonesMergesAndCaps(t *testing.T) {
	bars := mkBars(swingCloses())
	patterns := []domain.ChartPattern{
		{PatternType: domain.PatternDoubleBottom, Confidence: 0.9, TargetPrice: 150},
		{PatternType: domain.PatternSymmetricalTriangle, Confidence: 0.65}, // no target
	}

	projections := ProjectPriceZones(bars, patterns, domain.TrendAnalysis{})

	if len(projections) == 0 {
		t.Fatal("expected merged projections")
	}
	if len(projections) > 6 {
		t.Errorf("projections must be capped at 6, got %d", len(projections))
	}

	if projections[0].Price != 150 || projections[0].Confidence != 0.9 {
		t.Errorf("highest-confidence projection = %+v, want the 150 pattern target", projections[0])
	}
	if projections[0].Reason != "Double Bottom target" {
		t.Errorf("reason = %q, want %q", projections[0].Reason, "Double Bottom target")
	}

	for i := 1; i < len(projections); i++ {
		if projections[i].Confidence > projections[i-1].Confidence {
			t.Error("projections must be sorted by confidence descending")
		}
	}

	// No two kept projections may land within 1% of each other.
	for i := range projections {
		for j := i + 1; j < len(projections); j++ {
			a, b := projections[i].Price, projections[j].Price
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			if a > 0 && diff/a < 0.01 {
				t.Errorf("projections %v and %v are within 1%%", a, b)
			}
		}
	}
}
