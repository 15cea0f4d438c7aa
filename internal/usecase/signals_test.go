package usecase

import (
	"testing"

	"momentum-screener/internal/domain"
)

func TestGenerateSignalsShortSeries(t *testing.T) {
	if got := GenerateSignals(mkBars(risingCloses(49, 100, 1)), "TEST"); got != nil {
		t.Errorf("expected nil for fewer than 50 bars, got %d signals", len(got))
	}
}

func TestGenerateSignalsBreakoutBuy(t *testing.T) {
	bars := breakoutBars(61, 60)
	signals := GenerateSignals(bars, "TEST")

	if len(signals) == 0 {
		t.Fatal("expected buy signals on a high-volume breakout")
	}

	var breakout *domain.Signal
	for i := range signals {
		s := &signals[i]
		if s.Action != domain.ActionBuy {
			t.Errorf("unexpected %s signal alongside buys", s.Action)
		}
		if s.StopLoss >= s.Entry || s.Entry >= s.Target {
			t.Errorf("%s: want stop < entry < target, got %v / %v / %v",
				s.SetupType, s.StopLoss, s.Entry, s.Target)
		}
		if s.Confidence <= 0 || s.Confidence > 1 {
			t.Errorf("%s: confidence %v out of (0,1]", s.SetupType, s.Confidence)
		}
		if s.Symbol != "TEST" {
			t.Errorf("symbol = %q, want TEST", s.Symbol)
		}
		if s.SetupType == domain.SetupBreakout {
			breakout = s
		}
	}

	if breakout == nil {
		t.Fatal("expected a breakout signal")
	}
	if breakout.Confidence != 0.75 {
		t.Errorf("breakout confidence = %v, want 0.75", breakout.Confidence)
	}
	if breakout.RRRatio != 2.0 {
		t.Errorf("breakout RR = %v, want 2.0", breakout.RRRatio)
	}
}

func TestGenerateSignalsTrailingStopSell(t *testing.T) {
	// Rally to ~149, then a steep 20-bar slide.
	closes := make([]float64, 60)
	for i := 0; i < 40; i++ {
		closes[i] = 100 + float64(i)*1.25
	}
	for i := 40; i < 60; i++ {
		closes[i] = 148 - float64(i-40)*2.5
	}

	signals := GenerateSignals(mkBars(closes), "TEST")
	if len(signals) == 0 {
		t.Fatal("expected sell signals after a trailing-stop break")
	}
	for _, s := range signals {
		if s.Action != domain.ActionSell {
			t.Errorf("unexpected %s signal in a collapsing trend", s.Action)
		}
		if s.StopLoss != 0 || s.Target != 0 || s.RRRatio != 0 {
			t.Errorf("sell signals are exit warnings, want zero stop/target/rr, got %+v", s)
		}
	}
}

func TestGenerateSignalsNeverConflicting(t *testing.T) {
	series := [][]float64{
		risingCloses(120, 50, 0.5),
		risingCloses(120, 200, -1),
		flatCloses(120, 100),
	}
	for _, closes := range series {
		signals := GenerateSignals(mkBars(closes), "TEST")
		hasBuy, hasSell := false, false
		for _, s := range signals {
			if s.Action == domain.ActionBuy {
				hasBuy = true
			}
			if s.Action == domain.ActionSell {
				hasSell = true
			}
		}
		if hasBuy && hasSell {
			t.Error("a symbol must never report buy and sell signals together")
		}
	}
}
