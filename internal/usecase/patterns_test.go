package usecase

import (
	"testing"

	"momentum-screener/internal/domain"
)

func hasTag(tags []domain.SetupType, want domain.SetupType) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func TestDetectPatternsShortSeries(t *testing.T) {
	if tags := DetectPatterns(mkBars(flatCloses(49, 100))); tags != nil {
		t.Errorf("expected nil under 50 bars, got %v", tags)
	}
}

func TestDetectPatternsFlatBase(t *testing.T) {
	tags := DetectPatterns(mkBars(flatCloses(60, 100)))
	if !hasTag(tags, domain.SetupFlatBase) {
		t.Errorf("flat series near its high should tag flat_base, got %v", tags)
	}
}

func TestIsGapUp(t *testing.T) {
	closes := flatCloses(60, 100)
	bars := mkBars(closes)

	// Open 8% above the prior close on 5x volume.
	last := len(bars) - 1
	bars[last].Open = 108
	bars[last].Close = 110
	bars[last].High = 111
	bars[last].Low = 107
	bars[last].Volume = 5_000_000

	if !isGapUp(bars) {
		t.Error("expected gap-up on 8% gap with 5x volume")
	}

	bars[last].Volume = 1_000_000
	if isGapUp(bars) {
		t.Error("gap without a volume surge should not qualify")
	}
}

func TestIsFlagPattern(t *testing.T) {
	// 20-bar rally from 100 to 130, then a shallow 10-bar drift at 127.
	closes := make([]float64, 60)
	for i := 0; i < 30; i++ {
		closes[i] = 100
	}
	for i := 30; i < 50; i++ {
		closes[i] = 100 + float64(i-30)*1.5
	}
	for i := 50; i < 60; i++ {
		closes[i] = 127 + float64(i-50)*0.3
	}

	if !isFlagPattern(mkBars(closes), 20, 10) {
		t.Error("expected bull flag after a strong rally with a shallow pullback")
	}

	// A pullback retracing more than half the rally invalidates the flag.
	closes[50] = 127
	for i := 51; i < 60; i++ {
		closes[i] = 110
	}
	if isFlagPattern(mkBars(closes), 20, 10) {
		t.Error("deep pullback must not qualify as a flag")
	}
}
