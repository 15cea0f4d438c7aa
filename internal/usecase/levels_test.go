package usecase

import (
	"testing"

	"momentum-screener/internal/domain"
)

// triangleWave oscillates between base and base+10 with a 20-bar period:
// troughs at multiples of 20, peaks 10 bars later.
func triangleWave(n int, base float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		phase := i % 20
		if phase <= 10 {
			closes[i] = base + float64(phase)
		} else {
			closes[i] = base + float64(20-phase)
		}
	}
	return closes
}

func TestDetectSupportResistanceShortSeries(t *testing.T) {
	levels := DetectSupportResistance(mkBars(flatCloses(10, 100)), 5, 2)
	if len(levels.Support) != 0 || len(levels.Resistance) != 0 {
		t.Errorf("expected no levels for short series, got %+v", levels)
	}
}

func TestDetectSupportResistanceOscillation(t *testing.T) {
	bars := mkBars(triangleWave(100, 100))
	lastClose := bars[len(bars)-1].Close

	levels := DetectSupportResistance(bars, 5, 2)

	if len(levels.Support) == 0 {
		t.Fatal("expected at least one support level")
	}
	if len(levels.Resistance) == 0 {
		t.Fatal("expected at least one resistance level")
	}
	if len(levels.Support) > 5 || len(levels.Resistance) > 5 {
		t.Error("levels must be capped at 5 per side")
	}

	for _, l := range levels.Support {
		if l.Price >= lastClose {
			t.Errorf("support %v is not below last close %v", l.Price, lastClose)
		}
		if l.LevelType != domain.LevelSupport {
			t.Errorf("level type = %q, want support", l.LevelType)
		}
		if l.Touches < 2 {
			t.Errorf("support touches = %d, want >= 2", l.Touches)
		}
		if l.ZoneBottom >= l.ZoneTop {
			t.Errorf("zone [%v, %v] is inverted", l.ZoneBottom, l.ZoneTop)
		}
	}
	for _, l := range levels.Resistance {
		if l.Price < lastClose {
			t.Errorf("resistance %v is below last close %v", l.Price, lastClose)
		}
		if l.LevelType != domain.LevelResistance {
			t.Errorf("level type = %q, want resistance", l.LevelType)
		}
	}

	for i := 1; i < len(levels.Support); i++ {
		if levels.Support[i].Strength > levels.Support[i-1].Strength {
			t.Error("support levels must be sorted by strength descending")
		}
	}
}

func TestDetectSupportResistanceRespectsMinTouches(t *testing.T) {
	bars := mkBars(triangleWave(100, 100))
	levels := DetectSupportResistance(bars, 5, 100)
	if len(levels.Support) != 0 || len(levels.Resistance) != 0 {
		t.Error("an unreachable touch minimum must filter every cluster")
	}
}
