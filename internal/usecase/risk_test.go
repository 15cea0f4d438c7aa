package usecase

import "testing"

func TestCalculateRR(t *testing.T) {
	if got := CalculateRR(50, 47, 56); got != 2.0 {
		t.Errorf("CalculateRR(50, 47, 56) = %v, want 2.0", got)
	}
	if got := CalculateRR(50, 50, 56); got != 0 {
		t.Errorf("CalculateRR with zero risk = %v, want 0", got)
	}
}

func TestRateSetup(t *testing.T) {
	cases := []struct {
		rr   float64
		want string
	}{
		{1.0, "poor"},
		{1.5, "decent"},
		{2.0, "good"},
		{2.99, "good"},
		{3.0, "excellent"},
	}
	for _, tc := range cases {
		if got := RateSetup(tc.rr); got != tc.want {
			t.Errorf("RateSetup(%v) = %q, want %q", tc.rr, got, tc.want)
		}
	}
}

func TestFindTargetForRR(t *testing.T) {
	if got := FindTargetForRR(50, 47, 3); got != 59.0 {
		t.Errorf("FindTargetForRR(50, 47, 3) = %v, want 59.0", got)
	}
}

func TestCalculatePositionSize(t *testing.T) {
	size := CalculatePositionSize(100000, 2.0, 50, 47, 56)
	if size.Shares != 666 {
		t.Errorf("Shares = %d, want 666", size.Shares)
	}
	if size.DollarRisk != 2000 {
		t.Errorf("DollarRisk = %v, want 2000", size.DollarRisk)
	}
	if size.RRRatio != 2.0 {
		t.Errorf("RRRatio = %v, want 2.0", size.RRRatio)
	}
}

func TestCalculatePositionSizeDefaultTarget(t *testing.T) {
	// Zero target defaults to 2:1 from the stop distance.
	size := CalculatePositionSize(50000, 2.0, 100, 95, 0)
	if size.Shares != 200 {
		t.Errorf("Shares = %d, want 200", size.Shares)
	}
	if size.PositionValue != 20000 {
		t.Errorf("PositionValue = %v, want 20000", size.PositionValue)
	}
	if size.Target != 110 {
		t.Errorf("Target = %v, want 110", size.Target)
	}
	if size.RRRatio != 2.0 {
		t.Errorf("RRRatio = %v, want 2.0", size.RRRatio)
	}
}

func TestCalculatePositionSizeZeroRisk(t *testing.T) {
	size := CalculatePositionSize(100000, 2.0, 50, 50, 0)
	if size.Shares != 0 {
		t.Errorf("Shares = %d, want 0 when entry equals stop", size.Shares)
	}
	if size.Target != 50 {
		t.Errorf("Target = %v, want entry fallback 50", size.Target)
	}
}
