package usecase

import "testing"

func TestComputeMomentumScoreStrongUptrend(t *testing.T) {
	bars := mkBars(risingCloses(120, 50, 0.5))
	bench := mkBars(flatCloses(120, 100))

	score := ComputeMomentumScore(bars, bench)

	// Full marks for relative strength, 52-week-high proximity and EMA
	// alignment; no volume surge, no breakout.
	if score != 60 {
		t.Errorf("score = %v, want 60", score)
	}
}

func TestComputeMomentumScoreBounds(t *testing.T) {
	series := [][]float64{
		risingCloses(120, 50, 0.5),
		risingCloses(120, 200, -1),
		flatCloses(120, 100),
	}
	bench := mkBars(flatCloses(120, 100))
	for _, closes := range series {
		score := ComputeMomentumScore(mkBars(closes), bench)
		if score < 0 || score > 100 {
			t.Errorf("score = %v, out of [0,100]", score)
		}
	}
}

func TestComputeMomentumScoreShortHistory(t *testing.T) {
	bars := mkBars(risingCloses(30, 100, 1))
	bench := mkBars(flatCloses(30, 100))
	score := ComputeMomentumScore(bars, bench)
	if score < 0 || score > 100 {
		t.Errorf("score = %v, out of [0,100]", score)
	}
}

func TestDetectBreakout(t *testing.T) {
	bars := breakoutBars(61, 60)
	if !DetectBreakout(bars, 20) {
		t.Error("expected breakout on high-volume move above 20-day high")
	}

	// Same move without the volume surge is not a breakout.
	closes := flatCloses(61, 100)
	closes[60] = 106
	if DetectBreakout(mkBars(closes), 20) {
		t.Error("breakout without volume surge should not qualify")
	}
}

func TestIsNear52wHigh(t *testing.T) {
	if !IsNear52wHigh(mkBars(risingCloses(100, 50, 0.5)), 0.05) {
		t.Error("rising series should be near its high")
	}

	closes := risingCloses(100, 50, 0.5)
	closes[99] = 60 // well off the high
	if IsNear52wHigh(mkBars(closes), 0.05) {
		t.Error("series 40% off its high is not near it")
	}
}

func TestIsEMAAligned(t *testing.T) {
	if !IsEMAAligned(mkBars(risingCloses(120, 50, 0.5))) {
		t.Error("steady uptrend should have stacked EMAs")
	}
	if IsEMAAligned(mkBars(risingCloses(120, 200, -1))) {
		t.Error("downtrend must not report stacked EMAs")
	}
}

func TestRSRankingMissingHistory(t *testing.T) {
	stock := risingCloses(30, 100, 1)
	bench := flatCloses(30, 100)
	scores := RSRanking(stock, bench)

	if scores["3m"] != 0 || scores["6m"] != 0 {
		t.Errorf("expected 0 for horizons longer than history, got %v", scores)
	}
	if scores["1m"] <= 1 {
		t.Errorf("1m relative strength = %v, want > 1 for outperformer", scores["1m"])
	}
}
