package usecase

import (
	"time"

	"momentum-screener/internal/domain"
)

var testEpoch = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// mkBars builds a daily bar series from closes: high is close+1, low is
// close-1, open is the previous close, constant volume.
func mkBars(closes []float64) []domain.Bar {
	volumes := make([]int64, len(closes))
	for i := range volumes {
		volumes[i] = 1_000_000
	}
	return mkBarsVol(closes, volumes)
}

func mkBarsVol(closes []float64, volumes []int64) []domain.Bar {
	bars := make([]domain.Bar, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}
		bars[i] = domain.Bar{
			Timestamp: testEpoch.AddDate(0, 0, i),
			Open:      open,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    volumes[i],
		}
	}
	return bars
}

func flatCloses(n int, price float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return closes
}

func risingCloses(n int, start, step float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + step*float64(i)
	}
	return closes
}

// breakoutCloses is a flat base that breaks out at breakoutIdx and keeps
// climbing one point per bar. Volume spikes on the breakout bar only.
func breakoutBars(n, breakoutIdx int) []domain.Bar {
	closes := make([]float64, n)
	volumes := make([]int64, n)
	for i := range closes {
		switch {
		case i < breakoutIdx:
			closes[i] = 100
			volumes[i] = 1_000_000
		case i == breakoutIdx:
			closes[i] = 106
			volumes[i] = 5_000_000
		default:
			closes[i] = 106 + float64(i-breakoutIdx)
			volumes[i] = 1_000_000
		}
	}
	return mkBarsVol(closes, volumes)
}
