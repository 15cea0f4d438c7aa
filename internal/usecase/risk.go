package usecase

import (
	"math"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// CalculateRR returns the risk/reward ratio for a trade, e.g. 2.0 for 2:1.
// Zero when entry equals the stop.
func CalculateRR(entry, stopLoss, target float64) float64 {
	risk := math.Abs(entry - stopLoss)
	reward := math.Abs(target - entry)
	if risk <= 0 {
		return 0
	}
	return indicators.Round2(reward / risk)
}

// RateSetup grades a setup by its R:R ratio.
func RateSetup(rrRatio float64) string {
	switch {
	case rrRatio < 1.5:
		return "poor"
	case rrRatio < 2.0:
		return "decent"
	case rrRatio < 3.0:
		return "good"
	default:
		return "excellent"
	}
}

// FindTargetForRR returns the target price that achieves the desired R:R
// given an entry and stop.
func FindTargetForRR(entry, stopLoss, desiredRR float64) float64 {
	risk := math.Abs(entry - stopLoss)
	return indicators.Round2(entry + risk*desiredRR)
}

// CalculatePositionSize sizes a position so the stop-out loss equals
// riskPct percent of the account. Target defaults to 2:1 R:R when zero.
func CalculatePositionSize(accountSize, riskPct, entry, stopLoss, target float64) domain.PositionSize {
	riskPerShare := math.Abs(entry - stopLoss)
	if riskPerShare <= 0 {
		t := target
		if t == 0 {
			t = entry
		}
		return domain.PositionSize{
			EntryPrice: entry,
			StopLoss:   stopLoss,
			Target:     t,
		}
	}

	dollarRisk := accountSize * (riskPct / 100)
	shares := int(dollarRisk / riskPerShare)

	if target == 0 {
		target = entry + 2*riskPerShare
	}
	rrRatio := (target - entry) / riskPerShare

	return domain.PositionSize{
		Shares:        shares,
		EntryPrice:    indicators.Round2(entry),
		StopLoss:      indicators.Round2(stopLoss),
		Target:        indicators.Round2(target),
		DollarRisk:    indicators.Round2(dollarRisk),
		PositionValue: indicators.Round2(float64(shares) * entry),
		RRRatio:       indicators.Round2(rrRatio),
	}
}
