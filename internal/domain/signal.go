package domain

import "time"

// SignalAction is the direction of a trade signal.
type SignalAction string

const (
	ActionBuy  SignalAction = "BUY"
	ActionSell SignalAction = "SELL"
)

// SetupType tags the kind of setup behind a signal or scan result.
// Downstream consumers switch on these exact values.
type SetupType string

const (
	SetupEMACrossover       SetupType = "ema_crossover"
	SetupBreakout           SetupType = "breakout"
	SetupRSIPullback        SetupType = "rsi_pullback"
	SetupVWAPReclaim        SetupType = "vwap_reclaim"
	SetupFlag               SetupType = "flag"
	SetupFlatBase           SetupType = "flat_base"
	SetupTightConsolidation SetupType = "tight_consolidation"
	SetupGapUp              SetupType = "gap_up"
)

// Signal is an actionable buy/sell signal for the latest bar of a series.
// Sell signals are exit warnings: stop, target and R:R are zero.
type Signal struct {
	Symbol     string       `json:"symbol"`
	Action     SignalAction `json:"action"`
	SetupType  SetupType    `json:"setupType"`
	Reason     string       `json:"reason"`
	Entry      float64      `json:"entry"`
	StopLoss   float64      `json:"stopLoss"`
	Target     float64      `json:"target"`
	RRRatio    float64      `json:"rrRatio"`
	Confidence float64      `json:"confidence"` // 0-1
	Timestamp  time.Time    `json:"timestamp"`
}
