package domain

import "time"

// Bar is a single OHLCV candle. Sequences are chronological with unique
// timestamps and are treated as immutable for the duration of one analysis.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// ScanResult is the per-symbol output of one screener pass.
type ScanResult struct {
	Symbol           string      `json:"symbol"`
	Price            float64     `json:"price"`
	ChangePct        float64     `json:"changePct"`
	Volume           int64       `json:"volume"`
	AvgVolume        int64       `json:"avgVolume"`
	RelativeStrength float64     `json:"relativeStrength"`
	Score            float64     `json:"score"` // composite momentum score, 0-100
	Signals          []Signal    `json:"signals"`
	SetupTypes       []SetupType `json:"setupTypes"`
}

// PositionSize is the output of the position sizing calculator.
type PositionSize struct {
	Symbol        string  `json:"symbol"`
	Shares        int     `json:"shares"`
	EntryPrice    float64 `json:"entryPrice"`
	StopLoss      float64 `json:"stopLoss"`
	Target        float64 `json:"target"`
	DollarRisk    float64 `json:"dollarRisk"`
	PositionValue float64 `json:"positionValue"`
	RRRatio       float64 `json:"rrRatio"`
}
