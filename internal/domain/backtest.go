package domain

import "time"

// Trade is one completed round trip in a backtest.
type Trade struct {
	Symbol     string    `json:"symbol"`
	EntryDate  time.Time `json:"entryDate"`
	ExitDate   time.Time `json:"exitDate"`
	EntryPrice float64   `json:"entryPrice"`
	ExitPrice  float64   `json:"exitPrice"`
	Shares     int       `json:"shares"`
	PnL        float64   `json:"pnl"`
	ReturnPct  float64   `json:"returnPct"`
}

// BacktestResult holds performance statistics and the trade log of one run.
type BacktestResult struct {
	Strategy       string    `json:"strategy"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TotalTrades    int       `json:"totalTrades"`
	WinningTrades  int       `json:"winningTrades"`
	LosingTrades   int       `json:"losingTrades"`
	WinRate        float64   `json:"winRate"`
	AvgRR          float64   `json:"avgRr"`
	TotalReturnPct float64   `json:"totalReturnPct"`
	MaxDrawdownPct float64   `json:"maxDrawdownPct"`
	Trades         []Trade   `json:"trades"`
}
