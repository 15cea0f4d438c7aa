package usecase

import (
	"testing"
	"time"

	"momentum-screener/internal/domain"
)

func TestRunBacktestTooFewBars(t *testing.T) {
	result := RunBacktest(mkBars(risingCloses(99, 100, 1)), "TEST", 100000, 2.0)

	if result.TotalTrades != 0 || len(result.Trades) != 0 {
		t.Errorf("expected zero trades for short history, got %d", result.TotalTrades)
	}
	if result.Trades == nil {
		t.Error("Trades must be an empty slice, not nil")
	}
	if result.TotalReturnPct != 0 || result.WinRate != 0 {
		t.Errorf("expected zeroed stats, got %+v", result)
	}
	if time.Since(result.StartDate) > time.Minute {
		t.Error("short-history result should be anchored at the current time")
	}
}

func TestRunBacktestBreakoutTrade(t *testing.T) {
	// Flat base, breakout at bar 60, then a steady climb into the target.
	bars := breakoutBars(130, 60)
	result := RunBacktest(bars, "TEST", 100000, 2.0)

	if result.TotalTrades != 1 {
		t.Fatalf("expected exactly 1 trade, got %d", result.TotalTrades)
	}
	if result.WinningTrades != 1 || result.WinRate != 1 {
		t.Errorf("expected a winning trade, got %+v", result)
	}
	if result.TotalReturnPct <= 0 {
		t.Errorf("total return = %v, want > 0", result.TotalReturnPct)
	}
	if result.MaxDrawdownPct != 0 {
		t.Errorf("max drawdown = %v, want 0 with no losing exits", result.MaxDrawdownPct)
	}

	trade := result.Trades[0]
	if trade.Symbol != "TEST" {
		t.Errorf("trade symbol = %q, want TEST", trade.Symbol)
	}
	if trade.PnL <= 0 {
		t.Errorf("trade PnL = %v, want > 0", trade.PnL)
	}
	if !trade.ExitDate.After(trade.EntryDate) {
		t.Error("exit date must be after entry date")
	}
	if trade.ExitPrice <= trade.EntryPrice {
		t.Errorf("exit %v should be above entry %v for a target hit", trade.ExitPrice, trade.EntryPrice)
	}

	if result.StartDate != bars[50].Timestamp || result.EndDate != bars[len(bars)-1].Timestamp {
		t.Error("result window should span bar 50 through the final bar")
	}
}

func TestRunBacktestForceCloseAtEnd(t *testing.T) {
	// Breakout near the end: the target is never reached, so the position
	// is closed at the final bar's close.
	bars := breakoutBars(105, 102)
	result := RunBacktest(bars, "TEST", 100000, 2.0)

	if result.TotalTrades != 1 {
		t.Fatalf("expected 1 force-closed trade, got %d", result.TotalTrades)
	}
	trade := result.Trades[0]
	last := bars[len(bars)-1]
	if trade.ExitDate != last.Timestamp {
		t.Error("force-closed trade must exit on the final bar")
	}
	if trade.ExitPrice != last.Close {
		t.Errorf("exit price = %v, want final close %v", trade.ExitPrice, last.Close)
	}
}

func TestRunBacktestNoSignals(t *testing.T) {
	result := RunBacktest(mkBars(flatCloses(150, 100)), "TEST", 100000, 2.0)
	if result.TotalTrades != 0 {
		t.Errorf("flat series should produce no trades, got %d", result.TotalTrades)
	}
	var _ domain.BacktestResult = result
}
