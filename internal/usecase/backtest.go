package usecase

import (
	"math"
	"time"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

type openPosition struct {
	entry     float64
	stopLoss  float64
	target    float64
	shares    int
	entryDate time.Time
}

// RunBacktest replays the signal engine bar-by-bar over historical data,
// simulating one long position at a time. Requires at least 100 bars;
// anything less returns a zeroed result anchored at the current time.
// Position sizing risks riskPct of current capital, so realized gains
// compound into later position sizes.
func RunBacktest(bars []domain.Bar, symbol string, initialCapital, riskPct float64) domain.BacktestResult {
	if len(bars) < 100 {
		now := time.Now()
		return domain.BacktestResult{
			Strategy:  "momentum",
			StartDate: now,
			EndDate:   now,
			Trades:    []domain.Trade{},
		}
	}

	capital := initialCapital
	peakCapital := initialCapital
	maxDrawdown := 0.0
	var trades []domain.Trade
	var position *openPosition

	// Walk forward from bar 50 so indicators are warmed up.
	for i := 50; i < len(bars); i++ {
		bar := bars[i]

		// Exits are checked before new entries; the stop wins when both
		// the stop and the target trigger on the same bar.
		if position != nil {
			exitPrice, exited := checkExit(bar, position)
			if exited {
				pnl := (exitPrice - position.entry) * float64(position.shares)
				capital += pnl
				if capital > peakCapital {
					peakCapital = capital
				}
				drawdown := (peakCapital - capital) / peakCapital
				if drawdown > maxDrawdown {
					maxDrawdown = drawdown
				}

				trades = append(trades, domain.Trade{
					Symbol:     symbol,
					EntryDate:  position.entryDate,
					ExitDate:   bar.Timestamp,
					EntryPrice: position.entry,
					ExitPrice:  indicators.Round2(exitPrice),
					Shares:     position.shares,
					PnL:        indicators.Round2(pnl),
					ReturnPct:  indicators.Round2((exitPrice/position.entry - 1) * 100),
				})
				position = nil
			}
		}

		if position == nil {
			signals := GenerateSignals(bars[:i+1], symbol)
			var best *domain.Signal
			for k := range signals {
				s := &signals[k]
				if s.Action != domain.ActionBuy {
					continue
				}
				if best == nil || s.Confidence > best.Confidence {
					best = s
				}
			}
			if best != nil {
				dollarRisk := capital * (riskPct / 100)
				riskPerShare := math.Abs(best.Entry - best.StopLoss)
				if riskPerShare > 0 {
					shares := int(dollarRisk / riskPerShare)
					if shares > 0 {
						position = &openPosition{
							entry:     best.Entry,
							stopLoss:  best.StopLoss,
							target:    best.Target,
							shares:    shares,
							entryDate: bar.Timestamp,
						}
					}
				}
			}
		}
	}

	// Force-close any open position at the final close.
	if position != nil {
		lastBar := bars[len(bars)-1]
		pnl := (lastBar.Close - position.entry) * float64(position.shares)
		capital += pnl
		trades = append(trades, domain.Trade{
			Symbol:     symbol,
			EntryDate:  position.entryDate,
			ExitDate:   lastBar.Timestamp,
			EntryPrice: position.entry,
			ExitPrice:  indicators.Round2(lastBar.Close),
			Shares:     position.shares,
			PnL:        indicators.Round2(pnl),
			ReturnPct:  indicators.Round2((lastBar.Close/position.entry - 1) * 100),
		})
	}

	winning, losing := 0, 0
	winSum, lossSum := 0.0, 0.0
	for _, t := range trades {
		if t.PnL > 0 {
			winning++
			winSum += t.PnL
		} else {
			losing++
			lossSum += t.PnL
		}
	}

	total := len(trades)
	winRate := 0.0
	if total > 0 {
		winRate = float64(winning) / float64(total)
	}
	avgWin := 0.0
	if winning > 0 {
		avgWin = winSum / float64(winning)
	}
	avgLoss := 0.0
	if losing > 0 {
		avgLoss = math.Abs(lossSum / float64(losing))
	}
	avgRR := 0.0
	if avgLoss > 0 {
		avgRR = avgWin / avgLoss
	}

	totalReturn := (capital - initialCapital) / initialCapital * 100

	if trades == nil {
		trades = []domain.Trade{}
	}

	return domain.BacktestResult{
		Strategy:       "momentum",
		StartDate:      bars[50].Timestamp,
		EndDate:        bars[len(bars)-1].Timestamp,
		TotalTrades:    total,
		WinningTrades:  winning,
		LosingTrades:   losing,
		WinRate:        round4(winRate),
		AvgRR:          indicators.Round2(avgRR),
		TotalReturnPct: indicators.Round2(totalReturn),
		MaxDrawdownPct: indicators.Round2(maxDrawdown * 100),
		Trades:         trades,
	}
}

func checkExit(bar domain.Bar, position *openPosition) (float64, bool) {
	if bar.Low <= position.stopLoss {
		return position.stopLoss, true
	}
	if bar.High >= position.target {
		return position.target, true
	}
	return 0, false
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
