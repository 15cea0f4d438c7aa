package usecase

import (
	"fmt"
	"math"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

// GenerateSignals evaluates the latest bar of the series and returns zero
// or more buy/sell signals. Requires at least 50 bars and a positive ATR.
// When both sides fire, only the side with the higher maximum confidence is
// returned; ties go to the buy side, so a symbol never reports simultaneous
// buy and sell signals.
func GenerateSignals(bars []domain.Bar, symbol string) []domain.Signal {
	if len(bars) < 50 {
		return nil
	}

	buys := buySignals(bars, symbol)
	sells := sellSignals(bars, symbol)

	if len(buys) > 0 && len(sells) > 0 {
		bestBuy := maxConfidence(buys)
		bestSell := maxConfidence(sells)
		if bestBuy >= bestSell {
			return buys
		}
		return sells
	}

	return append(buys, sells...)
}

func maxConfidence(signals []domain.Signal) float64 {
	best := 0.0
	for _, s := range signals {
		if s.Confidence > best {
			best = s.Confidence
		}
	}
	return best
}

func buySignals(bars []domain.Bar, symbol string) []domain.Signal {
	var signals []domain.Signal

	closes := closeSeries(bars)
	highs := highSeries(bars)
	lows := lowSeries(bars)
	last := len(bars) - 1

	atr := indicators.ATR(highs, lows, closes, 14)
	atrVal := atr[last]
	if math.IsNaN(atrVal) || atrVal <= 0 {
		return nil
	}

	entry := closes[last]
	stop := entry - 2*atrVal
	target := entry + 4*atrVal // 2:1 R:R
	risk := entry - stop
	rr := 0.0
	if risk > 0 {
		rr = (target - entry) / risk
	}
	ts := bars[last].Timestamp

	baseline := func(setup domain.SetupType, reason string, confidence float64) domain.Signal {
		return domain.Signal{
			Symbol:     symbol,
			Action:     domain.ActionBuy,
			SetupType:  setup,
			Reason:     reason,
			Entry:      indicators.Round2(entry),
			StopLoss:   indicators.Round2(stop),
			Target:     indicators.Round2(target),
			RRRatio:    indicators.Round2(rr),
			Confidence: confidence,
			Timestamp:  ts,
		}
	}

	ema9 := indicators.EMA(closes, 9)
	ema21 := indicators.EMA(closes, 21)
	rsi := indicators.RSI(closes, 14)
	stacked := indicators.EMAStacked(closes)
	crossovers := indicators.Crossover(closes, 9, 21)

	// 1. Fresh EMA crossover on this bar beats a recent one.
	if crossovers[last] {
		signals = append(signals, baseline(domain.SetupEMACrossover,
			"EMA 9 just crossed above EMA 21, new short-term uptrend starting", 0.65))
	} else if ema9[last] > ema21[last] && anyTail(crossovers, 5) {
		signals = append(signals, baseline(domain.SetupEMACrossover,
			"EMA 9 crossed above EMA 21 within last 5 bars, uptrend still fresh", 0.55))
	}

	// 2. Breakout above consolidation with volume gets a tighter stop.
	if DetectBreakout(bars, 20) {
		bStop := entry - 1.5*atrVal
		bTarget := entry + 3*atrVal
		bRisk := entry - bStop
		bRR := 0.0
		if bRisk > 0 {
			bRR = (bTarget - entry) / bRisk
		}
		signals = append(signals, domain.Signal{
			Symbol:     symbol,
			Action:     domain.ActionBuy,
			SetupType:  domain.SetupBreakout,
			Reason:     "Price broke above 20-day resistance on above-average volume, breakout confirmed",
			Entry:      indicators.Round2(entry),
			StopLoss:   indicators.Round2(bStop),
			Target:     indicators.Round2(bTarget),
			RRRatio:    indicators.Round2(bRR),
			Confidence: 0.75,
			Timestamp:  ts,
		})
	}

	// 3. RSI pullback in uptrend (40-50), else mild pullback (50-60).
	pullbacks := indicators.RSIPullback(closes)
	if pullbacks[last] {
		signals = append(signals, baseline(domain.SetupRSIPullback,
			fmt.Sprintf("RSI pulled back to %.0f in an uptrend, healthy dip likely to bounce", rsi[last]), 0.70))
	} else if stacked[last] && rsi[last] >= 50 && rsi[last] <= 60 {
		signals = append(signals, baseline(domain.SetupRSIPullback,
			fmt.Sprintf("RSI at %.0f with bullish EMA stack, mild pullback in strong trend", rsi[last]), 0.55))
	}

	// 4. VWAP reclaim from below.
	if isVWAPReclaim(bars) {
		signals = append(signals, baseline(domain.SetupVWAPReclaim,
			"Price reclaimed VWAP from below, institutional buyers stepping in", 0.60))
	}

	// 5. Sustained uptrend fallback, only when nothing else fired.
	if len(signals) == 0 && stacked[last] && rsi[last] >= 55 && rsi[last] <= 80 {
		signals = append(signals, baseline(domain.SetupEMACrossover,
			fmt.Sprintf("EMAs stacked bullishly (9>21>50) with RSI %.0f, sustained uptrend", rsi[last]), 0.50))
	}

	return signals
}

func sellSignals(bars []domain.Bar, symbol string) []domain.Signal {
	var signals []domain.Signal

	closes := closeSeries(bars)
	highs := highSeries(bars)
	lows := lowSeries(bars)
	opens := openSeries(bars)
	volumes := volumeSeries(bars)
	last := len(bars) - 1

	atr := indicators.ATR(highs, lows, closes, 14)
	atrVal := atr[last]
	if math.IsNaN(atrVal) || atrVal <= 0 {
		return nil
	}

	entry := closes[last]
	ts := bars[last].Timestamp

	exit := func(setup domain.SetupType, reason string, confidence float64) domain.Signal {
		return domain.Signal{
			Symbol:     symbol,
			Action:     domain.ActionSell,
			SetupType:  setup,
			Reason:     reason,
			Entry:      indicators.Round2(entry),
			Confidence: confidence,
			Timestamp:  ts,
		}
	}

	// 1. ATR trailing stop hit.
	trailing := indicators.ATRTrailingStop(highs, lows, closes, 2.0)
	if entry < trailing[last] {
		signals = append(signals, exit(domain.SetupEMACrossover,
			fmt.Sprintf("Price $%.2f dropped below ATR trailing stop $%.2f, trend protection triggered", entry, trailing[last]), 0.70))
	}

	// 2. EMA crossunder.
	crossunders := indicators.Crossunder(closes, 9, 21)
	if crossunders[last] {
		signals = append(signals, exit(domain.SetupEMACrossover,
			"EMA 9 crossed below EMA 21, short-term trend turning bearish", 0.65))
	}

	// 3. Bearish RSI divergence.
	divergences := indicators.RSIDivergence(closes, 14)
	if divergences[last] {
		signals = append(signals, exit(domain.SetupRSIPullback,
			"Bearish RSI divergence, price making highs but momentum fading", 0.55))
	}

	// 4. Volume climax.
	climax := indicators.VolumeClimax(opens, closes, volumes, 3.0)
	if climax[last] {
		signals = append(signals, exit(domain.SetupBreakout,
			"Volume climax detected, extreme selling pressure and possible exhaustion top", 0.60))
	}

	return signals
}

func anyTail(flags []bool, n int) bool {
	start := len(flags) - n
	if start < 0 {
		start = 0
	}
	for _, f := range flags[start:] {
		if f {
			return true
		}
	}
	return false
}

func isVWAPReclaim(bars []domain.Bar) bool {
	if len(bars) < 2 {
		return false
	}
	closes := closeSeries(bars)
	vwap := indicators.VWAP(highSeries(bars), lowSeries(bars), closes, volumeSeries(bars))
	last := len(bars) - 1
	return closes[last-1] < vwap[last-1] && closes[last] > vwap[last]
}
