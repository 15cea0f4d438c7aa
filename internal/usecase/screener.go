package usecase

import (
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/indicators"
)

const (
	scanWorkers   = 8
	scanFetchDays = 200
)

// ScanParams are the per-scan filter settings. Zero values fall back to
// the usecase defaults.
type ScanParams struct {
	TopN      int
	MinPrice  float64
	MaxPrice  float64
	MinVolume int64
}

// ScreenerUsecase ranks a symbol universe by momentum score.
type ScreenerUsecase struct {
	barSource domain.BarSource
	scanRepo  domain.ScanRepository
	notifier  *NotificationUsecase
	benchmark string
	defaults  ScanParams
}

func NewScreenerUsecase(barSource domain.BarSource, scanRepo domain.ScanRepository, notifier *NotificationUsecase, benchmark string, defaults ScanParams) *ScreenerUsecase {
	if benchmark == "" {
		benchmark = "SPY"
	}
	return &ScreenerUsecase{
		barSource: barSource,
		scanRepo:  scanRepo,
		notifier:  notifier,
		benchmark: benchmark,
		defaults:  defaults,
	}
}

// ScanUniverse fetches bars for all symbols plus the benchmark, scores each
// symbol concurrently and returns the top N results by momentum score.
// A failure while scoring one symbol excludes that symbol only.
func (uc *ScreenerUsecase) ScanUniverse(symbols []string, params ScanParams) ([]domain.ScanResult, error) {
	params = uc.applyDefaults(params)

	benchBars, err := uc.barSource.GetBars(uc.benchmark, scanFetchDays)
	if err != nil {
		return nil, fmt.Errorf("fetching benchmark %s: %w", uc.benchmark, err)
	}

	barsMap, err := uc.barSource.GetMultiBars(symbols, scanFetchDays)
	if err != nil {
		return nil, fmt.Errorf("fetching universe bars: %w", err)
	}

	var results []domain.ScanResult
	var wg sync.WaitGroup
	var mu sync.Mutex

	sem := make(chan struct{}, scanWorkers)

	for symbol, bars := range barsMap {
		wg.Add(1)
		go func(symbol string, bars []domain.Bar) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, ok := uc.scoreSymbol(symbol, bars, benchBars, params)
			if !ok {
				return
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(symbol, bars)
	}

	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > params.TopN {
		results = results[:params.TopN]
	}
	return results, nil
}

// scoreSymbol enriches one symbol. Any panic counts as a per-symbol
// failure and excludes the symbol from the scan.
func (uc *ScreenerUsecase) scoreSymbol(symbol string, bars, benchBars []domain.Bar, params ScanParams) (result domain.ScanResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scan: excluding %s: %v", symbol, r)
			ok = false
		}
	}()

	if len(bars) < 50 {
		return domain.ScanResult{}, false
	}
	if !passesFilters(bars, params) {
		return domain.ScanResult{}, false
	}

	score := ComputeMomentumScore(bars, benchBars)
	if score < 20 {
		return domain.ScanResult{}, false
	}

	last := len(bars) - 1
	lastClose := bars[last].Close
	prevClose := lastClose
	if len(bars) > 1 {
		prevClose = bars[last-1].Close
	}
	changePct := (lastClose - prevClose) / prevClose * 100

	volumes := volumeSeries(bars)
	avgVol := indicators.VolumeSMA(volumes, 20)

	rsVal := 0.0
	if len(bars) >= 63 && len(benchBars) >= 63 {
		rs := indicators.RelativeStrength(closeSeries(bars), closeSeries(benchBars), 63)
		if v := rs[len(rs)-1]; !math.IsNaN(v) {
			rsVal = v
		}
	}

	var setups []domain.SetupType
	if IsEMAAligned(bars) {
		setups = append(setups, domain.SetupEMACrossover)
	}
	if DetectBreakout(bars, 20) {
		setups = append(setups, domain.SetupBreakout)
	}
	if IsNear52wHigh(bars, 0.05) {
		setups = append(setups, domain.SetupFlatBase)
	}
	if IsVolumeSurging(bars, 2.0) {
		setups = append(setups, domain.SetupGapUp)
	}

	return domain.ScanResult{
		Symbol:           symbol,
		Price:            lastClose,
		ChangePct:        indicators.Round2(changePct),
		Volume:           bars[last].Volume,
		AvgVolume:        int64(avgVol[len(avgVol)-1]),
		RelativeStrength: round3(rsVal),
		Score:            round1(score),
		Signals:          []domain.Signal{},
		SetupTypes:       setups,
	}, true
}

func passesFilters(bars []domain.Bar, params ScanParams) bool {
	lastClose := bars[len(bars)-1].Close
	if lastClose < params.MinPrice || lastClose > params.MaxPrice {
		return false
	}
	if len(bars) < 20 {
		return false
	}
	avgVol := 0.0
	for _, b := range bars[len(bars)-20:] {
		avgVol += float64(b.Volume)
	}
	avgVol /= 20
	return avgVol >= float64(params.MinVolume)
}

func (uc *ScreenerUsecase) applyDefaults(params ScanParams) ScanParams {
	if params.TopN == 0 {
		params.TopN = uc.defaults.TopN
	}
	if params.MinPrice == 0 {
		params.MinPrice = uc.defaults.MinPrice
	}
	if params.MaxPrice == 0 {
		params.MaxPrice = uc.defaults.MaxPrice
	}
	if params.MinVolume == 0 {
		params.MinVolume = uc.defaults.MinVolume
	}
	return params
}

// RunScan performs one full background scan of the default universe:
// score, enrich the top results with fresh signals, persist, notify.
func (uc *ScreenerUsecase) RunScan() {
	start := time.Now()
	log.Println("Starting scan cycle...")

	symbols := DefaultUniverse()
	results, err := uc.ScanUniverse(symbols, ScanParams{})
	if err != nil {
		log.Printf("Scan failed: %v", err)
		return
	}

	// Attach signals for the ranked symbols only; the full universe would
	// be wasted work.
	for i := range results {
		bars, err := uc.barSource.GetBars(results[i].Symbol, scanFetchDays)
		if err != nil || len(bars) < 50 {
			continue
		}
		signals := GenerateSignals(bars, results[i].Symbol)
		if signals != nil {
			results[i].Signals = signals
		}
	}

	uc.scanRepo.SaveResults(results)

	if uc.notifier != nil {
		uc.notifier.DispatchSignalAlerts(results)
	}

	log.Printf("Scan cycle completed in %v. %d symbols ranked.", time.Since(start), len(results))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
