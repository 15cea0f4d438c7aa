package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/usecase"
)

const analysisFetchDays = 200

// AnalysisHandler serves the full technical picture for a single symbol:
// momentum score, signals, chart patterns, trendlines, support/resistance
// and projected price zones.
type AnalysisHandler struct {
	barSource domain.BarSource
	benchmark string
}

func NewAnalysisHandler(barSource domain.BarSource, benchmark string) *AnalysisHandler {
	if benchmark == "" {
		benchmark = "SPY"
	}
	return &AnalysisHandler{barSource: barSource, benchmark: benchmark}
}

func (h *AnalysisHandler) fetchBars(c *gin.Context) ([]domain.Bar, string, bool) {
	symbol := c.Param("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return nil, "", false
	}

	bars, err := h.barSource.GetBars(symbol, analysisFetchDays)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch bars", "details": err.Error()})
		return nil, "", false
	}
	if len(bars) < 50 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not enough price history for " + symbol})
		return nil, "", false
	}
	return bars, symbol, true
}

// Analyze handles GET /api/analyze/:symbol
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	bars, symbol, ok := h.fetchBars(c)
	if !ok {
		return
	}

	patterns := usecase.DetectAllPatterns(bars)
	trends := usecase.AnalyzeTrendlines(bars)
	levels := usecase.DetectSupportResistance(bars, 5, 2)
	projections := usecase.ProjectPriceZones(bars, patterns, trends)
	signals := usecase.GenerateSignals(bars, symbol)
	setups := usecase.DetectPatterns(bars)

	// The momentum score needs a benchmark; a benchmark fetch failure
	// degrades the response rather than failing it.
	score := 0.0
	if benchBars, err := h.barSource.GetBars(h.benchmark, analysisFetchDays); err == nil {
		score = usecase.ComputeMomentumScore(bars, benchBars)
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":      symbol,
		"price":       bars[len(bars)-1].Close,
		"score":       score,
		"signals":     signals,
		"setupTypes":  setups,
		"patterns":    patterns,
		"trendlines":  trends,
		"levels":      levels,
		"projections": projections,
	})
}

// Signals handles GET /api/signals/:symbol
func (h *AnalysisHandler) Signals(c *gin.Context) {
	bars, symbol, ok := h.fetchBars(c)
	if !ok {
		return
	}

	signals := usecase.GenerateSignals(bars, symbol)
	if signals == nil {
		signals = []domain.Signal{}
	}
	c.JSON(http.StatusOK, gin.H{"symbol": symbol, "signals": signals})
}

// Patterns handles GET /api/patterns/:symbol
func (h *AnalysisHandler) Patterns(c *gin.Context) {
	bars, symbol, ok := h.fetchBars(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":     symbol,
		"patterns":   usecase.DetectAllPatterns(bars),
		"setupTypes": usecase.DetectPatterns(bars),
	})
}

// Backtest handles GET /api/backtest/:symbol?capital=100000&risk=2.0
func (h *AnalysisHandler) Backtest(c *gin.Context) {
	bars, symbol, ok := h.fetchBars(c)
	if !ok {
		return
	}

	capital := queryFloat(c, "capital", 100000)
	riskPct := queryFloat(c, "risk", 2.0)
	if capital <= 0 || riskPct <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "capital and risk must be positive"})
		return
	}

	result := usecase.RunBacktest(bars, symbol, capital, riskPct)
	c.JSON(http.StatusOK, result)
}

func queryFloat(c *gin.Context, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
