package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum-screener/internal/usecase"
)

// PositionHandler exposes the risk-based position sizing calculator.
type PositionHandler struct{}

func NewPositionHandler() *PositionHandler {
	return &PositionHandler{}
}

type positionSizeRequest struct {
	Symbol      string  `json:"symbol"`
	AccountSize float64 `json:"accountSize"`
	RiskPct     float64 `json:"riskPct"`
	Entry       float64 `json:"entry"`
	StopLoss    float64 `json:"stopLoss"`
	Target      float64 `json:"target"`
}

// CalculateSize handles POST /api/position-size
func (h *PositionHandler) CalculateSize(c *gin.Context) {
	var req positionSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.AccountSize <= 0 || req.Entry <= 0 || req.StopLoss <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountSize, entry and stopLoss must be positive"})
		return
	}
	if req.RiskPct <= 0 {
		req.RiskPct = 2.0
	}

	size := usecase.CalculatePositionSize(req.AccountSize, req.RiskPct, req.Entry, req.StopLoss, req.Target)
	size.Symbol = req.Symbol
	c.JSON(http.StatusOK, size)
}
