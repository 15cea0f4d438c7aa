package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/usecase"
)

// ScanHandler serves the latest screener results and lets clients kick off
// an ad-hoc scan.
type ScanHandler struct {
	scanRepo domain.ScanRepository
	screener *usecase.ScreenerUsecase
}

func NewScanHandler(scanRepo domain.ScanRepository, screener *usecase.ScreenerUsecase) *ScanHandler {
	return &ScanHandler{scanRepo: scanRepo, screener: screener}
}

// GetScan handles GET /api/scan
func (h *ScanHandler) GetScan(c *gin.Context) {
	results := h.scanRepo.GetResults()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// TriggerScan handles POST /api/scan
// The scan runs in the background; poll GET /api/scan for results.
func (h *ScanHandler) TriggerScan(c *gin.Context) {
	go h.screener.RunScan()
	c.JSON(http.StatusAccepted, gin.H{"message": "Scan started"})
}
