package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	ws "momentum-screener/internal/delivery/websocket"
	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/fcm"
	"momentum-screener/internal/repository"
	"momentum-screener/internal/usecase"
)

type stubBarSource struct {
	bars map[string][]domain.Bar
}

func (s *stubBarSource) GetBars(symbol string, days int) ([]domain.Bar, error) {
	return s.bars[symbol], nil
}

func (s *stubBarSource) GetMultiBars(symbols []string, days int) (map[string][]domain.Bar, error) {
	return s.bars, nil
}

func stubBars(n int) []domain.Bar {
	bars := make([]domain.Bar, n)
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		c := 100 + float64(i)*0.5
		bars[i] = domain.Bar{
			Timestamp: base.AddDate(0, 0, i),
			Open:      c - 0.5,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1_000_000,
		}
	}
	return bars
}

func newTestRouter(t *testing.T) (*gin.Engine, domain.ScanRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("FIREBASE_CREDENTIALS_JSON", "")

	source := &stubBarSource{bars: map[string][]domain.Bar{
		"SPY":  stubBars(120),
		"AAPL": stubBars(120),
	}}

	scanRepo := repository.NewInMemoryScanRepository()
	tokenRepo := repository.NewInMemoryTokenRepository()
	configRepo := repository.NewInMemoryNotificationConfigRepository()

	fcmClient, err := fcm.NewClient(context.Background(), "")
	if err != nil {
		t.Fatalf("fcm.NewClient: %v", err)
	}
	notifier := usecase.NewNotificationUsecase(fcmClient, tokenRepo, configRepo)
	screener := usecase.NewScreenerUsecase(source, scanRepo, notifier, "SPY", usecase.ScanParams{
		TopN: 20, MinPrice: 1, MaxPrice: 1000, MinVolume: 1000,
	})

	router := NewRouter(RouterDeps{
		Scan:     NewScanHandler(scanRepo, screener),
		Analysis: NewAnalysisHandler(source, "SPY"),
		Position: NewPositionHandler(),
		Token:    NewTokenHandler(tokenRepo, notifier),
		Stream:   ws.NewHandler(scanRepo),
	})
	return router, scanRepo
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetScan(t *testing.T) {
	router, scanRepo := newTestRouter(t)
	scanRepo.SaveResults([]domain.ScanResult{{Symbol: "AAPL", Score: 75}})

	rec := doRequest(router, http.MethodGet, "/api/scan", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Count   int                 `json:"count"`
		Results []domain.ScanResult `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Results[0].Symbol != "AAPL" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestPositionSizeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/position-size",
		`{"symbol":"AAPL","accountSize":100000,"riskPct":2.0,"entry":50,"stopLoss":47,"target":56}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var size domain.PositionSize
	if err := json.Unmarshal(rec.Body.Bytes(), &size); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if size.Shares != 666 {
		t.Errorf("shares = %d, want 666", size.Shares)
	}
	if size.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", size.Symbol)
	}
}

func TestPositionSizeRejectsBadInput(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/position-size",
		`{"accountSize":0,"entry":50,"stopLoss":47}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSignalsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/signals/AAPL", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Symbol  string          `json:"symbol"`
		Signals []domain.Signal `json:"signals"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", body.Symbol)
	}
	if body.Signals == nil {
		t.Error("signals must be an empty array, not null")
	}
}

func TestSignalsEndpointUnknownSymbol(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/api/signals/NOPE", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for missing history", rec.Code)
	}
}

func TestTokenRegistration(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/tokens/register", `{"token":"tok-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodPost, "/api/tokens/register", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing token", rec.Code)
	}

	rec = doRequest(router, http.MethodPost, "/api/tokens/unregister", `{"token":"tok-1"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("unregister status = %d, want 200", rec.Code)
	}
}

func TestNotificationConfigEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/notifications/config", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var cfg domain.NotificationConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.MinConfidence != 0.6 {
		t.Errorf("default min confidence = %v, want 0.6", cfg.MinConfidence)
	}

	rec = doRequest(router, http.MethodPut, "/api/notifications/config",
		`{"enabled":true,"minConfidence":0.8,"cooldownMinutes":30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodPut, "/api/notifications/config",
		`{"enabled":true,"minConfidence":1.5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for out-of-range confidence", rec.Code)
	}
}

func TestBacktestEndpointRejectsBadParams(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(router, http.MethodGet, "/api/backtest/AAPL?capital=-5", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for negative capital", rec.Code)
	}
}
