package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"momentum-screener/internal/domain"
	"momentum-screener/internal/infrastructure/fcm"
)

// NotificationUsecase pushes FCM alerts for high-confidence signals with a
// per-symbol cooldown.
type NotificationUsecase struct {
	fcmClient  *fcm.Client
	tokenRepo  domain.TokenRepository
	configRepo domain.NotificationConfigRepository

	notified map[string]time.Time // symbol -> last alert time
	mu       sync.Mutex
}

func NewNotificationUsecase(fcmClient *fcm.Client, tokenRepo domain.TokenRepository, configRepo domain.NotificationConfigRepository) *NotificationUsecase {
	return &NotificationUsecase{
		fcmClient:  fcmClient,
		tokenRepo:  tokenRepo,
		configRepo: configRepo,
		notified:   make(map[string]time.Time),
	}
}

// Config returns the current alert preferences, falling back to defaults
// when nothing is persisted yet.
func (uc *NotificationUsecase) Config(ctx context.Context) domain.NotificationConfig {
	cfg, err := uc.configRepo.Load(ctx)
	if err != nil {
		log.Printf("notification config load failed, using defaults: %v", err)
		return domain.DefaultNotificationConfig()
	}
	return cfg
}

// UpdateConfig persists new alert preferences.
func (uc *NotificationUsecase) UpdateConfig(ctx context.Context, cfg domain.NotificationConfig) error {
	return uc.configRepo.Save(ctx, cfg)
}

// DispatchSignalAlerts sends one push per symbol whose best signal meets
// the configured confidence floor, respecting the per-symbol cooldown.
func (uc *NotificationUsecase) DispatchSignalAlerts(results []domain.ScanResult) {
	if uc.fcmClient == nil || !uc.fcmClient.IsEnabled() {
		return
	}

	ctx := context.Background()
	cfg := uc.Config(ctx)
	if !cfg.Enabled {
		return
	}

	tokens, err := uc.tokenRepo.GetAllTokens(ctx)
	if err != nil {
		log.Printf("loading device tokens: %v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	cooldown := time.Duration(cfg.CooldownMinutes) * time.Minute

	for _, result := range results {
		best := bestSignal(result.Signals, cfg.MinConfidence)
		if best == nil {
			continue
		}

		uc.mu.Lock()
		lastSent, seen := uc.notified[result.Symbol]
		uc.mu.Unlock()
		if seen && now.Sub(lastSent) < cooldown {
			continue
		}

		title := fmt.Sprintf("%s %s signal (%.0f%% confidence)", result.Symbol, best.Action, best.Confidence*100)
		body := fmt.Sprintf("%s | Entry $%.2f Stop $%.2f Target $%.2f | Score %.0f",
			best.Reason, best.Entry, best.StopLoss, best.Target, result.Score)
		data := map[string]string{
			"symbol":     result.Symbol,
			"action":     string(best.Action),
			"setupType":  string(best.SetupType),
			"confidence": fmt.Sprintf("%.2f", best.Confidence),
			"score":      fmt.Sprintf("%.1f", result.Score),
		}

		if err := uc.fcmClient.SendMulticast(tokens, title, body, data); err != nil {
			log.Printf("Error sending alert for %s: %v", result.Symbol, err)
			continue
		}
		log.Printf("Sent %s alert for %s to %d devices", best.Action, result.Symbol, len(tokens))

		uc.mu.Lock()
		uc.notified[result.Symbol] = now
		uc.mu.Unlock()
	}

	// Drop stale cooldown entries.
	uc.mu.Lock()
	for symbol, ts := range uc.notified {
		if now.Sub(ts) > cooldown*2 {
			delete(uc.notified, symbol)
		}
	}
	uc.mu.Unlock()
}

func bestSignal(signals []domain.Signal, minConfidence float64) *domain.Signal {
	var best *domain.Signal
	for i := range signals {
		s := &signals[i]
		if s.Confidence < minConfidence {
			continue
		}
		if best == nil || s.Confidence > best.Confidence {
			best = s
		}
	}
	return best
}
