package repository

import (
	"context"
	"sync"
	"time"

	"momentum-screener/internal/domain"
)

// InMemoryTokenRepository keeps device tokens in memory. Used when no
// database URL is configured; tokens do not survive a restart.
type InMemoryTokenRepository struct {
	tokens map[string]domain.DeviceToken
	mu     sync.RWMutex
}

func NewInMemoryTokenRepository() *InMemoryTokenRepository {
	return &InMemoryTokenRepository{tokens: make(map[string]domain.DeviceToken)}
}

func (r *InMemoryTokenRepository) RegisterToken(_ context.Context, token, platform string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = domain.DeviceToken{
		Token:     token,
		Platform:  platform,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *InMemoryTokenRepository) UnregisterToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *InMemoryTokenRepository) GetAllTokens(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := make([]string, 0, len(r.tokens))
	for token := range r.tokens {
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (r *InMemoryTokenRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens), nil
}

// InMemoryNotificationConfigRepository is the no-database fallback for
// alert preferences.
type InMemoryNotificationConfigRepository struct {
	cfg domain.NotificationConfig
	mu  sync.RWMutex
}

func NewInMemoryNotificationConfigRepository() *InMemoryNotificationConfigRepository {
	return &InMemoryNotificationConfigRepository{cfg: domain.DefaultNotificationConfig()}
}

func (r *InMemoryNotificationConfigRepository) Load(_ context.Context) (domain.NotificationConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg, nil
}

func (r *InMemoryNotificationConfigRepository) Save(_ context.Context, cfg domain.NotificationConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	return nil
}
