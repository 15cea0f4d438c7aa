package domain

import "context"

// BarSource supplies historical bars. Series come back chronologically
// sorted and deduplicated by timestamp; illiquid symbols may return fewer
// rows than requested.
type BarSource interface {
	GetBars(symbol string, days int) ([]Bar, error)
	GetMultiBars(symbols []string, days int) (map[string][]Bar, error)
}

// BarCache is an injected TTL cache for fetched bar series. The engine
// never owns the cache lifecycle.
type BarCache interface {
	Get(key string) ([]Bar, bool)
	Set(key string, bars []Bar)
}

// ScanRepository stores the latest screener output.
type ScanRepository interface {
	SaveResults(results []ScanResult)
	GetResults() []ScanResult
}

// TokenRepository manages push notification device tokens.
type TokenRepository interface {
	RegisterToken(ctx context.Context, token, platform string) error
	UnregisterToken(ctx context.Context, token string) error
	GetAllTokens(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// NotificationConfigRepository persists alert preferences.
type NotificationConfigRepository interface {
	Load(ctx context.Context) (NotificationConfig, error)
	Save(ctx context.Context, cfg NotificationConfig) error
}
