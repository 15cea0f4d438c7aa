package domain

import "time"

// NotificationConfig holds user preferences for signal alerts.
type NotificationConfig struct {
	Enabled         bool    `json:"enabled"`
	MinConfidence   float64 `json:"minConfidence"`   // only alert on signals >= this
	CooldownMinutes int     `json:"cooldownMinutes"` // per-symbol re-alert cooldown
}

// DefaultNotificationConfig matches the documented defaults.
func DefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Enabled:         false,
		MinConfidence:   0.6,
		CooldownMinutes: 60,
	}
}

// DeviceToken is a registered push notification target.
type DeviceToken struct {
	Token     string    `json:"token"`
	Platform  string    `json:"platform"` // "android" or "ios"
	CreatedAt time.Time `json:"createdAt"`
}
