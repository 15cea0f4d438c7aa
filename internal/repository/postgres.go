package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"momentum-screener/internal/domain"
)

// PostgresTokenRepository stores device tokens in Postgres so registered
// devices survive restarts.
type PostgresTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepository(pool *pgxpool.Pool) *PostgresTokenRepository {
	return &PostgresTokenRepository{pool: pool}
}

func (r *PostgresTokenRepository) RegisterToken(ctx context.Context, token, platform string) error {
	_, err := r.pool.Exec(ctx, `
		insert into device_tokens(token, platform) values ($1, $2)
		on conflict (token) do update set platform = excluded.platform
	`, token, platform)
	return err
}

func (r *PostgresTokenRepository) UnregisterToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `delete from device_tokens where token = $1`, token)
	return err
}

func (r *PostgresTokenRepository) GetAllTokens(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `select token from device_tokens`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

func (r *PostgresTokenRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `select count(*) from device_tokens`).Scan(&count)
	return count, err
}

// PostgresNotificationConfigRepository persists the single row of alert
// preferences.
type PostgresNotificationConfigRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresNotificationConfigRepository(pool *pgxpool.Pool) *PostgresNotificationConfigRepository {
	return &PostgresNotificationConfigRepository{pool: pool}
}

func (r *PostgresNotificationConfigRepository) Load(ctx context.Context) (domain.NotificationConfig, error) {
	var cfg domain.NotificationConfig
	err := r.pool.QueryRow(ctx, `
		select enabled, min_confidence, cooldown_minutes
		from notification_config where id = 1
	`).Scan(&cfg.Enabled, &cfg.MinConfidence, &cfg.CooldownMinutes)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultNotificationConfig(), nil
	}
	if err != nil {
		return domain.NotificationConfig{}, err
	}
	return cfg, nil
}

func (r *PostgresNotificationConfigRepository) Save(ctx context.Context, cfg domain.NotificationConfig) error {
	_, err := r.pool.Exec(ctx, `
		insert into notification_config(id, enabled, min_confidence, cooldown_minutes, updated_at)
		values (1, $1, $2, $3, now())
		on conflict (id) do update set
			enabled = excluded.enabled,
			min_confidence = excluded.min_confidence,
			cooldown_minutes = excluded.cooldown_minutes,
			updated_at = excluded.updated_at
	`, cfg.Enabled, cfg.MinConfidence, cfg.CooldownMinutes)
	return err
}
