package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the tables needed for push notification state. No
// external migration tool; setup stays a single binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists device_tokens (
			token text primary key,
			platform text not null default 'android',
			created_at timestamptz not null default now()
		);`,
		`create table if not exists notification_config (
			id int primary key default 1,
			enabled boolean not null default false,
			min_confidence double precision not null default 0.6,
			cooldown_minutes int not null default 60,
			updated_at timestamptz not null default now(),
			constraint notification_config_singleton check (id = 1)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
