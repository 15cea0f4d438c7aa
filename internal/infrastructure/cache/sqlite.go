package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"momentum-screener/internal/domain"
)

// SQLiteCache is a TTL cache for fetched bar series, persisted so repeated
// scans within the TTL window do not hammer the data provider.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// NewSQLiteCache opens (or creates) the cache database.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS bar_cache (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("bar cache opened: %s (ttl %v)", dbPath, ttl)
	return &SQLiteCache{db: db, ttl: ttl}, nil
}

// Get returns the cached bars for key if present and fresh.
func (c *SQLiteCache) Get(key string) ([]domain.Bar, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var payload string
	var createdAt int64
	err := c.db.QueryRow(
		"SELECT payload, created_at FROM bar_cache WHERE key = ?", key,
	).Scan(&payload, &createdAt)
	if err != nil {
		return nil, false
	}

	if time.Since(time.Unix(createdAt, 0)) > c.ttl {
		c.db.Exec("DELETE FROM bar_cache WHERE key = ?", key)
		return nil, false
	}

	var bars []domain.Bar
	if err := json.Unmarshal([]byte(payload), &bars); err != nil {
		return nil, false
	}
	return bars, true
}

// Set stores bars under key, replacing any previous entry.
func (c *SQLiteCache) Set(key string, bars []domain.Bar) {
	payload, err := json.Marshal(bars)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec(
		"INSERT OR REPLACE INTO bar_cache (key, payload, created_at) VALUES (?, ?, ?)",
		key, string(payload), time.Now().Unix(),
	); err != nil {
		log.Printf("bar cache write failed for %s: %v", key, err)
	}
}

// Clear drops every cached entry.
func (c *SQLiteCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec("DELETE FROM bar_cache")
	return err
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
