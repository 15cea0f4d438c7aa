package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Alpaca struct {
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"alpaca"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Cache struct {
		Path       string `yaml:"path"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Scan struct {
		Cron      string  `yaml:"cron"`
		Benchmark string  `yaml:"benchmark"`
		TopN      int     `yaml:"top_n"`
		MinPrice  float64 `yaml:"min_price"`
		MaxPrice  float64 `yaml:"max_price"`
		MinVolume int64   `yaml:"min_volume"`
	} `yaml:"scan"`
	Firebase struct {
		CredentialsPath string `yaml:"credentials_path"`
	} `yaml:"firebase"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; env vars and defaults cover it.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.Alpaca.APISecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("SCAN_BENCHMARK"); v != "" {
		cfg.Scan.Benchmark = v
	}
	if v := os.Getenv("SCAN_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.TopN = n
		}
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_PATH"); v != "" {
		cfg.Firebase.CredentialsPath = v
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "bars_cache.db"
	}
	if cfg.Cache.TTLMinutes <= 0 {
		cfg.Cache.TTLMinutes = 15
	}
	if cfg.Scan.Cron == "" {
		// Weekdays at 21:05 UTC, shortly after the US market close.
		cfg.Scan.Cron = "5 21 * * 1-5"
	}
	if cfg.Scan.Benchmark == "" {
		cfg.Scan.Benchmark = "SPY"
	}
	if cfg.Scan.TopN <= 0 {
		cfg.Scan.TopN = 20
	}
	if cfg.Scan.MinPrice <= 0 {
		cfg.Scan.MinPrice = 5.0
	}
	if cfg.Scan.MaxPrice <= 0 {
		cfg.Scan.MaxPrice = 500.0
	}
	if cfg.Scan.MinVolume <= 0 {
		cfg.Scan.MinVolume = 500000
	}

	return cfg, nil
}
