package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ALPACA_API_KEY", "ALPACA_API_SECRET", "DATABASE_URL",
		"CACHE_PATH", "SCAN_CRON", "SCAN_BENCHMARK", "SCAN_TOP_N",
		"FIREBASE_CREDENTIALS_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Scan.Benchmark != "SPY" {
		t.Errorf("benchmark = %q, want SPY", cfg.Scan.Benchmark)
	}
	if cfg.Scan.TopN != 20 {
		t.Errorf("top n = %d, want 20", cfg.Scan.TopN)
	}
	if cfg.Scan.MinPrice != 5.0 || cfg.Scan.MaxPrice != 500.0 {
		t.Errorf("price band = [%v, %v], want [5, 500]", cfg.Scan.MinPrice, cfg.Scan.MaxPrice)
	}
	if cfg.Scan.MinVolume != 500000 {
		t.Errorf("min volume = %d, want 500000", cfg.Scan.MinVolume)
	}
	if cfg.Cache.TTLMinutes != 15 {
		t.Errorf("cache ttl = %d, want 15", cfg.Cache.TTLMinutes)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("server:\n  port: \"9000\"\nscan:\n  benchmark: QQQ\n  top_n: 5\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Scan.Benchmark != "QQQ" {
		t.Errorf("benchmark = %q, want QQQ", cfg.Scan.Benchmark)
	}
	if cfg.Scan.TopN != 5 {
		t.Errorf("top n = %d, want 5", cfg.Scan.TopN)
	}
	// Unset fields still get defaults.
	if cfg.Scan.MinPrice != 5.0 {
		t.Errorf("min price = %v, want default 5", cfg.Scan.MinPrice)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCAN_BENCHMARK", "IWM")
	t.Setenv("SCAN_TOP_N", "50")
	t.Setenv("PORT", "3000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.Benchmark != "IWM" {
		t.Errorf("benchmark = %q, want IWM", cfg.Scan.Benchmark)
	}
	if cfg.Scan.TopN != 50 {
		t.Errorf("top n = %d, want 50", cfg.Scan.TopN)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q, want 3000", cfg.Server.Port)
	}
}
