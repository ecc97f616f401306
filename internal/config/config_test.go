package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_DRIVER", "mongo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "STORE_DRIVER", "CACHE_ENABLED", "CACHE_TTL", "APP_LOG_LEVEL",
		"RATE_SHEET_SCAN_LIMIT", "MEMBERSHIP_SCAN_LIMIT", "QUOTE_MAX_WORKERS", "UPTRACE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("unexpected StoreDriver: %q", cfg.StoreDriver)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.RateSheetScanLimit != 20 || cfg.MembershipScanLimit != 10 || cfg.QuoteMaxWorkers != 8 {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_URL", "postgres://pricing@db:5432/golf?sslmode=disable")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("RATE_SHEET_SCAN_LIMIT", "50")
	t.Setenv("QUOTE_MAX_WORKERS", "2")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.StoreDriver != StorePostgres {
		t.Fatalf("unexpected env/driver: %q/%q", cfg.AppEnv, cfg.StoreDriver)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.RateSheetScanLimit != 50 || cfg.QuoteMaxWorkers != 2 {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_InvalidLimits(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "RATE_SHEET_SCAN_LIMIT", value: "0"},
		{key: "MEMBERSHIP_SCAN_LIMIT", value: "abc"},
		{key: "QUOTE_MAX_WORKERS", value: "-1"},
		{key: "CACHE_TTL", value: "0s"},
		{key: "CACHE_ENABLED", value: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
