package config

import (
	"testing"
	"time"
)

func noPort(string) string { return "" }

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(noPort)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "4000" {
		t.Errorf("port: got %s, want 4000", cfg.Server.Port)
	}
	if cfg.Database.Name != "weeding_planner" {
		t.Errorf("database name: got %s", cfg.Database.Name)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("cors origins: got %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("bcrypt cost: got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Observability == nil {
		t.Fatal("observability defaults not applied")
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Errorf("service name: got %s", cfg.Observability.ServiceName)
	}
	if cfg.Observability.Logging.SlowQueryThreshold != 100*time.Millisecond {
		t.Errorf("slow query threshold: got %v", cfg.Observability.Logging.SlowQueryThreshold)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BKW_DATABASE__HOST", "db.internal")
	t.Setenv("BKW_DATABASE__PORT", "6543")
	t.Setenv("BKW_PRIMARY__ENV", "production")
	t.Setenv("BKW_RATE_LIMIT__BURST", "3")

	cfg, err := Load(noPort)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("host: got %s", cfg.Database.Host)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("port: got %d", cfg.Database.Port)
	}
	if cfg.RateLimit.Burst != 3 {
		t.Errorf("burst: got %d", cfg.RateLimit.Burst)
	}
	if !cfg.Observability.IsProduction() {
		t.Error("expected production observability environment")
	}
}

func TestLoadPlainPortWins(t *testing.T) {
	t.Setenv("BKW_SERVER__PORT", "5000")

	cfg, err := Load(func(key string) string {
		if key == "PORT" {
			return "8081"
		}
		return ""
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8081" {
		t.Errorf("port: got %s, want 8081", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalidCost(t *testing.T) {
	t.Setenv("BKW_AUTH__BCRYPT_COST", "2")

	if _, err := Load(noPort); err == nil {
		t.Fatal("expected validation error for bcrypt cost below 4")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"BKW_SERVER__PORT":                  "server.port",
		"BKW_DATABASE__MAX_OPEN_CONNS":      "database.max_open_conns",
		"BKW_OBSERVABILITY__LOGGING__LEVEL": "observability.logging.level",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHealthCheckEnabled(t *testing.T) {
	obs := DefaultObservabilityConfig()
	if !obs.HealthCheckEnabled("redis") {
		t.Error("redis should be checked by default")
	}
	obs.HealthChecks.Enabled = false
	if obs.HealthCheckEnabled("database") {
		t.Error("disabled health checks should report false")
	}
}
