// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Layer them over built-in defaults.
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix every application variable carries.
//
// Nesting uses a double underscore:
//
//	BKW_DATABASE__HOST     -> database.host
//	BKW_SERVER__PORT       -> server.port
//	BKW_RATE_LIMIT__BURST  -> rate_limit.burst
const EnvPrefix = "BKW_"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// MaintenanceDB is the database used to issue CREATE DATABASE before the
// application database exists. Lifetimes are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	MaintenanceDB   string `koanf:"maintenance_db" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig holds password hashing parameters.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"required,min=4,max=31"`
}

// RateLimitConfig throttles the credential endpoints per client IP.
// ExpiresIn is in seconds.
type RateLimitConfig struct {
	Enabled   bool    `koanf:"enabled"`
	RPS       float64 `koanf:"rps" validate:"gte=0"`
	Burst     int     `koanf:"burst" validate:"gte=0"`
	ExpiresIn int     `koanf:"expires_in" validate:"gte=0"`
}

// IntegrationConfig holds third-party API credentials.
// An empty ResendAPIKey disables e-mail delivery.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// Defaults returns the flat key/value map loaded before the environment.
func Defaults() map[string]any {
	return map[string]any{
		"primary.env": "development",

		"server.port":                 "4000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"http://localhost:3000"},

		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.name":               "weeding_planner",
		"database.maintenance_db":     "postgres",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 300,

		"redis.address": "localhost:6379",

		"auth.bcrypt_cost": 10,

		"rate_limit.enabled":    true,
		"rate_limit.rps":        5.0,
		"rate_limit.burst":      10,
		"rate_limit.expires_in": 180,

		"integration.email_from": "Wedding Planner <onboarding@resend.dev>",

		"observability.service_name":                          ServiceName,
		"observability.environment":                           "development",
		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          "100ms",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.interval":                "30s",
		"observability.health_checks.timeout":                 "5s",
		"observability.health_checks.checks":                  []string{"database", "redis"},
	}
}

// LoadConfig loads configuration from defaults and environment variables,
// validates it, applies observability defaults and returns the result.
//
// Any failure is fatal: the process cannot serve requests without config.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := Load(os.Getenv)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	return cfg, nil
}

// Load builds a Config using lookup for the plain PORT override.
// It returns errors instead of exiting so it can be exercised in tests.
func Load(lookup func(string) string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, err
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKey(s)
	}), nil)
	if err != nil {
		return nil, err
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, err
	}

	// PORT is the conventional platform override and wins over BKW_SERVER__PORT.
	if port := lookup("PORT"); port != "" {
		mainConfig.Server.Port = port
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, err
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// envKey maps BKW_DATABASE__MAX_OPEN_CONNS to database.max_open_conns.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
