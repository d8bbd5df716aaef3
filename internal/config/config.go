// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Layer them over built-in defaults.
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the STROSKI_ prefix. The prefix is removed,
	the rest is lowercased and a double underscore marks nesting:

	  STROSKI_SERVER__PORT            -> server.port
	  STROSKI_DATABASE__MAX_POOL_SIZE -> database.max_pool_size

	A handful of conventional unprefixed variables (PORT, MONGODB_URI,
	DATABASE_URL) are honored on top so the service runs on common PaaS
	setups without renaming anything.
*/

// EnvPrefix is the prefix every application env var carries.
const EnvPrefix = "STROSKI_"

// Store drivers understood by the database package.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development test staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit uses echo's size notation, e.g. "1M", "512K".
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig describes the record store.
//
// URI is a mongodb:// URI for the mongo driver and a postgres:// DSN for
// the postgres driver. It is ignored by the memory driver.
type DatabaseConfig struct {
	Driver         string        `koanf:"driver" validate:"required,oneof=mongo postgres memory"`
	URI            string        `koanf:"uri" validate:"required_unless=Driver memory"`
	Name           string        `koanf:"name" validate:"required"`
	MaxPoolSize    int           `koanf:"max_pool_size" validate:"min=1"`
	MinPoolSize    int           `koanf:"min_pool_size" validate:"min=0"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"min=1s"`
	MaxConnIdle    time.Duration `koanf:"max_conn_idle" validate:"min=0"`
	AutoMigrate    bool          `koanf:"auto_migrate"`
}

// RedisConfig contains Redis connection details.
// An empty Address disables Redis and with it the background job worker.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`
}

// IntegrationConfig holds credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from" validate:"omitempty,email"`
}

// JobsEnabled reports whether background jobs can run with this config.
func (c *Config) JobsEnabled() bool {
	return c.Redis.Address != ""
}

// defaults are loaded first and overridden by anything set in the env.
func defaults() map[string]any {
	return map[string]any{
		"primary.env": "development",

		"server.port":                 "3000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.body_limit":           "1M",
		"server.rate_limit":           0,

		"database.driver":          DriverMongo,
		"database.uri":             "mongodb://localhost:27017",
		"database.name":            "stroski",
		"database.max_pool_size":   25,
		"database.min_pool_size":   0,
		"database.connect_timeout": "10s",
		"database.max_conn_idle":   "5m",
		"database.auto_migrate":    true,

		"integration.email_from": "stroski@resend.dev",

		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          "100ms",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.timeout":                 "5s",
		"observability.health_checks.checks":                  []string{"database", "redis"},
	}
}

// listKeys are the config keys whose env values are comma-separated lists.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

// envKey maps STROSKI_SERVER__PORT to server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// envValue maps the variable to its key and splits list values on commas,
// so STROSKI_SERVER__CORS_ALLOWED_ORIGINS=https://a,https://b yields two
// origins.
func envValue(s, v string) (string, any) {
	key := envKey(s)
	if !listKeys[key] {
		return key, v
	}

	items := make([]string, 0)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// conventionalKey maps the unprefixed variables we honor. Anything else
// returns "" which tells koanf to skip the variable.
func conventionalKey(s string) string {
	switch s {
	case "PORT":
		return "server.port"
	case "MONGODB_URI", "DATABASE_URL":
		return "database.uri"
	}
	return ""
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it and applies observability
// defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.Provider("", ".", conventionalKey), nil); err != nil {
		return nil, fmt.Errorf("could not load conventional env variables: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = "stroski-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
