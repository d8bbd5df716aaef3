package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "stroski", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.JobsEnabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "stroski-api", cfg.Observability.ServiceName)
	assert.Equal(t, cfg.Primary.Env, cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfigConventionalEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Database.URI)
}

func TestLoadConfigPrefixedEnvWins(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STROSKI_SERVER__PORT", "9090")
	t.Setenv("STROSKI_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STROSKI_DATABASE__DRIVER", "memory")
	t.Setenv("STROSKI_REDIS__ADDRESS", "localhost:6379")
	t.Setenv("STROSKI_OBSERVABILITY__LOGGING__LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.True(t, cfg.JobsEnabled())
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoadConfigSplitsListEnv(t *testing.T) {
	t.Setenv("STROSKI_SERVER__CORS_ALLOWED_ORIGINS", " https://a.example , https://b.example,")
	t.Setenv("STROSKI_OBSERVABILITY__HEALTH_CHECKS__CHECKS", "database")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, []string{"database"}, cfg.Observability.HealthChecks.Checks)
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("STROSKI_SERVER__PORT", "9090")
	assert.Equal(t, "server.port", key)
	assert.Equal(t, "9090", value)

	key, value = envValue("STROSKI_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	assert.Equal(t, "server.cors_allowed_origins", key)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, value)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STROSKI_DATABASE__DRIVER", "couchdb")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
