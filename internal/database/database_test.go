package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/stroski-api/internal/config"
)

func TestNewMemoryDriver(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{
		Database:      config.DatabaseConfig{Driver: config.DriverMemory, Name: "stroski"},
		Observability: config.DefaultObservabilityConfig(),
	}

	db, err := New(cfg, &logger, nil)
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, db.Driver)
	assert.Nil(t, db.Mongo)
	assert.Nil(t, db.Pool)
	assert.NoError(t, db.Ping(context.Background()))
	assert.NoError(t, Migrate(context.Background(), &logger, cfg, db))
	assert.NoError(t, db.Close())
}

func TestNewUnknownDriver(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{
		Database:      config.DatabaseConfig{Driver: "couchdb"},
		Observability: config.DefaultObservabilityConfig(),
	}

	_, err := New(cfg, &logger, nil)
	assert.ErrorContains(t, err, "unknown database driver")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := migrations.ReadFile("migrations/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(body), "---- create above / drop below ----")
}
