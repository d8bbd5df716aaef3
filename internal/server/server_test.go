package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/stroski-api/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.ServerConfig{Port: "0"},
		Database:      config.DatabaseConfig{Driver: config.DriverMemory},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestNewWithoutRedis(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(memoryConfig(), &logger, nil)
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, s.DB.Driver)
	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestStartRequiresSetup(t *testing.T) {
	logger := zerolog.Nop()

	s, err := New(memoryConfig(), &logger, nil)
	require.NoError(t, err)

	assert.EqualError(t, s.Start(), "HTTP server not initialized")

	s.SetupHTTPServer(http.NotFoundHandler())
	assert.Equal(t, ":0", s.httpServer.Addr)
}
