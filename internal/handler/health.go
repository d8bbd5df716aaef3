package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deppfellow/stroski-api/internal/middleware"
	"github.com/deppfellow/stroski-api/internal/server"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// check runs one dependency check and records its outcome in checks.
func (h *HealthHandler) check(ctx context.Context, logger zerolog.Logger, name string, checks map[string]any, ping func(context.Context) error) bool {
	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		checks[name] = map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent(
				"HealthCheckError",
				map[string]any{
					"check_type":       name,
					"operation":        "health_check",
					"error_type":       name + "_unhealthy",
					"response_time_ms": elapsed.Milliseconds(),
					"error_message":    err.Error(),
				},
			)
		}
		return false
	}

	checks[name] = map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)
	return true
}

// CheckHealth godoc
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200
//	@Failure	503
//	@Router		/status [get]
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"driver":      h.server.DB.Driver,
		"checks":      checks,
	}

	cfg := h.server.Config.Observability.HealthChecks
	if !cfg.Enabled {
		return c.JSON(http.StatusOK, response)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
	defer cancel()

	isHealthy := true
	for _, name := range cfg.Checks {
		switch name {
		case "database":
			isHealthy = h.check(ctx, logger, name, checks, h.server.DB.Ping) && isHealthy
		case "redis":
			if h.server.Redis == nil {
				continue
			}
			redisPing := func(ctx context.Context) error { return h.server.Redis.Ping(ctx).Err() }
			isHealthy = h.check(ctx, logger, name, checks, redisPing) && isHealthy
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
