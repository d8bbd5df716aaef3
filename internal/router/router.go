// Package router builds the echo instance: the global middleware chain,
// the resource groups and the system routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/handler"
	"github.com/deppfellow/stroski-api/internal/middleware"
	"github.com/deppfellow/stroski-api/internal/server"
)

// NewRouter wires handlers h into a fresh echo instance. It does not bind
// a socket; tests drive the result with httptest.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: request id before the context logger, New Relic
	// before anything that reads its transaction.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerResourceRoutes(router, h)

	return router
}
