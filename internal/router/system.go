package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/handler"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET(handler.DocsPath, h.Docs.Redirect)
	r.GET(handler.DocsPath+"/*", h.Docs.ServeUI)
}
