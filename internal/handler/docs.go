package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/deppfellow/stroski-api/internal/server"

	// registers the generated OpenAPI document with swag
	_ "github.com/deppfellow/stroski-api/docs"
)

// DocsPath is where the Swagger UI is mounted.
const DocsPath = "/api-docs"

// DocsHandler serves the Swagger UI and the generated doc.json.
type DocsHandler struct {
	Handler
	ui echo.HandlerFunc
}

func NewDocsHandler(s *server.Server) *DocsHandler {
	return &DocsHandler{
		Handler: NewHandler(s),
		ui:      echoSwagger.EchoWrapHandler(echoSwagger.DocExpansion("list")),
	}
}

// Redirect sends /api-docs to the UI entry page.
func (h *DocsHandler) Redirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, DocsPath+"/index.html")
}

// ServeUI serves /api-docs/*, including doc.json.
func (h *DocsHandler) ServeUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")
	return h.ui(c)
}
