package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/service"
	"github.com/deppfellow/stroski-api/internal/validation"
)

// CreateReportRequest is the POST /porocila body. Datum is RFC 3339.
type CreateReportRequest struct {
	Naslov  string     `json:"naslov" validate:"required"`
	Vsebina string     `json:"vsebina" validate:"required"`
	Datum   *time.Time `json:"datum,omitempty"`
	Avtor   string     `json:"avtor,omitempty"`
}

func (r *CreateReportRequest) Validate() error { return validation.Struct(r) }

type ListReportsRequest struct{}

func (r *ListReportsRequest) Validate() error { return nil }

type ReportHandler struct {
	Handler
	reports *service.ReportService
}

func NewReportHandler(s *server.Server, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
		reports: reports,
	}
}

// Create godoc
//
//	@Summary		Create a financial report
//	@Description	avtor, when given, must be the id of an existing employee.
//	@Tags			porocila
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateReportRequest	true	"Report"
//	@Success		201		{object}	model.FinancialReport
//	@Failure		400		{object}	errs.HTTPError
//	@Router			/porocila [post]
func (h *ReportHandler) Create(c echo.Context, req *CreateReportRequest) (*model.FinancialReport, error) {
	return h.reports.Create(c.Request().Context(), service.CreateReportInput{
		Naslov:  req.Naslov,
		Vsebina: req.Vsebina,
		Datum:   req.Datum,
		Avtor:   req.Avtor,
	})
}

// List godoc
//
//	@Summary	List financial reports
//	@Tags		porocila
//	@Produce	json
//	@Success	200	{array}	model.FinancialReport
//	@Router		/porocila [get]
func (h *ReportHandler) List(c echo.Context, _ *ListReportsRequest) ([]model.FinancialReport, error) {
	return h.reports.List(c.Request().Context())
}
