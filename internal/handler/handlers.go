package handler

import (
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health    *HealthHandler
	Docs      *DocsHandler
	Expenses  *ExpenseHandler
	Employees *EmployeeHandler
	Reports   *ReportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Docs:      NewDocsHandler(s),
		Expenses:  NewExpenseHandler(s, services.Expenses),
		Employees: NewEmployeeHandler(s, services.Employees),
		Reports:   NewReportHandler(s, services.Reports),
	}
}
