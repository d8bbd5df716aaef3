package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/handler"
)

func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	stroski := r.Group("/stroski")
	stroski.POST("", handler.Handle(h.Expenses.Handler, h.Expenses.Create, http.StatusCreated, &handler.CreateExpenseRequest{}))
	stroski.GET("", handler.Handle(h.Expenses.Handler, h.Expenses.List, http.StatusOK, &handler.ListExpensesRequest{}))
	stroski.GET("/:id", handler.Handle(h.Expenses.Handler, h.Expenses.Get, http.StatusOK, &handler.GetExpenseRequest{}))

	zaposleni := r.Group("/zaposleni")
	zaposleni.POST("", handler.Handle(h.Employees.Handler, h.Employees.Create, http.StatusCreated, &handler.CreateEmployeeRequest{}))
	zaposleni.GET("", handler.Handle(h.Employees.Handler, h.Employees.List, http.StatusOK, &handler.ListEmployeesRequest{}))
	zaposleni.GET("/:id", handler.Handle(h.Employees.Handler, h.Employees.Get, http.StatusOK, &handler.GetEmployeeRequest{}))

	porocila := r.Group("/porocila")
	porocila.POST("", handler.Handle(h.Reports.Handler, h.Reports.Create, http.StatusCreated, &handler.CreateReportRequest{}))
	porocila.GET("", handler.Handle(h.Reports.Handler, h.Reports.List, http.StatusOK, &handler.ListReportsRequest{}))
}
