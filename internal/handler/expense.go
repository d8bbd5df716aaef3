package handler

import (
	"errors"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/service"
	"github.com/deppfellow/stroski-api/internal/validation"
)

var _ validation.FormDecoder = (*CreateExpenseRequest)(nil)

// CreateExpenseRequest is the POST /stroski body. Fields are nil when
// absent or not of the expected JSON type.
type CreateExpenseRequest struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
}

// UnmarshalJSON decodes each field with its exact type, so "250" is not a
// number and 5 is not a name.
func (r *CreateExpenseRequest) UnmarshalJSON(data []byte) error {
	fields := decodeObject(data)
	r.Name = field[string](fields, "name")
	r.Amount = field[float64](fields, "amount")
	return nil
}

// DecodeForm is the urlencoded counterpart of UnmarshalJSON: an amount
// that does not parse as a number is left nil.
func (r *CreateExpenseRequest) DecodeForm(values url.Values) {
	r.Name = formString(values, "name")
	r.Amount = formFloat(values, "amount")
}

func (r *CreateExpenseRequest) Validate() error {
	if err := model.ValidateExpense(r.Name, r.Amount); err != nil {
		name := "name"
		if errors.Is(err, model.ErrInvalidAmount) {
			name = "amount"
		}
		return validation.CustomValidationErrors{{Field: name, Message: err.Error()}}
	}
	return nil
}

type ListExpensesRequest struct{}

func (r *ListExpensesRequest) Validate() error { return nil }

type GetExpenseRequest struct {
	ID string `param:"id" json:"id" validate:"required"`
}

func (r *GetExpenseRequest) Validate() error { return validateID(r.ID) }

type ExpenseHandler struct {
	Handler
	expenses *service.ExpenseService
}

func NewExpenseHandler(s *server.Server, expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		Handler:  NewHandler(s),
		expenses: expenses,
	}
}

// Create godoc
//
//	@Summary	Create an expense
//	@Tags		stroski
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		body	body		CreateExpenseRequest	true	"Expense"
//	@Success	201		{object}	model.Expense
//	@Failure	400		{object}	errs.HTTPError
//	@Router		/stroski [post]
func (h *ExpenseHandler) Create(c echo.Context, req *CreateExpenseRequest) (*model.Expense, error) {
	return h.expenses.Create(c.Request().Context(), *req.Name, *req.Amount)
}

// List godoc
//
//	@Summary	List expenses
//	@Tags		stroski
//	@Produce	json
//	@Success	200	{array}	model.Expense
//	@Router		/stroski [get]
func (h *ExpenseHandler) List(c echo.Context, _ *ListExpensesRequest) ([]model.Expense, error) {
	return h.expenses.List(c.Request().Context())
}

// Get godoc
//
//	@Summary	Get an expense
//	@Tags		stroski
//	@Produce	json
//	@Param		id	path		string	true	"Expense id"
//	@Success	200	{object}	model.Expense
//	@Failure	404	{object}	errs.HTTPError
//	@Router		/stroski/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context, req *GetExpenseRequest) (*model.Expense, error) {
	return h.expenses.Get(c.Request().Context(), req.ID)
}
