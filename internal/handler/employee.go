package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/service"
	"github.com/deppfellow/stroski-api/internal/validation"
)

// MessageAllFieldsRequired is returned when any employee field is missing.
const MessageAllFieldsRequired = "Vsa polja so obvezna"

// CreateEmployeeRequest is the POST /zaposleni body.
type CreateEmployeeRequest struct {
	Ime     string `json:"ime" form:"ime" validate:"required"`
	Priimek string `json:"priimek" form:"priimek" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Polozaj string `json:"polozaj" form:"polozaj" validate:"required"`
}

// UnmarshalJSON treats a non-string value like a missing one.
func (r *CreateEmployeeRequest) UnmarshalJSON(data []byte) error {
	fields := decodeObject(data)
	r.Ime = stringField(fields, "ime")
	r.Priimek = stringField(fields, "priimek")
	r.Email = stringField(fields, "email")
	r.Polozaj = stringField(fields, "polozaj")
	return nil
}

// Validate reports every missing field, all under the same message.
func (r *CreateEmployeeRequest) Validate() error {
	err := validation.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := make(validation.CustomValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, validation.CustomValidationError{
			Field:   fe.Field(),
			Message: MessageAllFieldsRequired,
		})
	}
	return missing
}

type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error { return nil }

type GetEmployeeRequest struct {
	ID string `param:"id" json:"id" validate:"required"`
}

func (r *GetEmployeeRequest) Validate() error { return validateID(r.ID) }

type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// Create godoc
//
//	@Summary		Create an employee
//	@Description	All four fields are required. A welcome e-mail is queued when background jobs are enabled.
//	@Tags			zaposleni
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			body	body		CreateEmployeeRequest	true	"Employee"
//	@Success		201		{object}	model.Employee
//	@Failure		400		{object}	errs.HTTPError
//	@Router			/zaposleni [post]
func (h *EmployeeHandler) Create(c echo.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Create(c.Request().Context(), service.CreateEmployeeInput{
		Ime:     req.Ime,
		Priimek: req.Priimek,
		Email:   req.Email,
		Polozaj: req.Polozaj,
	})
}

// List godoc
//
//	@Summary	List employees
//	@Tags		zaposleni
//	@Produce	json
//	@Success	200	{array}	model.Employee
//	@Router		/zaposleni [get]
func (h *EmployeeHandler) List(c echo.Context, _ *ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.List(c.Request().Context())
}

// Get godoc
//
//	@Summary	Get an employee
//	@Tags		zaposleni
//	@Produce	json
//	@Param		id	path		string	true	"Employee id"
//	@Success	200	{object}	model.Employee
//	@Failure	404	{object}	errs.HTTPError
//	@Router		/zaposleni/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context, req *GetEmployeeRequest) (*model.Employee, error) {
	return h.employees.Get(c.Request().Context(), req.ID)
}
