package validation

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/stroski-api/internal/errs"
)

// Validatable is implemented by request payloads.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that cannot be expressed with tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is returned from Validate for code-level rules.
// The first entry's Message becomes the response message.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	if len(c) == 0 {
		return "Validation failed"
	}
	return c[0].Message
}

// FormDecoder is implemented by payloads that decode form bodies field by
// field instead of through echo's binder, which rejects the whole request
// on the first value that fails to parse.
type FormDecoder interface {
	DecodeForm(values url.Values)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in its errors are
// taken from json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its validate tags.
func Struct(v any) error {
	return Validator().Struct(v)
}

// BindAndValidate binds the request into payload and validates it.
//
// Form bodies are handed to payloads implementing FormDecoder; everything
// else goes through echo's binder. Bind failures keep echo's message;
// validation failures become a 400 with field errors. An *errs.HTTPError
// or *echo.HTTPError returned from Validate is passed through unchanged.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			return echoErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bind(c echo.Context, payload Validatable) error {
	if decoder, ok := payload.(FormDecoder); ok && isFormRequest(c.Request()) {
		values, err := c.FormParams()
		if err != nil {
			return errs.NewBadRequestError(err.Error(), false, nil, nil, nil)
		}
		decoder.DecodeForm(values)
		return nil
	}

	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code != http.StatusBadRequest {
				return err
			}
			return errs.NewBadRequestError(fmt.Sprint(echoErr.Message), false, nil, nil, nil)
		}
		return errs.NewBadRequestError(err.Error(), false, nil, nil, nil)
	}

	return nil
}

func isFormRequest(r *http.Request) bool {
	if r.ContentLength == 0 {
		return false
	}
	ctype := r.Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ctype, echo.MIMEApplicationForm) ||
		strings.HasPrefix(ctype, echo.MIMEMultipartForm)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		fieldErrors := make([]errs.FieldError, 0, len(customErrors))
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return customErrors.Error(), fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: fieldMessage(fe),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "uuid":
		return "must be a valid UUID"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}
