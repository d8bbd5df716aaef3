package handler

import (
	"reflect"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/stroski-api/internal/middleware"
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (ExpenseHandler, HealthHandler, ...) so
// they reach config, logger, the record store and the job service through
// *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. It is returned by value; the only
// field is a pointer, so copies share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc is a typed endpoint function that:
//
//   - receives a request payload (Req) that is already bound and validated
//   - returns a response (Res) or an error
//
// Req must satisfy validation.Validatable and is a POINTER to a request
// struct, e.g. *CreateExpenseRequest, since binding mutates it in place.
// Returned errors are not written here; they travel to the global error
// handler, which renders them as errs.HTTPError.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to the
// HTTP response, and which observability attributes go with it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result any) error

	// GetOperation returns the operation name used in structured logs.
	GetOperation() string

	// AddAttributes attaches New Relic attributes derived from the result.
	// http.status_code is already set by the tracing middleware.
	AddAttributes(txn *newrelic.Transaction, result any)
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil || result == nil {
		return
	}
	if v := reflect.ValueOf(result); v.Kind() == reflect.Slice {
		txn.AddAttribute("response.items", v.Len())
	}
}

// newRequest allocates a zero value of the struct prototype points to, so
// concurrent requests never share a payload.
func newRequest[Req validation.Validatable](prototype Req) Req {
	t := reflect.TypeOf(prototype)
	if t.Kind() != reflect.Pointer {
		return prototype
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// validateID rejects path ids that cannot name a record. A trailing :id
// param captures the rest of the path, slashes included, so /stroski/a/b
// arrives here as id "a/b"; it is answered as an unmatched route.
func validateID(id string) error {
	if id == "" || strings.Contains(id, "/") {
		return echo.ErrNotFound
	}
	return nil
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It centralizes:
//
//   - request binding and validation
//   - structured logging with the request-scoped logger
//   - New Relic attributes and error reporting
//   - timing of the validation and handler phases
//   - response writing through responseHandler
//
// Req must satisfy validation.Validatable (a pointer to a struct).
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	// Set by the nrecho middleware; nil when New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	// ContextEnhancer has already added request_id and trace ids.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle adapts a typed handler into an echo.HandlerFunc. req is only a
// prototype; a fresh value is bound for every request.
//
//	g.POST("", handler.Handle(h.Handler, h.Create, http.StatusCreated, &CreateExpenseRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
