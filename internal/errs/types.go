package errs

import "strings"

// FieldError is a field-level validation error.
//
//	{ "field": "polozaj", "error": "Vsa polja so obvezna" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType names what the client should do next.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate to Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error shape written to API clients.
//
// Code is machine-friendly (e.g. "BAD_REQUEST"), Message human-friendly.
// Override marks messages that are safe to show to end users verbatim.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) reports
// whether err is client-facing at all.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
