package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Invalid name", true, nil, []FieldError{{Field: "name", Error: "Invalid name"}}, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Invalid name", err.Error())
	assert.Len(t, err.Errors, 1)

	code := "AVTOR_NOT_FOUND"
	custom := NewBadRequestError("Avtor ne obstaja", true, &code, nil, nil)
	assert.Equal(t, code, custom.Code)
}

func TestHTTPErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("loading employee: %w", NewNotFoundError("Zaposleni not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessageCopies(t *testing.T) {
	base := NewInternalServerError()
	changed := base.WithMessage("store unavailable")

	assert.Equal(t, "store unavailable", changed.Message)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), base.Message)
	assert.Equal(t, base.Status, changed.Status)
}
