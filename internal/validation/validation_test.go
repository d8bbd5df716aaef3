package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/stroski-api/internal/errs"
)

type taggedRequest struct {
	Title string `json:"title" validate:"required"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func (r *taggedRequest) Validate() error { return Struct(r) }

type customRequest struct {
	Name string `json:"name"`
}

func (r *customRequest) Validate() error {
	if r.Name == "" {
		return CustomValidationErrors{{Field: "name", Message: "Invalid name"}}
	}
	return nil
}

type passthroughRequest struct{}

func (r *passthroughRequest) Validate() error {
	return errs.NewNotFoundError("gone", true, nil)
}

type formRequest struct {
	Count *string
}

func (r *formRequest) DecodeForm(values url.Values) {
	if values.Has("count") {
		v := values.Get("count")
		r.Count = &v
	}
}

func (r *formRequest) Validate() error {
	if r.Count == nil {
		return CustomValidationErrors{{Field: "count", Message: "Invalid count"}}
	}
	return nil
}

type routeMissRequest struct{}

func (r *routeMissRequest) Validate() error { return echo.ErrNotFound }

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	return httpErr
}

func TestBindAndValidateTagErrorsUseJSONNames(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{"kind":"z"}`), &taggedRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "title", Error: "is required"},
		{Field: "kind", Error: "must be one of: a b"},
	}, httpErr.Errors)
}

func TestBindAndValidateCustomErrorMessage(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{}`), &customRequest{}))

	assert.Equal(t, "Invalid name", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "Invalid name"}}, httpErr.Errors)
}

func TestBindAndValidateSyntaxError(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{"name":`), &customRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.False(t, httpErr.Override)
}

func TestBindAndValidatePassesHTTPErrorThrough(t *testing.T) {
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{}`), &passthroughRequest{}))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestBindAndValidateSuccess(t *testing.T) {
	req := &taggedRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"title":"Q1","kind":"a"}`), req))
	assert.Equal(t, "Q1", req.Title)
}

func TestBindAndValidateUsesFormDecoder(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("count=abc"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	payload := &formRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	require.NotNil(t, payload.Count)
	assert.Equal(t, "abc", *payload.Count)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("other=1"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c = echo.New().NewContext(req, httptest.NewRecorder())

	httpErr := asHTTPError(t, BindAndValidate(c, &formRequest{}))
	assert.Equal(t, "Invalid count", httpErr.Message)
}

func TestBindAndValidatePassesEchoErrorThrough(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &routeMissRequest{})
	assert.ErrorIs(t, err, echo.ErrNotFound)
}
