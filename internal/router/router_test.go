package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/deppfellow/stroski-api/internal/config"
	"github.com/deppfellow/stroski-api/internal/errs"
	"github.com/deppfellow/stroski-api/internal/handler"
	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/repository"
	"github.com/deppfellow/stroski-api/internal/server"
	"github.com/deppfellow/stroski-api/internal/service"
)

type RouterSuite struct {
	suite.Suite
	router *echo.Echo
}

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "1M",
		},
		Database:      config.DatabaseConfig{Driver: config.DriverMemory},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	logger := zerolog.Nop()

	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	repos, err := repository.NewRepositories(srv)
	require.NoError(t, err)

	services, err := service.NewService(srv, repos)
	require.NoError(t, err)

	return NewRouter(srv, handler.NewHandlers(srv, services))
}

func (s *RouterSuite) SetupTest() {
	s.router = newTestRouter(s.T(), testConfig())
}

func (s *RouterSuite) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) postJSON(target, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, echo.MIMEApplicationJSON, body)
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *RouterSuite) requireError(rec *httptest.ResponseRecorder, status int, message string) errs.HTTPError {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	var body errs.HTTPError
	s.decode(rec, &body)
	s.Equal(status, body.Status)
	s.Equal(message, body.Message)
	return body
}

func (s *RouterSuite) TestCreateExpense() {
	rec := s.postJSON("/stroski", `{"name":"Test Expense","amount":250}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var expense model.Expense
	s.decode(rec, &expense)
	s.Equal("Test Expense", expense.Name)
	s.Equal(250.0, expense.Amount)
	s.NotEmpty(expense.ID)
	s.False(expense.CreatedAt.IsZero())

	rec = s.do(http.MethodGet, "/stroski/"+expense.ID, "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched model.Expense
	s.decode(rec, &fetched)
	s.Equal(expense.ID, fetched.ID)
}

func (s *RouterSuite) TestCreateExpenseFromForm() {
	form := url.Values{"name": {"Parking"}, "amount": {"12.5"}}
	rec := s.do(http.MethodPost, "/stroski", echo.MIMEApplicationForm, form.Encode())
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var expense model.Expense
	s.decode(rec, &expense)
	s.Equal("Parking", expense.Name)
	s.Equal(12.5, expense.Amount)
}

func (s *RouterSuite) TestCreateExpenseFromFormValidation() {
	cases := []struct {
		name    string
		form    url.Values
		message string
	}{
		{"bad amount", url.Values{"name": {"Parking"}, "amount": {"abc"}}, "Invalid amount"},
		{"missing amount", url.Values{"name": {"Parking"}}, "Invalid amount"},
		{"missing name, bad amount", url.Values{"amount": {"abc"}}, "Invalid name"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/stroski", echo.MIMEApplicationForm, tc.form.Encode())
			body := s.requireError(rec, http.StatusBadRequest, tc.message)
			s.Equal("BAD_REQUEST", body.Code)
			s.Require().Len(body.Errors, 1)
		})
	}
}

func (s *RouterSuite) TestCreateExpenseValidation() {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"amount":100}`, "Invalid name"},
		{"empty name", `{"name":"","amount":100}`, "Invalid name"},
		{"numeric name", `{"name":5,"amount":100}`, "Invalid name"},
		{"missing amount", `{"name":"Expense"}`, "Invalid amount"},
		{"string amount", `{"name":"Expense","amount":"250"}`, "Invalid amount"},
		{"null amount", `{"name":"Expense","amount":null}`, "Invalid amount"},
		{"both missing", `{}`, "Invalid name"},
		{"not an object", `[1,2]`, "Invalid name"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			body := s.requireError(s.postJSON("/stroski", tc.body), http.StatusBadRequest, tc.message)
			s.Equal("BAD_REQUEST", body.Code)
			s.Require().Len(body.Errors, 1)
		})
	}

	rec := s.do(http.MethodGet, "/stroski", "", "")
	var expenses []model.Expense
	s.decode(rec, &expenses)
	s.Empty(expenses)
}

func (s *RouterSuite) TestCreateExpenseMalformedJSON() {
	rec := s.postJSON("/stroski", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCreateExpenseWithoutContentType() {
	rec := s.do(http.MethodPost, "/stroski", "", `{"name":"Kava","amount":2}`)
	s.requireError(rec, http.StatusUnsupportedMediaType, "Unsupported Media Type")
}

func (s *RouterSuite) TestExpenseNotFound() {
	s.requireError(s.do(http.MethodGet, "/stroski/does-not-exist", "", ""), http.StatusNotFound, "Strosek not found")
}

func (s *RouterSuite) TestListEmptyIsArray() {
	for _, path := range []string{"/stroski", "/zaposleni", "/porocila"} {
		rec := s.do(http.MethodGet, path, "", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String(), path)
	}
}

func (s *RouterSuite) TestCreateEmployeeMissingField() {
	rec := s.postJSON("/zaposleni", `{"ime":"Janez","priimek":"Novak","email":"janez@example.com"}`)

	body := s.requireError(rec, http.StatusBadRequest, "Vsa polja so obvezna")
	s.Equal([]errs.FieldError{{Field: "polozaj", Error: "Vsa polja so obvezna"}}, body.Errors)
}

func (s *RouterSuite) TestEmployeesListed() {
	created := 0
	for _, ime := range []string{"Janez", "Ana"} {
		rec := s.postJSON("/zaposleni", `{"ime":"`+ime+`","priimek":"Novak","email":"x@example.com","polozaj":"Racunovodja"}`)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		created++
	}

	rec := s.do(http.MethodGet, "/zaposleni", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var employees []model.Employee
	s.decode(rec, &employees)
	s.GreaterOrEqual(len(employees), created)

	rec = s.do(http.MethodGet, "/zaposleni/"+employees[0].ID, "", "")
	s.Equal(http.StatusOK, rec.Code)

	s.requireError(s.do(http.MethodGet, "/zaposleni/unknown", "", ""), http.StatusNotFound, "Zaposleni not found")
}

func (s *RouterSuite) TestReports() {
	rec := s.postJSON("/zaposleni", `{"ime":"Ana","priimek":"Kranjc","email":"ana@example.com","polozaj":"CFO"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var author model.Employee
	s.decode(rec, &author)

	rec = s.postJSON("/porocila", `{"naslov":"Q1","vsebina":"Povzetek","avtor":"`+author.ID+`","datum":"2024-03-31T12:00:00Z"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var report model.FinancialReport
	s.decode(rec, &report)
	s.Equal(author.ID, report.Avtor)
	s.Equal(2024, report.Datum.Year())

	body := s.requireError(s.postJSON("/porocila", `{"naslov":"Q2","vsebina":"x","avtor":"nobody"}`), http.StatusBadRequest, "Avtor ne obstaja")
	s.Equal("AVTOR_NOT_FOUND", body.Code)

	body = s.requireError(s.postJSON("/porocila", `{"vsebina":"x"}`), http.StatusBadRequest, "Validation failed")
	s.Equal([]errs.FieldError{{Field: "naslov", Error: "is required"}}, body.Errors)

	rec = s.do(http.MethodGet, "/porocila", "", "")
	var reports []model.FinancialReport
	s.decode(rec, &reports)
	s.Len(reports, 1)
}

func (s *RouterSuite) TestUnknownRoutes() {
	for _, target := range []string{"/", "/nonexistent-route", "/stroski/a/b"} {
		body := s.requireError(s.do(http.MethodGet, target, "", ""), http.StatusNotFound, "Route not found")
		s.Equal("NOT_FOUND", body.Code)
	}

	s.requireError(s.do(http.MethodDelete, "/stroski", "", ""), http.StatusNotFound, "Route not found")
	s.requireError(s.do(http.MethodGet, "/zaposleni/a/b", "", ""), http.StatusNotFound, "Route not found")
}

func (s *RouterSuite) TestRequestIDHeader() {
	rec := s.do(http.MethodGet, "/stroski", "", "")
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/stroski", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal("abc-123", rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestAPIDocs() {
	rec := s.do(http.MethodGet, "/api-docs", "", "")
	s.Equal(http.StatusMovedPermanently, rec.Code)
	s.Equal("/api-docs/index.html", rec.Header().Get(echo.HeaderLocation))

	rec = s.do(http.MethodGet, "/api-docs/doc.json", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/stroski"`)

	rec = s.do(http.MethodGet, "/api-docs/index.html", "", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestAPIDocsCoverRoutes() {
	rec := s.do(http.MethodGet, "/api-docs/doc.json", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	s.decode(rec, &doc)

	for _, route := range s.router.Routes() {
		if strings.HasPrefix(route.Path, handler.DocsPath) {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		s.Contains(doc.Paths, path, "undocumented route %s", route.Path)
		s.Contains(doc.Paths[path], strings.ToLower(route.Method), "undocumented route %s %s", route.Method, route.Path)
	}
}

func (s *RouterSuite) TestStatus() {
	rec := s.do(http.MethodGet, "/status", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.decode(rec, &body)
	s.Equal("healthy", body["status"])
	s.Equal(config.DriverMemory, body["driver"])
}

func (s *RouterSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodGet, "/stroski", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal("*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func TestBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.BodyLimit = "1K"
	router := newTestRouter(t, cfg)

	body := `{"name":"` + strings.Repeat("x", 2048) + `","amount":1}`
	req := httptest.NewRequest(http.MethodPost, "/stroski", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 1
	router := newTestRouter(t, cfg)

	statuses := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stroski", nil))
		statuses = append(statuses, rec.Code)
	}

	require.Equal(t, http.StatusOK, statuses[0])
	require.Contains(t, statuses, http.StatusTooManyRequests)
}
