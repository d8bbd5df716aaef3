package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/stroski-api/internal/errs"
	"github.com/deppfellow/stroski-api/internal/lib/job"
	"github.com/deppfellow/stroski-api/internal/repository"
)

type fakeEnqueuer struct {
	payloads []job.EmployeeWelcomePayload
	err      error
}

func (f *fakeEnqueuer) EnqueueEmployeeWelcome(_ context.Context, p job.EmployeeWelcomePayload) error {
	f.payloads = append(f.payloads, p)
	return f.err
}

var janez = CreateEmployeeInput{Ime: "Janez", Priimek: "Novak", Email: "janez@example.com", Polozaj: "Racunovodja"}

func TestExpenseServiceCreateStampsTime(t *testing.T) {
	svc := NewExpenseService(repository.NewMemoryRepositories().Expenses)

	before := time.Now().UTC()
	expense, err := svc.Create(context.Background(), "Test Expense", 250)
	require.NoError(t, err)

	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "Test Expense", expense.Name)
	assert.Equal(t, 250.0, expense.Amount)
	assert.False(t, expense.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, expense.CreatedAt.Location())
}

func TestEmployeeServiceEnqueuesWelcome(t *testing.T) {
	jobs := &fakeEnqueuer{}
	svc := NewEmployeeService(repository.NewMemoryRepositories().Employees, jobs)

	employee, err := svc.Create(context.Background(), janez)
	require.NoError(t, err)

	require.Len(t, jobs.payloads, 1)
	assert.Equal(t, job.EmployeeWelcomePayload{
		To:      "janez@example.com",
		Ime:     "Janez",
		Priimek: "Novak",
		Polozaj: "Racunovodja",
	}, jobs.payloads[0])

	got, err := svc.Get(context.Background(), employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, got.ID)
}

func TestEmployeeServiceIgnoresEnqueueFailure(t *testing.T) {
	jobs := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewEmployeeService(repository.NewMemoryRepositories().Employees, jobs)

	employee, err := svc.Create(context.Background(), janez)
	require.NoError(t, err)
	assert.NotEmpty(t, employee.ID)
}

func TestEmployeeServiceWithoutJobs(t *testing.T) {
	svc := NewEmployeeService(repository.NewMemoryRepositories().Employees, nil)

	_, err := svc.Create(context.Background(), janez)
	require.NoError(t, err)

	employees, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestReportServiceAuthorMustExist(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	svc := NewReportService(repos.Reports, repos.Employees)

	_, err := svc.Create(context.Background(), CreateReportInput{Naslov: "Q1", Vsebina: "...", Avtor: "missing"})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "AVTOR_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Avtor ne obstaja", httpErr.Message)

	reports, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestReportServiceDefaultsAndAuthor(t *testing.T) {
	repos := repository.NewMemoryRepositories()
	employees := NewEmployeeService(repos.Employees, nil)
	svc := NewReportService(repos.Reports, repos.Employees)

	author, err := employees.Create(context.Background(), janez)
	require.NoError(t, err)

	report, err := svc.Create(context.Background(), CreateReportInput{Naslov: "Q1", Vsebina: "Povzetek", Avtor: author.ID})
	require.NoError(t, err)
	assert.Equal(t, author.ID, report.Avtor)
	assert.WithinDuration(t, time.Now().UTC(), report.Datum, time.Minute)

	datum := time.Date(2024, 3, 31, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	report, err = svc.Create(context.Background(), CreateReportInput{Naslov: "Q2", Vsebina: "Povzetek", Datum: &datum})
	require.NoError(t, err)
	assert.True(t, datum.Equal(report.Datum))
	assert.Equal(t, time.UTC, report.Datum.Location())
	assert.Empty(t, report.Avtor)
}
