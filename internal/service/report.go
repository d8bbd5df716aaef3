package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/stroski-api/internal/errs"
	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/repository"
)

const avtorNotFoundMessage = "Avtor ne obstaja"

var avtorNotFoundCode = "AVTOR_NOT_FOUND"

type ReportService struct {
	repo      repository.ReportRepository
	employees repository.EmployeeRepository
}

func NewReportService(repo repository.ReportRepository, employees repository.EmployeeRepository) *ReportService {
	return &ReportService{repo: repo, employees: employees}
}

type CreateReportInput struct {
	Naslov  string
	Vsebina string
	// Datum defaults to now when nil.
	Datum *time.Time
	// Avtor is an optional employee id.
	Avtor string
}

// Create checks that the author, if any, exists at creation time. The
// report keeps only the id; later employee changes do not touch it.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (*model.FinancialReport, error) {
	report := &model.FinancialReport{
		Naslov:  in.Naslov,
		Vsebina: in.Vsebina,
		Avtor:   in.Avtor,
		Datum:   time.Now().UTC(),
	}
	if in.Datum != nil {
		report.Datum = in.Datum.UTC()
	}

	if report.Avtor != "" {
		if err := s.checkAuthor(ctx, report.Avtor); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("report_id", report.ID).
		Str("avtor", report.Avtor).
		Msg("financial report created")

	return report, nil
}

func (s *ReportService) checkAuthor(ctx context.Context, id string) error {
	_, err := s.employees.GetByID(ctx, id)
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		return errs.NewBadRequestError(avtorNotFoundMessage, true, &avtorNotFoundCode, []errs.FieldError{
			{Field: "avtor", Error: avtorNotFoundMessage},
		}, nil)
	}
	return err
}

func (s *ReportService) List(ctx context.Context) ([]model.FinancialReport, error) {
	return s.repo.List(ctx)
}
