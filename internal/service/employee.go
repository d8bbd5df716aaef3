package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/stroski-api/internal/lib/job"
	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/repository"
)

// WelcomeEnqueuer schedules the welcome e-mail for a new employee.
type WelcomeEnqueuer interface {
	EnqueueEmployeeWelcome(ctx context.Context, p job.EmployeeWelcomePayload) error
}

type EmployeeService struct {
	repo repository.EmployeeRepository
	jobs WelcomeEnqueuer
}

// NewEmployeeService builds the service; jobs may be nil when background
// jobs are disabled.
func NewEmployeeService(repo repository.EmployeeRepository, jobs WelcomeEnqueuer) *EmployeeService {
	return &EmployeeService{repo: repo, jobs: jobs}
}

type CreateEmployeeInput struct {
	Ime     string
	Priimek string
	Email   string
	Polozaj string
}

// Create stores the employee, then enqueues the welcome e-mail. A failed
// enqueue is logged and does not fail the create.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*model.Employee, error) {
	employee := &model.Employee{
		Ime:       in.Ime,
		Priimek:   in.Priimek,
		Email:     in.Email,
		Polozaj:   in.Polozaj,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("employee_id", employee.ID).Logger()
	logger.Info().Msg("employee created")

	if s.jobs != nil {
		err := s.jobs.EnqueueEmployeeWelcome(ctx, job.EmployeeWelcomePayload{
			To:      employee.Email,
			Ime:     employee.Ime,
			Priimek: employee.Priimek,
			Polozaj: employee.Polozaj,
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to enqueue employee welcome email")
		}
	}

	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	return s.repo.GetByID(ctx, id)
}
