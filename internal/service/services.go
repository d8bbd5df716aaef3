package service

import (
	"github.com/deppfellow/stroski-api/internal/repository"
	"github.com/deppfellow/stroski-api/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Expenses  *ExpenseService
	Employees *EmployeeService
	Reports   *ReportService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs WelcomeEnqueuer
	if s.Job != nil {
		jobs = s.Job
	}

	return &Services{
		Expenses:  NewExpenseService(repos.Expenses),
		Employees: NewEmployeeService(repos.Employees, jobs),
		Reports:   NewReportService(repos.Reports, repos.Employees),
	}, nil
}
