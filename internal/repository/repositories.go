package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/stroski-api/internal/config"
	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/server"
)

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	List(ctx context.Context) ([]model.Expense, error)
	GetByID(ctx context.Context, id string) (*model.Expense, error)
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
}

// ReportRepository persists financial reports.
type ReportRepository interface {
	Create(ctx context.Context, report *model.FinancialReport) error
	List(ctx context.Context) ([]model.FinancialReport, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Expenses  ExpenseRepository
	Employees EmployeeRepository
	Reports   ReportRepository
}

// NewRepositories builds the repositories for the driver s.DB was opened with.
func NewRepositories(s *server.Server) (*Repositories, error) {
	switch s.DB.Driver {
	case config.DriverMongo:
		return &Repositories{
			Expenses:  NewMongoExpenseRepository(s.DB.Mongo),
			Employees: NewMongoEmployeeRepository(s.DB.Mongo),
			Reports:   NewMongoReportRepository(s.DB.Mongo),
		}, nil
	case config.DriverPostgres:
		return &Repositories{
			Expenses:  NewPostgresExpenseRepository(s.DB.Pool),
			Employees: NewPostgresEmployeeRepository(s.DB.Pool),
			Reports:   NewPostgresReportRepository(s.DB.Pool),
		}, nil
	case config.DriverMemory:
		return NewMemoryRepositories(), nil
	default:
		return nil, fmt.Errorf("no repositories for database driver %q", s.DB.Driver)
	}
}
