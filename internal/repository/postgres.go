package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/sqlerr"
)

const (
	tableExpenses  = "expenses"
	tableEmployees = "employees"
	tableReports   = "financial_reports"
)

// PostgresExpenseRepository stores expenses in the expenses table.
type PostgresExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresExpenseRepository(pool *pgxpool.Pool) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{pool: pool}
}

func (r *PostgresExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	const stmt = `
		INSERT INTO expenses (name, amount, created_at)
		VALUES (@name, @amount, @created_at)
		RETURNING id::text`

	err := r.pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"name":       expense.Name,
		"amount":     expense.Amount,
		"created_at": expense.CreatedAt,
	}).Scan(&expense.ID)
	if err != nil {
		return sqlerr.HandleError(sqlerr.WithTable(tableExpenses, err))
	}
	return nil
}

func (r *PostgresExpenseRepository) List(ctx context.Context) ([]model.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, amount, created_at
		FROM expenses
		ORDER BY created_at, id`)
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableExpenses, err))
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Expense, error) {
		var e model.Expense
		err := row.Scan(&e.ID, &e.Name, &e.Amount, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableExpenses, err))
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}

func (r *PostgresExpenseRepository) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errExpenseNotFound()
	}

	var e model.Expense
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, amount, created_at
		FROM expenses
		WHERE id = $1`, id).Scan(&e.ID, &e.Name, &e.Amount, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errExpenseNotFound()
	}
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableExpenses, err))
	}
	return &e, nil
}

// PostgresEmployeeRepository stores employees in the employees table.
type PostgresEmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEmployeeRepository(pool *pgxpool.Pool) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{pool: pool}
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	const stmt = `
		INSERT INTO employees (ime, priimek, email, polozaj, created_at)
		VALUES (@ime, @priimek, @email, @polozaj, @created_at)
		RETURNING id::text`

	err := r.pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"ime":        employee.Ime,
		"priimek":    employee.Priimek,
		"email":      employee.Email,
		"polozaj":    employee.Polozaj,
		"created_at": employee.CreatedAt,
	}).Scan(&employee.ID)
	if err != nil {
		return sqlerr.HandleError(sqlerr.WithTable(tableEmployees, err))
	}
	return nil
}

func scanEmployee(row pgx.Row) (model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Ime, &e.Priimek, &e.Email, &e.Polozaj, &e.CreatedAt)
	return e, err
}

func (r *PostgresEmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, ime, priimek, email, polozaj, created_at
		FROM employees
		ORDER BY created_at, id`)
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableEmployees, err))
	}

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableEmployees, err))
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return employees, nil
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errEmployeeNotFound()
	}

	e, err := scanEmployee(r.pool.QueryRow(ctx, `
		SELECT id::text, ime, priimek, email, polozaj, created_at
		FROM employees
		WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errEmployeeNotFound()
	}
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableEmployees, err))
	}
	return &e, nil
}

// PostgresReportRepository stores reports in financial_reports. The author
// is a nullable foreign key into employees.
type PostgresReportRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReportRepository(pool *pgxpool.Pool) *PostgresReportRepository {
	return &PostgresReportRepository{pool: pool}
}

func (r *PostgresReportRepository) Create(ctx context.Context, report *model.FinancialReport) error {
	const stmt = `
		INSERT INTO financial_reports (naslov, datum, vsebina, author_id)
		VALUES (@naslov, @datum, @vsebina, @author_id)
		RETURNING id::text`

	var authorID *string
	if report.Avtor != "" {
		authorID = &report.Avtor
	}

	err := r.pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"naslov":    report.Naslov,
		"datum":     report.Datum,
		"vsebina":   report.Vsebina,
		"author_id": authorID,
	}).Scan(&report.ID)
	if err != nil {
		return sqlerr.HandleError(sqlerr.WithTable(tableReports, err))
	}
	return nil
}

func (r *PostgresReportRepository) List(ctx context.Context) ([]model.FinancialReport, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, naslov, datum, vsebina, COALESCE(author_id::text, '')
		FROM financial_reports
		ORDER BY datum, id`)
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableReports, err))
	}

	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.FinancialReport, error) {
		var fr model.FinancialReport
		err := row.Scan(&fr.ID, &fr.Naslov, &fr.Datum, &fr.Vsebina, &fr.Avtor)
		return fr, err
	})
	if err != nil {
		return nil, sqlerr.HandleError(sqlerr.WithTable(tableReports, err))
	}
	if reports == nil {
		reports = []model.FinancialReport{}
	}
	return reports, nil
}
