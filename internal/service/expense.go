package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/stroski-api/internal/model"
	"github.com/deppfellow/stroski-api/internal/repository"
)

type ExpenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create stores an already validated expense.
func (s *ExpenseService) Create(ctx context.Context, name string, amount float64) (*model.Expense, error) {
	expense := &model.Expense{
		Name:      name,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("expense_id", expense.ID).
		Float64("amount", expense.Amount).
		Msg("expense created")

	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]model.Expense, error) {
	return s.repo.List(ctx)
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*model.Expense, error) {
	return s.repo.GetByID(ctx, id)
}
