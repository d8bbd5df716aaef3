package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/deppfellow/stroski-api/internal/model"
)

// memoryStore is an ordered, concurrency-safe map keyed by generated UUIDs.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{items: make(map[string]T)}
}

func (s *memoryStore[T]) insert(id string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, id)
	s.items[id] = item
}

func (s *memoryStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *memoryStore[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// NewMemoryRepositories returns process-local repositories. Data does not
// survive a restart.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Expenses:  &MemoryExpenseRepository{store: newMemoryStore[model.Expense]()},
		Employees: &MemoryEmployeeRepository{store: newMemoryStore[model.Employee]()},
		Reports:   &MemoryReportRepository{store: newMemoryStore[model.FinancialReport]()},
	}
}

type MemoryExpenseRepository struct {
	store *memoryStore[model.Expense]
}

func (r *MemoryExpenseRepository) Create(_ context.Context, expense *model.Expense) error {
	expense.ID = uuid.NewString()
	r.store.insert(expense.ID, *expense)
	return nil
}

func (r *MemoryExpenseRepository) List(_ context.Context) ([]model.Expense, error) {
	return r.store.all(), nil
}

func (r *MemoryExpenseRepository) GetByID(_ context.Context, id string) (*model.Expense, error) {
	expense, ok := r.store.get(id)
	if !ok {
		return nil, errExpenseNotFound()
	}
	return &expense, nil
}

type MemoryEmployeeRepository struct {
	store *memoryStore[model.Employee]
}

func (r *MemoryEmployeeRepository) Create(_ context.Context, employee *model.Employee) error {
	employee.ID = uuid.NewString()
	r.store.insert(employee.ID, *employee)
	return nil
}

func (r *MemoryEmployeeRepository) List(_ context.Context) ([]model.Employee, error) {
	return r.store.all(), nil
}

func (r *MemoryEmployeeRepository) GetByID(_ context.Context, id string) (*model.Employee, error) {
	employee, ok := r.store.get(id)
	if !ok {
		return nil, errEmployeeNotFound()
	}
	return &employee, nil
}

type MemoryReportRepository struct {
	store *memoryStore[model.FinancialReport]
}

func (r *MemoryReportRepository) Create(_ context.Context, report *model.FinancialReport) error {
	report.ID = uuid.NewString()
	r.store.insert(report.ID, *report)
	return nil
}

func (r *MemoryReportRepository) List(_ context.Context) ([]model.FinancialReport, error) {
	return r.store.all(), nil
}
