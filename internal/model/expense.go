package model

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidName is returned when an expense has no usable name.
	ErrInvalidName = errors.New("Invalid name")

	// ErrInvalidAmount is returned when an expense has no usable amount.
	ErrInvalidAmount = errors.New("Invalid amount")
)

// Expense is a single expense record (strosek).
type Expense struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateExpense checks a candidate expense.
//
// A nil pointer means the field was absent or not of the expected type.
// The name is checked first, so a payload missing both fields reports
// ErrInvalidName.
func ValidateExpense(name *string, amount *float64) error {
	if name == nil || *name == "" {
		return ErrInvalidName
	}
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return ErrInvalidAmount
	}
	return nil
}
