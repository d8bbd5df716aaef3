package repository

import "github.com/deppfellow/stroski-api/internal/errs"

// Not-found errors are shared by every driver so clients see the same
// message regardless of the store.
func errExpenseNotFound() error {
	return errs.NewNotFoundError("Strosek not found", true, nil)
}

func errEmployeeNotFound() error {
	return errs.NewNotFoundError("Zaposleni not found", true, nil)
}
