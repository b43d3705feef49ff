package domain

import (
	"time"

	"github.com/spendwise/spendwise/internal/finance/errors"
)

// Budget is a per-category spending ceiling evaluated per calendar month.
// The category reference is a denormalized name, same as on transactions.
type Budget struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Budget) Validate() error {
	if b.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if b.Amount == 0 {
		return errors.NewValidationError("Amount is required")
	}
	return nil
}

type BudgetRepository interface {
	FindByUser(userID string) ([]Budget, error)
	Save(budget Budget) error
	Update(budget Budget) error
	Delete(budgetID, userID string) error
}
