package domain

import (
	"time"

	"github.com/spendwise/spendwise/internal/finance/errors"
)

const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"
)

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense || transactionType == TypeTransfer
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByUser(userID string) ([]Transaction, error)
	FindByID(transactionID, userID string) (*Transaction, error)
	FindBookmarked(userID string) ([]Transaction, error)
	Update(transaction Transaction) error
	UpdateBookmarked(transactionID, userID string, bookmarked bool, updatedAt time.Time) error
	Delete(transactionID, userID string) error
}

type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "income", "expense" or "transfer"
	Date        time.Time `json:"date"`
	Account     string    `json:"account"`  // account type name, denormalized
	Category    string    `json:"category"` // category name, denormalized
	Amount      float64   `json:"amount"`
	Note        string    `json:"note"`
	Description string    `json:"description"`
	Bookmarked  bool      `json:"bookmarked"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'income', 'expense' or 'transfer'")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if t.Account == "" {
		return errors.NewValidationError("Account is required")
	}
	if t.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if t.Amount < 0 {
		return errors.NewValidationError("Amount must not be negative")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return nil
}
