package domain

import "time"

// AccountType labels a payment method or fund source (card, cash, UPI...).
type AccountType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AccountTypeRepository interface {
	FindByUser(userID string) ([]AccountType, error)
	CountByUser(userID string) (int, error)
	SeedDefaults(userID string, names []string) error
	Save(accountType AccountType) error
	Rename(accountTypeID, userID, name string, updatedAt time.Time) error
	Delete(accountTypeID, userID string) error
}
