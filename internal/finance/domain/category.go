package domain

import "time"

// Category classifies a transaction as income or expense. Categories are
// owned by a single user; transactions reference them by name, not by id.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // "income" or "expense"
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryRepository interface {
	FindByUser(userID string) ([]Category, error)
	FindByUserAndType(userID, categoryType string) ([]Category, error)
	ExistsForUser(userID, name, categoryType string) (bool, error)
	CountByUserAndType(userID, categoryType string) (int, error)
	// SeedDefaults bulk-inserts the predefined set for one type inside a
	// single database transaction. Rows that already exist for the user
	// are skipped via the (user_id, type, name) unique index.
	SeedDefaults(userID, categoryType string, names []string) error
	Save(category Category) error
	Rename(categoryID, userID, name string, updatedAt time.Time) error
	Delete(categoryID, userID string) error
}
