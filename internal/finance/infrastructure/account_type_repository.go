package infrastructure

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type AccountTypeRepository struct {
	db *sql.DB
}

func NewAccountTypeRepository(db *sql.DB) *AccountTypeRepository {
	return &AccountTypeRepository{db: db}
}

func (r *AccountTypeRepository) FindByUser(userID string) ([]domain.AccountType, error) {
	rows, err := r.db.Query(
		`SELECT id, name, user_id, created_at, updated_at
		 FROM account_types WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accountTypes []domain.AccountType
	for rows.Next() {
		var accountType domain.AccountType
		if err := rows.Scan(&accountType.ID, &accountType.Name, &accountType.UserID,
			&accountType.CreatedAt, &accountType.UpdatedAt); err != nil {
			return nil, err
		}
		accountTypes = append(accountTypes, accountType)
	}
	return accountTypes, rows.Err()
}

func (r *AccountTypeRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM account_types WHERE user_id = $1 AND deleted_at IS NULL`, userID).Scan(&count)
	return count, err
}

// SeedDefaults mirrors CategoryRepository.SeedDefaults; the unique index is
// (user_id, name).
func (r *AccountTypeRepository) SeedDefaults(userID string, names []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, name := range names {
		if _, err := tx.Exec(
			`INSERT INTO account_types (id, name, user_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (user_id, name) WHERE deleted_at IS NULL DO NOTHING`,
			uuid.NewString(), name, userID, now, now,
		); err != nil {
			safeRollback(tx)
			return err
		}
	}
	return tx.Commit()
}

func (r *AccountTypeRepository) Save(accountType domain.AccountType) error {
	_, err := r.db.Exec(
		`INSERT INTO account_types (id, name, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		accountType.ID, accountType.Name, accountType.UserID, accountType.CreatedAt, accountType.UpdatedAt,
	)
	return err
}

func (r *AccountTypeRepository) Rename(accountTypeID, userID, name string, updatedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE account_types SET name = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		name, updatedAt, accountTypeID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *AccountTypeRepository) Delete(accountTypeID, userID string) error {
	result, err := r.db.Exec(
		`UPDATE account_types SET deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, accountTypeID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
