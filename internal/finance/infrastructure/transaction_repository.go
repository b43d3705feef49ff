package infrastructure

import (
	"database/sql"
	"errors"
	"time"

	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, type, date, account, category, amount, note, description, bookmarked, user_id, created_at, updated_at`

func scanTransaction(row interface{ Scan(...interface{}) error }) (domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.Type, &transaction.Date, &transaction.Account,
		&transaction.Category, &transaction.Amount, &transaction.Note, &transaction.Description,
		&transaction.Bookmarked, &transaction.UserID, &transaction.CreatedAt, &transaction.UpdatedAt)
	return transaction, err
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		transaction.ID, transaction.Type, transaction.Date, transaction.Account, transaction.Category,
		transaction.Amount, transaction.Note, transaction.Description, transaction.Bookmarked,
		transaction.UserID, transaction.CreatedAt, transaction.UpdatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindBookmarked(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 AND bookmarked AND deleted_at IS NULL`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		transactionID, userID)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions
		 SET type = $1, date = $2, account = $3, category = $4, amount = $5, note = $6,
		     description = $7, updated_at = $8
		 WHERE id = $9 AND user_id = $10 AND deleted_at IS NULL`,
		transaction.Type, transaction.Date, transaction.Account, transaction.Category,
		transaction.Amount, transaction.Note, transaction.Description, transaction.UpdatedAt,
		transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *TransactionRepository) UpdateBookmarked(transactionID, userID string, bookmarked bool, updatedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE transactions SET bookmarked = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		bookmarked, updatedAt, transactionID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete is a soft delete; the row stays around until the retention purge
// removes it.
func (r *TransactionRepository) Delete(transactionID, userID string) error {
	result, err := r.db.Exec(
		`UPDATE transactions SET deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, transactionID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// requireRowAffected turns a zero-row mutation into a not-found error. All
// mutations are compound predicates on (id, user_id), so an id owned by
// another user never silently succeeds.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}
