package infrastructure

import (
	"database/sql"

	"github.com/spendwise/spendwise/internal/finance/domain"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, category, amount, user_id, created_at, updated_at
		 FROM budgets WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.Category, &budget.Amount, &budget.UserID,
			&budget.CreatedAt, &budget.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, category, amount, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		budget.ID, budget.Category, budget.Amount, budget.UserID, budget.CreatedAt, budget.UpdatedAt,
	)
	return err
}

func (r *BudgetRepository) Update(budget domain.Budget) error {
	result, err := r.db.Exec(
		`UPDATE budgets SET category = $1, amount = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5 AND deleted_at IS NULL`,
		budget.Category, budget.Amount, budget.UpdatedAt, budget.ID, budget.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *BudgetRepository) Delete(budgetID, userID string) error {
	result, err := r.db.Exec(
		`UPDATE budgets SET deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, budgetID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
