package infrastructure

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	return r.queryCategories(
		`SELECT id, name, type, user_id, created_at, updated_at
		 FROM categories WHERE user_id = $1 AND deleted_at IS NULL`, userID)
}

func (r *CategoryRepository) FindByUserAndType(userID, categoryType string) ([]domain.Category, error) {
	return r.queryCategories(
		`SELECT id, name, type, user_id, created_at, updated_at
		 FROM categories WHERE user_id = $1 AND type = $2 AND deleted_at IS NULL`,
		userID, categoryType)
}

func (r *CategoryRepository) queryCategories(query string, args ...interface{}) ([]domain.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.UserID,
			&category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) ExistsForUser(userID, name, categoryType string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM categories
		 WHERE user_id = $1 AND name = $2 AND type = $3 AND deleted_at IS NULL)`,
		userID, name, categoryType).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) CountByUserAndType(userID, categoryType string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE user_id = $1 AND type = $2 AND deleted_at IS NULL`,
		userID, categoryType).Scan(&count)
	return count, err
}

// SeedDefaults inserts one predefined set inside a single database
// transaction. ON CONFLICT DO NOTHING against the (user_id, type, name)
// unique index keeps concurrent first reads from doubling the set and a
// failed insert from stranding a partial one.
func (r *CategoryRepository) SeedDefaults(userID, categoryType string, names []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, name := range names {
		if _, err := tx.Exec(
			`INSERT INTO categories (id, name, type, user_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id, type, name) WHERE deleted_at IS NULL DO NOTHING`,
			uuid.NewString(), name, categoryType, userID, now, now,
		); err != nil {
			safeRollback(tx)
			return err
		}
	}
	return tx.Commit()
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, type, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.Name, category.Type, category.UserID, category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) Rename(categoryID, userID, name string, updatedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		name, updatedAt, categoryID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *CategoryRepository) Delete(categoryID, userID string) error {
	result, err := r.db.Exec(
		`UPDATE categories SET deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, categoryID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
