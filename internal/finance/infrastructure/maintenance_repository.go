package infrastructure

import (
	"database/sql"
	"time"
)

// MaintenanceRepository hard-deletes rows whose soft-delete timestamp has
// passed the retention window. Child tables go before users so foreign keys
// never block the purge.
type MaintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

var purgeTables = []string{"transactions", "budgets", "notes", "categories", "account_types", "users"}

func (r *MaintenanceRepository) PurgeSoftDeleted(olderThan time.Time) (int64, error) {
	var purged int64
	for _, table := range purgeTables {
		result, err := r.db.Exec(
			`DELETE FROM `+table+` WHERE deleted_at IS NOT NULL AND deleted_at < $1`, olderThan)
		if err != nil {
			return purged, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return purged, err
		}
		purged += affected
	}
	return purged, nil
}
