package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/student-control/internal/models"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
)

// SystemRepository answers store-level questions: reachability and schema listing.
type SystemRepository struct {
	observed
	db *sqlx.DB
}

// NewSystemRepository constructs a SystemRepository.
func NewSystemRepository(db *sqlx.DB, observer QueryObserver) *SystemRepository {
	return &SystemRepository{db: db, observed: observed{observer: observer}}
}

// Ping performs a trivial round trip against the store.
func (r *SystemRepository) Ping(ctx context.Context) error {
	defer r.observe("system.ping", time.Now())
	var one int
	if err := r.db.GetContext(ctx, &one, `SELECT 1`); err != nil {
		return appErrors.Op("ping store", err)
	}
	return nil
}

// ListTables returns the tables of the current schema.
func (r *SystemRepository) ListTables(ctx context.Context) ([]models.TableInfo, error) {
	defer r.observe("system.tables", time.Now())
	const query = `SELECT table_name FROM information_schema.tables
        WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
        ORDER BY table_name`
	tables := make([]models.TableInfo, 0)
	if err := r.db.SelectContext(ctx, &tables, query); err != nil {
		return nil, appErrors.Op("list tables", err)
	}
	return tables, nil
}
