package postgres

import (
	"context"
	"database/sql"

	"migration-stats-service/internal/charts/core/domain"
	"migration-stats-service/internal/charts/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type MigrationSource struct {
	db DB
}

func NewMigrationSource(db DB) *MigrationSource {
	return &MigrationSource{db: db}
}

var _ ports.MigrationSourcePort = (*MigrationSource)(nil)

const fetchMigrationsSQL = `
SELECT
    customer_name,
    last_ingestion_at,
    total_ingestions,
    ingestion_starts
FROM migrations
`

func (r *MigrationSource) FetchMigrations(ctx context.Context, f ports.MigrationSourceFilter) ([]domain.MigrationRecord, error) {
	query := fetchMigrationsSQL
	var args []any
	if f.Customer != nil {
		query += "WHERE customer_name = $1\n"
		args = append(args, *f.Customer)
	}
	query += "ORDER BY customer_name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MigrationRecord
	for rows.Next() {
		var (
			name   string
			lastAt sql.NullInt64
			total  sql.NullInt64
			starts pq.Int64Array
		)
		if err := rows.Scan(&name, &lastAt, &total, &starts); err != nil {
			return nil, err
		}

		rec := domain.MigrationRecord{
			CustomerName:      name,
			IngestionStartsMs: []int64(starts),
		}
		if lastAt.Valid {
			v := lastAt.Int64
			rec.LastIngestionAtMs = &v
		}
		if total.Valid {
			v := total.Int64
			rec.TotalIngestions = &v
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
