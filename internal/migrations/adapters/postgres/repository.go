package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"migration-stats-service/internal/migrations/core/domain"
	"migration-stats-service/internal/migrations/core/ports"

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

type MigrationRepository struct {
	db DB
}

func NewMigrationRepository(db DB) *MigrationRepository {
	return &MigrationRepository{db: db}
}

var _ ports.MigrationRepositoryPort = (*MigrationRepository)(nil)

// sortColumns maps the usecase's whitelisted sort fields onto columns.
// NULLS LAST keeps never-ingested customers at the bottom either way.
var sortColumns = map[string]string{
	"customer":       "customer_name",
	"last_ingestion": "last_ingestion_at",
	"total":          "total_ingestions",
}

func (r *MigrationRepository) ListMigrations(ctx context.Context, f ports.MigrationListFilter) ([]domain.Migration, error) {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		// The usecase validates first; this is the backstop.
		return nil, fmt.Errorf("unsupported sort field: %s", f.SortBy)
	}

	direction := "ASC"
	if f.Desc {
		direction = "DESC"
	}

	query := `
SELECT
    customer_name,
    last_ingestion_at,
    total_ingestions,
    ingestion_starts
FROM migrations
`
	args := []any{}
	argIndex := 1

	if f.Customer != nil {
		query += fmt.Sprintf("WHERE customer_name = $%d\n", argIndex)
		args = append(args, *f.Customer)
		argIndex++
	}

	query += fmt.Sprintf("ORDER BY %s %s NULLS LAST, customer_name ASC\n", column, direction)
	query += fmt.Sprintf("LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Migration
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

		m := domain.Migration{
			CustomerName:      name,
			IngestionStartsMs: []int64(starts),
		}
		if lastAt.Valid {
			v := lastAt.Int64
			m.LastIngestionAtMs = &v
		}
		if total.Valid {
			v := total.Int64
			m.TotalIngestions = &v
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
