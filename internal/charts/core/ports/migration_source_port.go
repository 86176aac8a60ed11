package ports

import (
	"context"

	"migration-stats-service/internal/charts/core/domain"
)

type MigrationSourceFilter struct {
	Customer *string // optional exact customer_name match
}

type MigrationSourcePort interface {
	// FetchMigrations returns the raw records the Aggregator consumes.
	// Retrieval failures surface as errors; "no rows" is an empty slice.
	FetchMigrations(ctx context.Context, f MigrationSourceFilter) ([]domain.MigrationRecord, error)
}
