package ports

import (
	"context"

	"migration-stats-service/internal/migrations/core/domain"
)

type MigrationListFilter struct {
	Customer *string // optional exact customer_name match

	SortBy string // "customer" / "last_ingestion" / "total"
	Desc   bool

	Limit  int
	Offset int
}

type MigrationRepositoryPort interface {
	ListMigrations(ctx context.Context, f MigrationListFilter) ([]domain.Migration, error)
}
