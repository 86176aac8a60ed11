package usecase

import (
	"context"
	"errors"

	"migration-stats-service/internal/migrations/core/domain"
	"migration-stats-service/internal/migrations/core/ports"
)

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidPaging    = errors.New("invalid limit/offset")
)

const (
	SortByCustomer      = "customer"
	SortByLastIngestion = "last_ingestion"
	SortByTotal         = "total"

	defaultLimit = 100
	maxLimit     = 1000
)

type ListMigrationsInput struct {
	Customer *string
	SortBy   string // empty = "customer"
	Desc     bool
	Limit    int // 0 = default
	Offset   int
}

type ListMigrationsUseCase struct {
	repo ports.MigrationRepositoryPort
}

func NewListMigrationsUseCase(repo ports.MigrationRepositoryPort) *ListMigrationsUseCase {
	return &ListMigrationsUseCase{repo: repo}
}

// Execute validates sort/paging and delegates to the repository. The
// sort-field whitelist is what keeps ORDER BY out of caller hands.
func (uc *ListMigrationsUseCase) Execute(ctx context.Context, in ListMigrationsInput) ([]domain.Migration, error) {

	switch in.SortBy {
	case "":
		in.SortBy = SortByCustomer
	case SortByCustomer, SortByLastIngestion, SortByTotal:
		// valid
	default:
		return nil, ErrInvalidSortField
	}

	if in.Limit < 0 || in.Limit > maxLimit || in.Offset < 0 {
		return nil, ErrInvalidPaging
	}
	if in.Limit == 0 {
		in.Limit = defaultLimit
	}

	return uc.repo.ListMigrations(ctx, ports.MigrationListFilter{
		Customer: in.Customer,
		SortBy:   in.SortBy,
		Desc:     in.Desc,
		Limit:    in.Limit,
		Offset:   in.Offset,
	})
}
