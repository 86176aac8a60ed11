package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"migration-stats-service/internal/migrations/core/domain"
	"migration-stats-service/internal/migrations/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListMigrationsUseCase interface {
	Execute(ctx context.Context, in usecase.ListMigrationsInput) ([]domain.Migration, error)
}

type MigrationHandler struct {
	uc ListMigrationsUseCase
}

func NewMigrationHandler(uc ListMigrationsUseCase) *MigrationHandler {
	return &MigrationHandler{uc: uc}
}

// ListMigrations godoc
// @Summary List per-customer migration records
// @Description Returns the dashboard table rows, sorted server-side
// @Tags Migrations
// @Produce json
// @Param customer query string false "Restrict to one customer"
// @Param sort query string false "Sort field: customer | last_ingestion | total"
// @Param order query string false "asc | desc (default asc)"
// @Param limit query int false "Page size (default 100, max 1000)"
// @Param offset query int false "Page offset"
// @Success 200 {object} MigrationListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /migrations [get]
func (h *MigrationHandler) ListMigrations(c *fiber.Ctx) error {
	var customerPtr *string
	customer := c.Query("customer", "")
	if customer != "" {
		customerPtr = &customer
	}

	order := c.Query("order", "asc")
	if order != "asc" && order != "desc" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'order' parameter",
		})
	}

	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'limit' parameter",
		})
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'offset' parameter",
		})
	}

	in := usecase.ListMigrationsInput{
		Customer: customerPtr,
		SortBy:   c.Query("sort", ""),
		Desc:     order == "desc",
		Limit:    limit,
		Offset:   offset,
	}

	migrations, err := h.uc.Execute(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSortField),
			errors.Is(err, usecase.ErrInvalidPaging):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := MigrationListResponse{
		Migrations: make([]MigrationResponse, 0, len(migrations)),
		Count:      len(migrations),
	}
	for _, m := range migrations {
		starts := m.IngestionStartsMs
		if starts == nil {
			starts = []int64{}
		}
		resp.Migrations = append(resp.Migrations, MigrationResponse{
			CustomerName:      m.CustomerName,
			LastIngestionAt:   m.LastIngestionAtMs,
			TotalIngestions:   m.TotalIngestions,
			IngestionStarts:   starts,
			IngestionAttempts: len(m.IngestionStartsMs),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func intQuery(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
