package usecase

import (
	"context"
	"errors"

	"migration-stats-service/internal/charts/core/domain"
	"migration-stats-service/internal/charts/core/ports"
)

var (
	ErrInvalidChartKind     = errors.New("invalid chart kind")
	ErrInvalidWindow        = errors.New("invalid window for day-range chart")
	ErrInvalidMetric        = errors.New("invalid metric for monthly chart")
	ErrInvalidReferenceTime = errors.New("invalid reference time")
)

type GetChartInput struct {
	Kind   string
	Window string // "60d" / "all" (day-range kinds; empty = "60d")
	Metric string // "customers" / "volume" (kind=monthly required)

	// NowMs is the reference instant in unix ms. The caller supplies
	// it; the core never reads a clock.
	NowMs int64

	Customer *string
}

type GetChartUseCase struct {
	source ports.MigrationSourcePort
}

func NewGetChartUseCase(source ports.MigrationSourcePort) *GetChartUseCase {
	return &GetChartUseCase{source: source}
}

// Execute validates the input, fetches raw records through the source
// port and runs the aggregation pass.
func (uc *GetChartUseCase) Execute(ctx context.Context, in GetChartInput) (*domain.ChartSeries, error) {

	if in.NowMs <= 0 {
		return nil, ErrInvalidReferenceTime
	}

	switch in.Kind {
	case KindUniqueCustomers, KindIngestionCounts:
		switch in.Window {
		case "":
			in.Window = WindowLast60Days
		case WindowLast60Days, WindowAllTime:
			// valid
		default:
			return nil, ErrInvalidWindow
		}
	case KindMonthly:
		if in.Metric != MetricCustomers && in.Metric != MetricVolume {
			return nil, ErrInvalidMetric
		}
	default:
		return nil, ErrInvalidChartKind
	}

	records, err := uc.source.FetchMigrations(ctx, ports.MigrationSourceFilter{
		Customer: in.Customer,
	})
	if err != nil {
		return nil, err
	}

	series := Aggregate(records, AggregationParams{
		Kind:   in.Kind,
		Window: in.Window,
		Metric: in.Metric,
		NowMs:  in.NowMs,
	})

	return &series, nil
}
