package usecase

import (
	"fmt"
	"sort"

	"migration-stats-service/internal/charts/core/domain"
)

// Chart kinds and their parameters. One parameterized aggregation pass
// replaces the per-chart functions of the original dashboard.
const (
	KindUniqueCustomers = "customers"  // deduped customer names per day-range bucket
	KindIngestionCounts = "ingestions" // raw ingestion events per day-range bucket
	KindMonthly         = "monthly"    // month-indexed totals

	WindowLast60Days = "60d"
	WindowAllTime    = "all"

	MetricCustomers = "customers"
	MetricVolume    = "volume"
)

type AggregationParams struct {
	Kind   string
	Window string // day-range kinds only
	Metric string // monthly only
	NowMs  int64  // explicit reference instant, unix ms
}

// Aggregate runs one pure pass over records and produces a display-ready
// series. It never fails: malformed fields degrade to zero or are
// skipped, and "no qualifying records" yields the empty-series sentinel
// (no points, MaxCount 0). Callers validate params first; an unknown
// kind yields the sentinel.
func Aggregate(records []domain.MigrationRecord, p AggregationParams) domain.ChartSeries {
	switch p.Kind {
	case KindUniqueCustomers:
		return aggregateDayRange(records, p, true, "customers")
	case KindIngestionCounts:
		return aggregateDayRange(records, p, false, "ingestions")
	case KindMonthly:
		return aggregateMonthly(records, p)
	default:
		return emptySeries(p)
	}
}

func emptySeries(p AggregationParams) domain.ChartSeries {
	return domain.ChartSeries{
		Kind:   p.Kind,
		Window: p.Window,
		Points: []domain.SeriesPoint{},
	}
}

// aggregateDayRange covers both fixed-bucket kinds. With dedup, each
// bucket holds a set of customer names and the grand total is the union
// across buckets, so a customer active in several buckets still counts
// once overall. Without dedup, buckets are plain event counters.
//
// The all-time window lifts the 60-day bound for the grand total only:
// events older than the last display bucket join the union / event
// total but land in no bucket, so GrandTotal may exceed the sum of the
// bucket counts there.
func aggregateDayRange(records []domain.MigrationRecord, p AggregationParams, dedup bool, unit string) domain.ChartSeries {
	allTime := p.Window == WindowAllTime

	var sets [dayRangeBuckets]map[string]struct{}
	var counts [dayRangeBuckets]int64
	if dedup {
		for i := range sets {
			sets[i] = make(map[string]struct{})
		}
	}
	union := make(map[string]struct{})

	qualifying := false
	var eventTotal int64

	for _, rec := range records {
		if len(rec.IngestionStartsMs) == 0 {
			continue
		}
		qualifying = true

		for _, ts := range rec.IngestionStartsMs {
			idx, ok := dayRangeIndex(ts, p.NowMs)
			if !ok {
				continue
			}
			if idx >= dayRangeBuckets {
				if !allTime {
					continue
				}
				// Counts toward the grand total, displays nowhere.
				union[rec.CustomerName] = struct{}{}
				eventTotal++
				continue
			}

			if dedup {
				sets[idx][rec.CustomerName] = struct{}{}
				union[rec.CustomerName] = struct{}{}
			} else {
				counts[idx]++
			}
			eventTotal++
		}
	}

	if !qualifying {
		return emptySeries(p)
	}

	var grand int64
	if dedup {
		for i := range sets {
			counts[i] = int64(len(sets[i]))
		}
		grand = int64(len(union))
	} else {
		grand = eventTotal
	}

	series := domain.ChartSeries{
		Kind:       p.Kind,
		Window:     p.Window,
		Points:     make([]domain.SeriesPoint, 0, dayRangeBuckets),
		GrandTotal: grand,
	}

	// Zero-fill: every fixed label appears even at count 0.
	for i, label := range dayRangeLabels {
		series.Points = append(series.Points, domain.SeriesPoint{
			Label:   label,
			Count:   counts[i],
			Tooltip: tooltip(label, counts[i], unit, grand),
		})
		if counts[i] > series.MaxCount {
			series.MaxCount = counts[i]
		}
	}
	if series.MaxCount == 0 {
		series.MaxCount = 1
	}

	return series
}

// aggregateMonthly buckets by the UTC month of LastIngestionAtMs. The
// month axis is data-driven: only months with at least one contributing
// record appear, sorted ascending ("YYYY-MM" keys sort chronologically).
func aggregateMonthly(records []domain.MigrationRecord, p AggregationParams) domain.ChartSeries {
	unit := "customers"
	if p.Metric == MetricVolume {
		unit = "ingestions"
	}

	totals := make(map[string]int64)
	qualifying := false

	for _, rec := range records {
		if rec.LastIngestionAtMs == nil {
			continue
		}
		key, ok := MonthBucket(*rec.LastIngestionAtMs)
		if !ok {
			continue
		}
		qualifying = true

		if p.Metric == MetricVolume {
			var vol int64
			if rec.TotalIngestions != nil && *rec.TotalIngestions > 0 {
				vol = *rec.TotalIngestions
			}
			totals[key] += vol
		} else {
			totals[key]++
		}
	}

	if !qualifying {
		return emptySeries(p)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var grand int64
	for _, k := range keys {
		grand += totals[k]
	}

	series := domain.ChartSeries{
		Kind:       p.Kind,
		Points:     make([]domain.SeriesPoint, 0, len(keys)),
		GrandTotal: grand,
	}
	for _, k := range keys {
		series.Points = append(series.Points, domain.SeriesPoint{
			Label:   k,
			Count:   totals[k],
			Tooltip: tooltip(k, totals[k], unit, grand),
		})
		if totals[k] > series.MaxCount {
			series.MaxCount = totals[k]
		}
	}
	if series.MaxCount == 0 {
		series.MaxCount = 1
	}

	return series
}

func tooltip(label string, count int64, unit string, grand int64) string {
	pct := 0.0
	if grand > 0 {
		pct = float64(count) / float64(grand) * 100
	}
	return fmt.Sprintf("%s: %d %s (%.1f%%)", label, count, unit, pct)
}
