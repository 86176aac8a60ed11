package domain

// MigrationRecord is one customer's ingestion history as the retrieval
// layer hands it over. Timestamps are unix milliseconds; pointers mark
// fields the source may omit.
type MigrationRecord struct {
	CustomerName      string
	LastIngestionAtMs *int64
	TotalIngestions   *int64
	IngestionStartsMs []int64
}

type SeriesPoint struct {
	Label   string
	Count   int64
	Tooltip string
}

// ChartSeries is one chart's worth of bucketed counts, ready for the
// renderer. An empty Points slice with MaxCount 0 means "no data",
// which is distinct from a series of legitimate zeros.
type ChartSeries struct {
	Kind   string
	Window string

	Points []SeriesPoint

	// MaxCount is max over Points, floored to 1 whenever Points is
	// non-empty so renderers can divide by it.
	MaxCount int64

	// GrandTotal is the series total: the deduplicated customer union
	// for the unique-customer kind, a plain event sum otherwise.
	GrandTotal int64
}

func (s *ChartSeries) Empty() bool {
	return len(s.Points) == 0
}
