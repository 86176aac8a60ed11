package domain

// Migration is one customer's row in the dashboard table. Timestamps
// are unix milliseconds; nil pointers mean the source never recorded
// the field (distinct from zero).
type Migration struct {
	CustomerName      string
	LastIngestionAtMs *int64
	TotalIngestions   *int64
	IngestionStartsMs []int64
}
