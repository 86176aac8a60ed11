package usecase

import "time"

const (
	dayMs = int64(86_400_000)

	bucketWidthDays = 10
	dayRangeBuckets = 6
)

// dayRangeLabels are the fixed display labels for the day-range scheme.
// Bucket k covers the half-open interval [10k, 10k+10) in whole days
// before the reference instant, so a boundary day (10, 20, ...) belongs
// to the next bucket.
var dayRangeLabels = [dayRangeBuckets]string{
	"1-10", "11-20", "21-30", "31-40", "41-50", "51-60",
}

// dayRangeIndex classifies a timestamp against the reference instant.
// ok is false for future events and non-positive timestamps. The index
// is not capped: callers decide what to do with idx >= dayRangeBuckets
// depending on the window in effect.
func dayRangeIndex(tsMs, nowMs int64) (idx int, ok bool) {
	if tsMs <= 0 || tsMs > nowMs {
		return 0, false
	}
	daysAgo := (nowMs - tsMs) / dayMs
	return int(daysAgo / bucketWidthDays), true
}

// DayRangeBucket returns the display label for a timestamp under the
// bounded 60-day window, or ok=false when the event is out of range.
func DayRangeBucket(tsMs, nowMs int64) (label string, ok bool) {
	idx, ok := dayRangeIndex(tsMs, nowMs)
	if !ok || idx >= dayRangeBuckets {
		return "", false
	}
	return dayRangeLabels[idx], true
}

// MonthBucket keys a timestamp by its UTC calendar month ("YYYY-MM").
// Month classification is independent of any reference instant; only
// non-positive timestamps are rejected.
func MonthBucket(tsMs int64) (key string, ok bool) {
	if tsMs <= 0 {
		return "", false
	}
	return time.UnixMilli(tsMs).UTC().Format("2006-01"), true
}
