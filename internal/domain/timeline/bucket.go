package timeline

import "time"

// Bucket is a named time-range group of the feed.
type Bucket string

const (
	BucketToday     Bucket = "Today"
	BucketThisWeek  Bucket = "This Week"
	BucketThisMonth Bucket = "This Month"
	BucketOlder     Bucket = "Older"
)

// BucketOrder is the fixed render order for group headers.
var BucketOrder = [...]Bucket{BucketToday, BucketThisWeek, BucketThisMonth, BucketOlder}

// startOfDay truncates to local calendar midnight in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify assigns the item to the first matching bucket relative to the
// caller-supplied now. Boundaries are measured from calendar midnight,
// not from the current instant, so an item created at 00:00 today is
// still Today. "This Month" means one calendar month back, not 30 days.
func Classify(it Item, now time.Time) Bucket {
	day := startOfDay(now)
	switch {
	case !it.CreatedAt.Before(day):
		return BucketToday
	case !it.CreatedAt.Before(day.AddDate(0, 0, -7)):
		return BucketThisWeek
	case !it.CreatedAt.Before(day.AddDate(0, -1, 0)):
		return BucketThisMonth
	default:
		return BucketOlder
	}
}
