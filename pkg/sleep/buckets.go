package sleep

import (
	"sort"
	"time"
)

// HalfHourCounts buckets events into 48 half-hour slots keyed by local clock
// time (0.0, 0.5, ..., 23.5). Every slot is present in the result, including
// empty ones, so callers can iterate the full day.
func HalfHourCounts(events []time.Time) map[float64]int {
	counts := make(map[float64]int, 48)
	for b := 0.0; b < 24.0; b += 0.5 {
		counts[b] = 0
	}
	for _, ev := range events {
		counts[bucketOf(ev)]++
	}
	return counts
}

// SleepBuckets returns the half-hour clock buckets covered by at least one
// record, sorted ascending, wrapping across midnight. A gap longer than a
// full day covers the whole clock.
func SleepBuckets(records []Record) []float64 {
	seen := make(map[float64]bool, 48)
	for _, r := range records {
		bucket := bucketOf(r.Start)
		steps := int(r.Duration / (30 * time.Minute))
		if steps > 48 {
			steps = 48
		}
		for s := 0; s <= steps; s++ {
			seen[bucket] = true
			bucket += 0.5
			if bucket >= 24.0 {
				bucket -= 24.0
			}
		}
	}

	buckets := make([]float64, 0, len(seen))
	for b := range seen {
		buckets = append(buckets, b)
	}
	sort.Float64s(buckets)
	return buckets
}

// bucketOf maps a timestamp to its half-hour clock bucket.
func bucketOf(t time.Time) float64 {
	b := float64(t.Hour())
	if t.Minute() >= 30 {
		b += 0.5
	}
	return b
}
