// Package sleep infers sleep intervals from gaps in activity timestamps.
package sleep

import (
	"sort"
	"time"
)

// DefaultThreshold is the minimum inactivity gap treated as sleep.
// Four hours is long enough to sit above ordinary daytime breaks while
// still catching short nights.
const DefaultThreshold = 4 * time.Hour

// Record is one inferred sleep interval: the gap between two temporally
// adjacent activity events that reached the threshold.
type Record struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// Infer scans consecutive pairs of activity timestamps and emits a Record
// for every gap of at least threshold. A gap exactly equal to the threshold
// counts as sleep (inclusive boundary). The input is copied and sorted
// defensively; ascending order is enforced here, not assumed of the caller.
// Fewer than two events yields no records, as does a threshold no gap meets.
func Infer(events []time.Time, threshold time.Duration) []Record {
	if len(events) < 2 {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	sorted := make([]time.Time, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var records []Record
	for i := 0; i < len(sorted)-1; i++ {
		gap := sorted[i+1].Sub(sorted[i])
		if gap >= threshold {
			records = append(records, Record{
				Start:    sorted[i],
				End:      sorted[i+1],
				Duration: gap,
			})
		}
	}
	return records
}
