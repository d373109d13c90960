package sleep

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Summary holds descriptive statistics over a set of sleep records.
// CommonSleepHour and CommonWakeHour are modal local clock hours; both are
// -1 when no records exist.
type Summary struct {
	Nights          int
	Mean            time.Duration
	Median          time.Duration
	Std             time.Duration
	Min             time.Duration
	Max             time.Duration
	CommonSleepHour int
	CommonWakeHour  int
}

// Summarize reduces records to summary statistics. Zero records is valid
// and yields a Summary with Nights == 0; it is never an error.
// Std is the sample standard deviation, 0 for fewer than two nights.
func Summarize(records []Record) Summary {
	s := Summary{
		Nights:          len(records),
		CommonSleepHour: -1,
		CommonWakeHour:  -1,
	}
	if s.Nights == 0 {
		return s
	}

	durations := make([]time.Duration, len(records))
	var sleepHours, wakeHours [24]int
	var total time.Duration
	s.Min = records[0].Duration
	s.Max = records[0].Duration
	for i, r := range records {
		durations[i] = r.Duration
		total += r.Duration
		if r.Duration < s.Min {
			s.Min = r.Duration
		}
		if r.Duration > s.Max {
			s.Max = r.Duration
		}
		sleepHours[r.Start.Hour()]++
		wakeHours[r.End.Hour()]++
	}

	s.Mean = total / time.Duration(s.Nights)

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	mid := s.Nights / 2
	if s.Nights%2 == 0 {
		s.Median = (durations[mid-1] + durations[mid]) / 2
	} else {
		s.Median = durations[mid]
	}

	if s.Nights > 1 {
		var sumSq float64
		meanHours := s.Mean.Hours()
		for _, d := range durations {
			diff := d.Hours() - meanHours
			sumSq += diff * diff
		}
		stdHours := math.Sqrt(sumSq / float64(s.Nights-1))
		s.Std = time.Duration(stdHours * float64(time.Hour))
	}

	s.CommonSleepHour = modalHour(sleepHours)
	s.CommonWakeHour = modalHour(wakeHours)
	return s
}

// modalHour returns the clock hour with the highest count, earliest on ties.
func modalHour(counts [24]int) int {
	best := 0
	for hour, count := range counts {
		if count > counts[best] {
			best = hour
		}
	}
	return best
}

// Bin is one bucket of the sleep-duration distribution.
type Bin struct {
	Label string
	Count int
}

// binWidth is the resolution of the duration distribution.
const binWidth = 30 * time.Minute

// DurationBins buckets record durations into half-hour-wide bins spanning
// the observed range. Empty input yields no bins.
func DurationBins(records []Record) []Bin {
	if len(records) == 0 {
		return nil
	}

	lo := records[0].Duration
	hi := records[0].Duration
	for _, r := range records {
		if r.Duration < lo {
			lo = r.Duration
		}
		if r.Duration > hi {
			hi = r.Duration
		}
	}

	start := lo.Truncate(binWidth)
	bins := make([]Bin, int((hi-start)/binWidth)+1)
	for i := range bins {
		from := start + time.Duration(i)*binWidth
		bins[i].Label = fmt.Sprintf("%.1f-%.1fh", from.Hours(), (from + binWidth).Hours())
	}
	for _, r := range records {
		bins[int((r.Duration-start)/binWidth)].Count++
	}
	return bins
}
