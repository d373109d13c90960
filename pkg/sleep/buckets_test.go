package sleep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfHourCounts(t *testing.T) {
	events := []time.Time{
		ts(1, 9, 0),
		ts(1, 9, 15),
		ts(1, 9, 45),
		ts(2, 9, 5), // different day, same bucket
	}

	counts := HalfHourCounts(events)
	require.Len(t, counts, 48)
	assert.Equal(t, 3, counts[9.0])
	assert.Equal(t, 1, counts[9.5])
	assert.Equal(t, 0, counts[10.0])
}

// TestSleepBucketsWrapAroundMidnight verifies that an overnight interval
// marks buckets on both sides of midnight.
func TestSleepBucketsWrapAroundMidnight(t *testing.T) {
	records := []Record{{
		Start:    ts(1, 23, 45),
		End:      ts(2, 7, 35),
		Duration: 7*time.Hour + 50*time.Minute,
	}}

	buckets := SleepBuckets(records)
	require.NotEmpty(t, buckets)

	set := make(map[float64]bool, len(buckets))
	for _, b := range buckets {
		set[b] = true
	}

	assert.True(t, set[23.5], "should cover the bucket sleep starts in")
	assert.True(t, set[0.0], "should cover midnight")
	assert.True(t, set[3.5])
	assert.True(t, set[7.0], "should cover the bucket before waking")
	assert.False(t, set[12.0], "midday stays unmarked")
}

func TestSleepBucketsMultiDayGapCoversClock(t *testing.T) {
	// A week offline marks every bucket
	records := []Record{{
		Start:    ts(1, 10, 0),
		End:      ts(8, 10, 0),
		Duration: 7 * 24 * time.Hour,
	}}

	assert.Len(t, SleepBuckets(records), 48)
}

func TestSleepBucketsEmpty(t *testing.T) {
	assert.Empty(t, SleepBuckets(nil))
}
