// Package takeout extracts activity timestamps from Google Takeout exports.
package takeout

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// chromeExport mirrors the top level of Chrome's BrowserHistory.json.
type chromeExport struct {
	BrowserHistory []chromeEntry `json:"Browser History"`
}

type chromeEntry struct {
	TimeUsec usec `json:"time_usec"`
}

// usec is a microsecond epoch timestamp. Takeout emits it as a JSON number
// in most exports and as a quoted string in some; both are accepted.
// Malformed values decode to zero so a single bad entry cannot abort the
// whole file; callers filter zeros out.
type usec int64

func (u *usec) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*u = 0
		return nil
	}
	*u = usec(n)
	return nil
}

// watchEntry is one record of YouTube's watch-history.json. Only the time
// field matters here; entries without one (removed videos, ads) are skipped.
type watchEntry struct {
	Time string `json:"time"`
}

// LoadChrome reads a Chrome BrowserHistory.json export and returns the
// visit timestamps. Entries with a missing or unusable time_usec are
// skipped with a warning rather than failing the run.
func LoadChrome(path string, logger zerolog.Logger) ([]time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chrome history: %w", err)
	}

	var export chromeExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, fmt.Errorf("parse chrome history: %w", err)
	}

	events := make([]time.Time, 0, len(export.BrowserHistory))
	skipped := 0
	for i, entry := range export.BrowserHistory {
		if entry.TimeUsec <= 0 {
			skipped++
			logger.Warn().Int("entry", i).Str("path", path).Msg("Skipping history entry without usable timestamp")
			continue
		}
		events = append(events, time.UnixMicro(int64(entry.TimeUsec)))
	}

	logger.Debug().
		Int("events", len(events)).
		Int("skipped", skipped).
		Str("path", path).
		Msg("Chrome history parsed")
	return events, nil
}

// LoadYouTube reads a YouTube watch-history.json export and returns the
// watch timestamps. Entries with a missing or unparseable time field are
// skipped with a warning.
func LoadYouTube(path string, logger zerolog.Logger) ([]time.Time, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read youtube history: %w", err)
	}

	var entries []watchEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse youtube history: %w", err)
	}

	events := make([]time.Time, 0, len(entries))
	skipped := 0
	for i, entry := range entries {
		if entry.Time == "" {
			skipped++
			logger.Warn().Int("entry", i).Str("path", path).Msg("Skipping watch entry without timestamp")
			continue
		}
		ts, err := time.Parse(time.RFC3339, entry.Time)
		if err != nil {
			skipped++
			logger.Warn().Int("entry", i).Str("time", entry.Time).Str("path", path).Msg("Skipping watch entry with unparseable timestamp")
			continue
		}
		events = append(events, ts)
	}

	logger.Debug().
		Int("events", len(events)).
		Int("skipped", skipped).
		Str("path", path).
		Msg("YouTube history parsed")
	return events, nil
}

// Merge combines event streams from multiple sources into a single
// ascending sequence.
func Merge(sources ...[]time.Time) []time.Time {
	var all []time.Time
	for _, src := range sources {
		all = append(all, src...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Before(all[j]) })
	return all
}
