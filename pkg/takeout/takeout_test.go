package takeout

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadChrome(t *testing.T) {
	// 2024-03-01T08:00:00Z and 2024-03-01T09:30:00Z in microseconds,
	// the second in the string-quoted form some exports use
	path := writeFile(t, "BrowserHistory.json", `{
		"Browser History": [
			{"time_usec": 1709280000000000},
			{"time_usec": "1709285400000000"}
		]
	}`)

	events, err := LoadChrome(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.True(t, events[0].Equal(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, events[1].Equal(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
}

func TestLoadChromeSkipsMalformedEntries(t *testing.T) {
	path := writeFile(t, "BrowserHistory.json", `{
		"Browser History": [
			{"time_usec": 1709280000000000},
			{"title": "entry without timestamp"},
			{"time_usec": "not-a-number"},
			{"time_usec": 1709285400000000}
		]
	}`)

	events, err := LoadChrome(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestLoadChromeMissingFile(t *testing.T) {
	_, err := LoadChrome(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadChromeInvalidJSON(t *testing.T) {
	path := writeFile(t, "BrowserHistory.json", `{"Browser History": [`)
	_, err := LoadChrome(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadYouTube(t *testing.T) {
	path := writeFile(t, "watch-history.json", `[
		{"time": "2024-03-01T22:15:00.123Z"},
		{"time": "2024-03-02T07:45:00Z"}
	]`)

	events, err := LoadYouTube(path, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 22, events[0].UTC().Hour())
	assert.True(t, events[1].Equal(time.Date(2024, 3, 2, 7, 45, 0, 0, time.UTC)))
}

func TestLoadYouTubeSkipsMalformedEntries(t *testing.T) {
	path := writeFile(t, "watch-history.json", `[
		{"time": "2024-03-01T22:15:00Z"},
		{"title": "removed video, no time field"},
		{"time": "yesterday-ish"}
	]`)

	events, err := LoadYouTube(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestMergeSortsAscending(t *testing.T) {
	a := []time.Time{
		time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	b := []time.Time{
		time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC),
	}

	merged := Merge(a, b)
	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Before(merged[i-1]))
	}
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge())
	assert.Empty(t, Merge(nil, nil))
}
