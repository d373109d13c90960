// Package charts writes sleep analysis charts as standalone HTML files.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/codeGROOVE-dev/sleepZ/pkg/sleep"
)

// Output file names, one per chart.
const (
	DurationFile     = "sleep_duration.html"
	ScheduleFile     = "sleep_schedule.html"
	DistributionFile = "sleep_duration_dist.html"
)

const noDataSubtitle = "no sleep periods detected"

// WriteAll renders the three sleep charts into dir, creating it if needed.
// An empty record set still produces all three files, each carrying a
// "no data" subtitle, since finding no sleep is a valid outcome.
func WriteAll(dir string, records []sleep.Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeDuration(filepath.Join(dir, DurationFile), records); err != nil {
		return err
	}
	if err := writeSchedule(filepath.Join(dir, ScheduleFile), records); err != nil {
		return err
	}
	return writeDistribution(filepath.Join(dir, DistributionFile), records)
}

// writeDuration renders sleep duration per night as a line chart.
func writeDuration(path string, records []sleep.Record) error {
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title:    "Sleep Duration Over Time",
			Subtitle: subtitle(records),
		}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "hours"}),
	)

	dates := make([]string, len(records))
	hours := make([]opts.LineData, len(records))
	for i, r := range records {
		dates[i] = r.Start.Format("2006-01-02")
		hours[i] = opts.LineData{Value: round1(r.Duration.Hours())}
	}
	line.SetXAxis(dates).AddSeries("duration", hours)

	return render(path, line)
}

// writeSchedule renders sleep-start and wake clock times per night as a
// scatter chart.
func writeSchedule(path string, records []sleep.Record) error {
	scatter := echarts.NewScatter()
	scatter.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title:    "Sleep Schedule Pattern",
			Subtitle: subtitle(records),
		}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "hour of day", Max: 24}),
	)

	dates := make([]string, len(records))
	starts := make([]opts.ScatterData, len(records))
	ends := make([]opts.ScatterData, len(records))
	for i, r := range records {
		dates[i] = r.Start.Format("2006-01-02")
		starts[i] = opts.ScatterData{Value: clockHour(r.Start.Hour(), r.Start.Minute())}
		ends[i] = opts.ScatterData{Value: clockHour(r.End.Hour(), r.End.Minute())}
	}
	scatter.SetXAxis(dates).
		AddSeries("sleep start", starts).
		AddSeries("sleep end", ends)

	return render(path, scatter)
}

// writeDistribution renders the duration histogram as a bar chart.
func writeDistribution(path string, records []sleep.Record) error {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{
			Title:    "Distribution of Sleep Duration",
			Subtitle: subtitle(records),
		}),
		echarts.WithYAxisOpts(opts.YAxis{Name: "nights"}),
	)

	bins := sleep.DurationBins(records)
	labels := make([]string, len(bins))
	counts := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
		counts[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(labels).AddSeries("nights", counts)

	return render(path, bar)
}

func subtitle(records []sleep.Record) string {
	if len(records) == 0 {
		return noDataSubtitle
	}
	return fmt.Sprintf("%d nights", len(records))
}

// clockHour converts hour and minute to a decimal hour for plotting.
func clockHour(hour, minute int) float64 {
	return round1(float64(hour) + float64(minute)/60.0)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

type renderer interface {
	Render(w io.Writer) error
}

func render(path string, chart renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := chart.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	return nil
}
