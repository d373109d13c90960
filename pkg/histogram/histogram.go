// Package histogram provides a terminal view of daily activity patterns.
package histogram

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// maxBarWidth caps bar length so a year of browsing history still fits a
// terminal; counts are scaled down proportionally when any bucket exceeds it.
const maxBarWidth = 60

// Generate renders a 30-minute-resolution activity histogram, one line per
// bucket in local clock order. Buckets covered by an inferred sleep interval
// are marked with a blue "z".
func Generate(halfHourCounts map[float64]int, sleepBuckets []float64) string {
	var output strings.Builder

	output.WriteString("📊 Daily Activity Pattern (30-minute resolution)\n")
	output.WriteString(strings.Repeat("─", 50) + "\n")

	totalEvents := 0
	maxActivity := 0
	for _, count := range halfHourCounts {
		totalEvents += count
		if count > maxActivity {
			maxActivity = count
		}
	}

	if totalEvents < 20 {
		output.WriteString(fmt.Sprintf("⚠️  Limited data: only %d events available\n", totalEvents))
		output.WriteString(strings.Repeat("─", 50) + "\n")
	}

	if maxActivity == 0 {
		return output.String() + "No activity data available\n"
	}

	sleepSet := make(map[float64]bool, len(sleepBuckets))
	for _, b := range sleepBuckets {
		sleepSet[b] = true
	}

	grey := color.New(color.FgHiBlack)
	blue := color.New(color.FgBlue)

	for hour := 0; hour < 24; hour++ {
		for half := 0; half < 2; half++ {
			bucket := float64(hour) + float64(half)*0.5
			count := halfHourCounts[bucket]

			line := fmt.Sprintf("%02d:%02d ", hour, half*30)

			// Sleep marker with fixed width (single character + space)
			if sleepSet[bucket] {
				line += blue.Sprint("z") + " "
			} else {
				line += "  "
			}

			if count > 0 {
				line += fmt.Sprintf("(%4d) ", count)
			} else {
				line += "       "
			}

			barLength := count
			if maxActivity > maxBarWidth {
				barLength = count * maxBarWidth / maxActivity
				if barLength == 0 && count > 0 {
					barLength = 1
				}
			}
			switch {
			case barLength == 1:
				line += grey.Sprint("·")
			case barLength > 1:
				line += grey.Sprint(strings.Repeat("█", barLength))
			}

			output.WriteString(line + "\n")
		}
	}

	return output.String()
}
