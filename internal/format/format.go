// Package format renders engine values as plain strings.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Clock renders seconds as mm:ss, or h:mm:ss past an hour.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds / 60 % 60
	seconds = seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Percent renders a 0..1 fraction as a whole percentage, rounding down so
// 100% only shows once the fraction is complete.
func Percent(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("%d%%", int(math.Floor(fraction*100)))
}

// Duration renders seconds as a coarse human duration ("25 minutes").
func Duration(seconds int) string {
	if seconds <= 0 {
		return "0 seconds"
	}
	base := time.Unix(0, 0)
	text := humanize.RelTime(base, base.Add(time.Duration(seconds)*time.Second), "", "")
	return strings.TrimSpace(text)
}

// Ordinal renders n as "1st", "2nd", "3rd".
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// Count renders n with the singular or plural noun.
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), plural)
}
