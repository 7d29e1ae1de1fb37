package timeutil

import (
	"fmt"
	"math"
	"time"
)

// Round2 rounds v to two decimal places, half up.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Hours returns the elapsed time between from and to in hours, rounded
// to two decimal places. Computed from elapsed milliseconds so sub-second
// precision does not leak into the result.
func Hours(from, to time.Time) float64 {
	ms := to.Sub(from).Milliseconds()
	return Round2(float64(ms) / 3_600_000)
}

// MonthKey derives the canonical "YYYY-MM" bucket key for t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
