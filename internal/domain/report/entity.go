package report

import "time"

// MonthlyReport accumulates a user's worked hours per calendar month.
// Month is keyed "YYYY-MM".
type MonthlyReport struct {
	ID         string
	UserID     int64
	Month      string
	TotalHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
