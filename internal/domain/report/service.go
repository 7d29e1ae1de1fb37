package report

import (
	"context"
	"time"
)

// ReportService maintains and serves the monthly aggregates.
type ReportService interface {
	// RecordHours credits worked hours to the month of checkInAt.
	RecordHours(ctx context.Context, userID int64, checkInAt time.Time, hours float64) error

	// ListMyReports returns the caller's reports, newest month first.
	ListMyReports(ctx context.Context, limit int) ([]MonthlyReportResponse, error)
}
