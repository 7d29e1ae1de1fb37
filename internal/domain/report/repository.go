package report

import "context"

// ReportRepository persists monthly hour aggregates.
//
// Lookups return (nil, nil) when no row matches.
type ReportRepository interface {
	// AddHours adds hours to the user's report for the month, creating
	// the row when it does not exist yet. The addition happens in a
	// single upsert so concurrent check-outs both count.
	AddHours(ctx context.Context, userID int64, month string, hours float64) (*MonthlyReport, error)

	GetByUserAndMonth(ctx context.Context, userID int64, month string) (*MonthlyReport, error)

	// ListByUser returns the user's reports, newest month first.
	// limit <= 0 returns all.
	ListByUser(ctx context.Context, userID int64, limit int) ([]MonthlyReport, error)

	// SumForAdminMonth totals the hours of all users owned by the admin
	// for the month.
	SumForAdminMonth(ctx context.Context, adminID int64, month string) (float64, error)
}
