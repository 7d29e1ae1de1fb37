package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
)

type ReportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = "id, user_id, month, total_hours, created_at, updated_at"

func (r *ReportRepository) AddHours(ctx context.Context, userID int64, month string, hours float64) (*report.MonthlyReport, error) {
	query := `
		INSERT INTO monthly_reports (id, user_id, month, total_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month)
		DO UPDATE SET total_hours = monthly_reports.total_hours + EXCLUDED.total_hours, updated_at = now()
		RETURNING ` + reportColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, uuid.NewString(), userID, month, hours)

	rpt, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add hours: %w", err)
	}

	return rpt, nil
}

func (r *ReportRepository) GetByUserAndMonth(ctx context.Context, userID int64, month string) (*report.MonthlyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM monthly_reports
		WHERE user_id = $1 AND month = $2`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, userID, month)

	rpt, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly report: %w", err)
	}

	return rpt, nil
}

func (r *ReportRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]report.MonthlyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM monthly_reports
		WHERE user_id = $1
		ORDER BY month DESC`

	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly reports: %w", err)
	}
	defer rows.Close()

	var reports []report.MonthlyReport
	for rows.Next() {
		rpt, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly report: %w", err)
		}
		reports = append(reports, *rpt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly reports: %w", err)
	}

	return reports, nil
}

func (r *ReportRepository) SumForAdminMonth(ctx context.Context, adminID int64, month string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(r.total_hours), 0)
		FROM monthly_reports r
		JOIN users u ON u.id = r.user_id
		WHERE u.admin_id = $1 AND r.month = $2`

	var total float64
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, adminID, month).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum monthly hours: %w", err)
	}

	return total, nil
}

func scanReport(row pgx.Row) (*report.MonthlyReport, error) {
	var rpt report.MonthlyReport
	err := row.Scan(
		&rpt.ID,
		&rpt.UserID,
		&rpt.Month,
		&rpt.TotalHours,
		&rpt.CreatedAt,
		&rpt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rpt, nil
}
