package report

import (
	"context"
	"time"

	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/timeutil"
)

type service struct {
	reports report.ReportRepository
}

func NewReportService(reports report.ReportRepository) report.ReportService {
	return &service{reports: reports}
}

func (s *service) RecordHours(ctx context.Context, userID int64, checkInAt time.Time, hours float64) error {
	_, err := s.reports.AddHours(ctx, userID, timeutil.MonthKey(checkInAt), hours)
	return err
}

func (s *service) ListMyReports(ctx context.Context, limit int) ([]report.MonthlyReportResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ListByUser(ctx, identity.UserID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]report.MonthlyReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *report.NewMonthlyReportResponse(&reports[i]))
	}

	return responses, nil
}
