package stats

import (
	"context"
	"time"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/domain/stats"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/timeutil"
)

type service struct {
	sessions attendance.SessionRepository
	breaks   attendance.BreakRepository
	reports  report.ReportRepository
	clock    clock.Clock
}

func NewStatsService(
	sessions attendance.SessionRepository,
	breaks attendance.BreakRepository,
	reports report.ReportRepository,
	clk clock.Clock,
) stats.StatsService {
	return &service{
		sessions: sessions,
		breaks:   breaks,
		reports:  reports,
		clock:    clk,
	}
}

func (s *service) MyStats(ctx context.Context) (*stats.MyStatsResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var monthlyHours float64
	monthly, err := s.reports.GetByUserAndMonth(ctx, identity.UserID, timeutil.MonthKey(now))
	if err != nil {
		return nil, err
	}
	if monthly != nil {
		monthlyHours = monthly.TotalHours
	}

	daysWorked, err := s.sessions.CountWorked(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	today, err := s.sessions.GetToday(ctx, identity.UserID, timeutil.StartOfDay(now))
	if err != nil {
		return nil, err
	}

	status := stats.TodayStatus{}
	if today != nil {
		status.CheckedIn = true
		status.CheckInTime = formatTimePtr(&today.CheckIn)
		status.CheckOutTime = formatTimePtr(today.CheckOut)
		status.HoursWorked = today.HoursWorked
		status.IsSick = today.IsSick()

		breaks, err := s.breaks.ListBySession(ctx, today.ID)
		if err != nil {
			return nil, err
		}

		var totalBreak float64
		for i := range breaks {
			b := &breaks[i]
			if b.EndTime == nil {
				status.OnBreak = true
				status.BreakStartTime = formatTimePtr(&b.StartTime)
				continue
			}
			totalBreak += b.Duration
		}
		status.TotalBreakTime = timeutil.Round2(totalBreak)
	}

	return &stats.MyStatsResponse{
		MonthlyHours:    monthlyHours,
		TodayStatus:     status,
		TotalDaysWorked: daysWorked,
	}, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}
