package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
)

type reportRepo struct {
	s *Store
}

func (r *reportRepo) AddHours(ctx context.Context, userID int64, month string, hours float64) (*report.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reports {
		rpt := &r.s.reports[i]
		if rpt.UserID == userID && rpt.Month == month {
			rpt.TotalHours += hours
			rpt.UpdatedAt = time.Now()

			copied := *rpt
			return &copied, nil
		}
	}

	now := time.Now()
	rpt := report.MonthlyReport{
		ID:         uuid.NewString(),
		UserID:     userID,
		Month:      month,
		TotalHours: hours,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.s.reports = append(r.s.reports, rpt)

	return &rpt, nil
}

func (r *reportRepo) GetByUserAndMonth(ctx context.Context, userID int64, month string) (*report.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reports {
		rpt := &r.s.reports[i]
		if rpt.UserID == userID && rpt.Month == month {
			copied := *rpt
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *reportRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]report.MonthlyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var reports []report.MonthlyReport
	for i := range r.s.reports {
		if r.s.reports[i].UserID == userID {
			reports = append(reports, r.s.reports[i])
		}
	}

	// "YYYY-MM" keys sort correctly as strings.
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Month > reports[j].Month
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}

	return reports, nil
}

func (r *reportRepo) SumForAdminMonth(ctx context.Context, adminID int64, month string) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owned := make(map[int64]bool)
	for i := range r.s.users {
		if r.s.users[i].AdminID == adminID {
			owned[r.s.users[i].ID] = true
		}
	}

	var total float64
	for i := range r.s.reports {
		rpt := &r.s.reports[i]
		if owned[rpt.UserID] && rpt.Month == month {
			total += rpt.TotalHours
		}
	}

	return total, nil
}
