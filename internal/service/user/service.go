package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/timeutil"
)

const (
	listSessionLimit  = 5
	listReportLimit   = 3
	statsSessionLimit = 10
)

type service struct {
	users    user.UserRepository
	admins   user.AdminRepository
	sessions attendance.SessionRepository
	reports  report.ReportRepository
	clock    clock.Clock
}

func NewUserService(
	users user.UserRepository,
	admins user.AdminRepository,
	sessions attendance.SessionRepository,
	reports report.ReportRepository,
	clk clock.Clock,
) user.UserService {
	return &service{
		users:    users,
		admins:   admins,
		sessions: sessions,
		reports:  reports,
		clock:    clk,
	}
}

func (s *service) requireAdmin(ctx context.Context) (*auth.Identity, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, user.ErrAdminPrivilegeRequired
	}
	return identity, nil
}

func (s *service) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		AdminID:  identity.UserID,
	})
	if err != nil {
		return nil, err
	}

	return user.NewUserResponse(created), nil
}

func (s *service) ListUsers(ctx context.Context) ([]user.UserActivityResponse, error) {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListByAdmin(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserActivityResponse, 0, len(users))
	for i := range users {
		u := &users[i]

		sessions, err := s.sessions.ListByUser(ctx, u.ID, listSessionLimit)
		if err != nil {
			return nil, err
		}
		sessionResponses := make([]attendance.SessionResponse, 0, len(sessions))
		for j := range sessions {
			sessionResponses = append(sessionResponses, *attendance.NewSessionResponse(&sessions[j]))
		}

		reports, err := s.reports.ListByUser(ctx, u.ID, listReportLimit)
		if err != nil {
			return nil, err
		}
		reportResponses := make([]report.MonthlyReportResponse, 0, len(reports))
		for j := range reports {
			reportResponses = append(reportResponses, *report.NewMonthlyReportResponse(&reports[j]))
		}

		responses = append(responses, user.UserActivityResponse{
			UserResponse: *user.NewUserResponse(u),
			Sessions:     sessionResponses,
			Reports:      reportResponses,
		})
	}

	return responses, nil
}

func (s *service) GetUserStats(ctx context.Context, userID int64) (*user.UserStatsResponse, error) {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetOwned(ctx, userID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	now := s.clock.Now()

	var monthlyHours float64
	monthly, err := s.reports.GetByUserAndMonth(ctx, u.ID, timeutil.MonthKey(now))
	if err != nil {
		return nil, err
	}
	if monthly != nil {
		monthlyHours = monthly.TotalHours
	}

	daysWorked, err := s.sessions.CountWorked(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	recent, err := s.sessions.ListByUser(ctx, u.ID, statsSessionLimit)
	if err != nil {
		return nil, err
	}
	sessionResponses := make([]attendance.SessionResponse, 0, len(recent))
	for i := range recent {
		sessionResponses = append(sessionResponses, *attendance.NewSessionResponse(&recent[i]))
	}

	allReports, err := s.reports.ListByUser(ctx, u.ID, 0)
	if err != nil {
		return nil, err
	}
	reportResponses := make([]report.MonthlyReportResponse, 0, len(allReports))
	for i := range allReports {
		reportResponses = append(reportResponses, *report.NewMonthlyReportResponse(&allReports[i]))
	}

	return &user.UserStatsResponse{
		User:            *user.NewUserResponse(u),
		MonthlyHours:    monthlyHours,
		TotalDaysWorked: daysWorked,
		RecentSessions:  sessionResponses,
		Reports:         reportResponses,
	}, nil
}

func (s *service) Overview(ctx context.Context) (*user.OverviewResponse, error) {
	identity, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	total, err := s.users.CountByAdmin(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	checkedIn, err := s.sessions.CountCheckedInSince(ctx, identity.UserID, timeutil.StartOfDay(now))
	if err != nil {
		return nil, err
	}

	hours, err := s.reports.SumForAdminMonth(ctx, identity.UserID, timeutil.MonthKey(now))
	if err != nil {
		return nil, err
	}

	return &user.OverviewResponse{
		TotalUsers:          total,
		CheckedInToday:      checkedIn,
		TotalHoursThisMonth: timeutil.Round2(hours),
	}, nil
}
