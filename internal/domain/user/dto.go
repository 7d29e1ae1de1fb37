package user

import (
	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !validator.MinLen(r.Password, 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AdminName string `json:"adminName,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AdminName: u.AdminName,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// UserActivityResponse is a user plus a slice of recent activity for the
// admin listing.
type UserActivityResponse struct {
	UserResponse
	Sessions []attendance.SessionResponse   `json:"sessions"`
	Reports  []report.MonthlyReportResponse `json:"reports"`
}

type UserStatsResponse struct {
	User            UserResponse                   `json:"user"`
	MonthlyHours    float64                        `json:"monthlyHours"`
	TotalDaysWorked int                            `json:"totalDaysWorked"`
	RecentSessions  []attendance.SessionResponse   `json:"recentSessions"`
	Reports         []report.MonthlyReportResponse `json:"reports"`
}

// OverviewResponse is the admin dashboard rollup.
type OverviewResponse struct {
	TotalUsers          int     `json:"totalUsers"`
	CheckedInToday      int     `json:"checkedInToday"`
	TotalHoursThisMonth float64 `json:"totalHoursThisMonth"`
}
