package user

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/metrics"
	"github.com/worktrack/timeclock-backend-go/internal/repository/memory"
	attendanceService "github.com/worktrack/timeclock-backend-go/internal/service/attendance"
	reportService "github.com/worktrack/timeclock-backend-go/internal/service/report"
)

func authedContext(t *testing.T, userID int64, role string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T) (domainUser.UserService, *memory.Store, *clock.Stub) {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewStub(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc := NewUserService(store.Users(), store.Admins(), store.Sessions(), store.Reports(), clk)

	return svc, store, clk
}

func seedAdmin(t *testing.T, store *memory.Store, email string) int64 {
	t.Helper()

	admin, err := store.Admins().Create(context.Background(), &domainUser.Admin{
		Name:     "Boss",
		Email:    email,
		Password: "hash",
	})
	require.NoError(t, err)

	return admin.ID
}

func TestCreateUser(t *testing.T) {
	svc, store, _ := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")

	result, err := svc.CreateUser(authedContext(t, adminID, "admin"), &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Worker", result.Name)
	assert.Equal(t, "Boss", result.AdminName)

	stored, err := store.Users().GetByEmail(context.Background(), "worker@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, adminID, stored.AdminID)
	// Stored as a bcrypt hash, never plaintext.
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateUser(authedContext(t, 1, "user"), &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainUser.ErrAdminPrivilegeRequired)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, store, _ := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	ctx := authedContext(t, adminID, "admin")

	req := &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	}

	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domainUser.ErrEmailExists)
}

func TestListUsers(t *testing.T) {
	svc, store, clk := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	ctx := authedContext(t, adminID, "admin")

	created, err := svc.CreateUser(ctx, &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Seven days of work; the listing shows only the five most recent
	// sessions and three most recent reports.
	reports := reportService.NewReportService(store.Reports())
	attSvc := attendanceService.NewAttendanceService(nil, store.Sessions(), store.Breaks(), reports, clk, metrics.Noop{})
	workerCtx := authedContext(t, created.ID, "user")
	for day := 1; day <= 7; day++ {
		clk.Set(time.Date(2025, time.Month(day), 10, 9, 0, 0, 0, time.UTC))
		_, err := attSvc.CheckIn(workerCtx)
		require.NoError(t, err)
		clk.Advance(8 * time.Hour)
		_, err = attSvc.CheckOut(workerCtx)
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "Worker", users[0].Name)
	assert.Len(t, users[0].Sessions, 5)
	assert.Len(t, users[0].Reports, 3)
	// Newest month first.
	assert.Equal(t, "2025-07", users[0].Reports[0].Month)
}

func TestListUsersScopedToAdmin(t *testing.T) {
	svc, store, _ := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	otherID := seedAdmin(t, store, "other@example.com")

	_, err := svc.CreateUser(authedContext(t, adminID, "admin"), &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	users, err := svc.ListUsers(authedContext(t, otherID, "admin"))
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetUserStats(t *testing.T) {
	svc, store, clk := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	ctx := authedContext(t, adminID, "admin")

	created, err := svc.CreateUser(ctx, &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	reports := reportService.NewReportService(store.Reports())
	attSvc := attendanceService.NewAttendanceService(nil, store.Sessions(), store.Breaks(), reports, clk, metrics.Noop{})
	workerCtx := authedContext(t, created.ID, "user")

	_, err = attSvc.CheckIn(workerCtx)
	require.NoError(t, err)
	clk.Advance(8 * time.Hour)
	_, err = attSvc.CheckOut(workerCtx)
	require.NoError(t, err)

	result, err := svc.GetUserStats(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Worker", result.User.Name)
	assert.InDelta(t, 8.0, result.MonthlyHours, 0.01)
	assert.Equal(t, 1, result.TotalDaysWorked)
	assert.Len(t, result.RecentSessions, 1)
	assert.Len(t, result.Reports, 1)
}

func TestGetUserStatsNotOwned(t *testing.T) {
	svc, store, _ := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	otherID := seedAdmin(t, store, "other@example.com")

	created, err := svc.CreateUser(authedContext(t, adminID, "admin"), &domainUser.CreateUserRequest{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.GetUserStats(authedContext(t, otherID, "admin"), created.ID)
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestOverview(t *testing.T) {
	svc, store, clk := newTestService(t)
	adminID := seedAdmin(t, store, "boss@example.com")
	ctx := authedContext(t, adminID, "admin")

	first, err := svc.CreateUser(ctx, &domainUser.CreateUserRequest{
		Name:     "Worker One",
		Email:    "one@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, &domainUser.CreateUserRequest{
		Name:     "Worker Two",
		Email:    "two@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	reports := reportService.NewReportService(store.Reports())
	attSvc := attendanceService.NewAttendanceService(nil, store.Sessions(), store.Breaks(), reports, clk, metrics.Noop{})

	workerCtx := authedContext(t, first.ID, "user")
	_, err = attSvc.CheckIn(workerCtx)
	require.NoError(t, err)
	clk.Advance(4 * time.Hour)
	_, err = attSvc.CheckOut(workerCtx)
	require.NoError(t, err)

	result, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalUsers)
	assert.Equal(t, 1, result.CheckedInToday)
	assert.InDelta(t, 4.0, result.TotalHoursThisMonth, 0.01)
}
