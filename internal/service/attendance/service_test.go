package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/metrics"
	"github.com/worktrack/timeclock-backend-go/internal/repository/memory"
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

func newTestService(t *testing.T) (attendance.AttendanceService, *memory.Store, *clock.Stub) {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewStub(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	reports := reportService.NewReportService(store.Reports())
	svc := NewAttendanceService(nil, store.Sessions(), store.Breaks(), reports, clk, metrics.Noop{})

	return svc, store, clk
}

func TestCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, 1, "user")

	session, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int64(1), session.UserID)
	assert.Equal(t, "2025-03-10 09:00:00", session.CheckIn)
	assert.Nil(t, session.CheckOut)
	assert.Equal(t, 0.0, session.HoursWorked)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInIsPerUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CheckIn(authedContext(t, 1, "user"))
	require.NoError(t, err)

	_, err = svc.CheckIn(authedContext(t, 2, "user"))
	assert.NoError(t, err)
}

func TestCheckOut(t *testing.T) {
	svc, store, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(8*time.Hour + 30*time.Minute)

	session, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	assert.NotNil(t, session.CheckOut)
	assert.InDelta(t, 8.5, session.HoursWorked, 0.01)

	monthly, err := store.Reports().GetByUserAndMonth(context.Background(), 1, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, monthly)
	assert.InDelta(t, 8.5, monthly.TotalHours, 0.01)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CheckOut(authedContext(t, 1, "user"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestCheckOutTwice(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(time.Hour)

	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestMonthlyHoursAccumulate(t *testing.T) {
	svc, store, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(4 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	// Next day, same month.
	clk.Set(time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(100 * time.Minute)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	monthly, err := store.Reports().GetByUserAndMonth(context.Background(), 1, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, monthly)
	assert.InDelta(t, 5.67, monthly.TotalHours, 0.01)
}

func TestCheckInAfterCheckOutNextDay(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	clk.Advance(8 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	clk.Set(time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))

	_, err = svc.CheckIn(ctx)
	assert.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func TestReportSick(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, 1, "user")

	session, err := svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("flu")})
	require.NoError(t, err)

	require.NotNil(t, session.SickNote)
	assert.Equal(t, "flu", *session.SickNote)
	// The sick session opens like any other session.
	assert.Nil(t, session.CheckOut)
	assert.Equal(t, 0.0, session.HoursWorked)
}

func TestReportSickTwiceSameDay(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("flu")})
	require.NoError(t, err)

	_, err = svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("still flu")})
	assert.ErrorIs(t, err, attendance.ErrAlreadySick)
}

func TestReportSickWithoutNote(t *testing.T) {
	// The note is optional; without one the session is not sick-marked.
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, 1, "user")

	session, err := svc.ReportSick(ctx, &attendance.ReportSickRequest{})
	require.NoError(t, err)

	assert.Nil(t, session.SickNote)
	assert.Equal(t, 0.0, session.HoursWorked)
}

func TestCheckInBlockedByOpenSickSession(t *testing.T) {
	// An open sick session counts as today's open session.
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("half day")})
	require.NoError(t, err)

	clk.Advance(3 * time.Hour)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestReportSickWhileCheckedIn(t *testing.T) {
	// An open work session does not block a sick report.
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)

	_, err = svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("going home")})
	assert.NoError(t, err)
}

func TestCheckOutClosesSickSession(t *testing.T) {
	svc, store, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.ReportSick(ctx, &attendance.ReportSickRequest{Note: strPtr("flu")})
	require.NoError(t, err)

	clk.Advance(4 * time.Hour)

	session, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	require.NotNil(t, session.SickNote)
	assert.NotNil(t, session.CheckOut)
	assert.InDelta(t, 4.0, session.HoursWorked, 0.01)

	monthly, err := store.Reports().GetByUserAndMonth(context.Background(), 1, "2025-03")
	require.NoError(t, err)
	require.NotNil(t, monthly)
	assert.InDelta(t, 4.0, monthly.TotalHours, 0.01)
}

func TestStartBreakWithoutSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.StartBreak(authedContext(t, 1, "user"), &attendance.StartBreakRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestStartBreakTwice(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(3 * time.Hour)

	reason := "lunch"
	brk, err := svc.StartBreak(ctx, &attendance.StartBreakRequest{Reason: &reason})
	require.NoError(t, err)
	require.NotNil(t, brk.Reason)
	assert.Equal(t, "lunch", *brk.Reason)

	_, err = svc.StartBreak(ctx, &attendance.StartBreakRequest{})
	assert.ErrorIs(t, err, attendance.ErrBreakInProgress)
}

func TestEndBreak(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, &attendance.StartBreakRequest{})
	require.NoError(t, err)

	clk.Advance(30 * time.Minute)

	brk, err := svc.EndBreak(ctx)
	require.NoError(t, err)

	assert.NotNil(t, brk.EndTime)
	assert.InDelta(t, 0.5, brk.Duration, 0.01)
}

func TestEndBreakWithoutBreak(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.EndBreak(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}

func TestEndBreakWithoutSession(t *testing.T) {
	// The session check wins when neither exists.
	svc, _, _ := newTestService(t)

	_, err := svc.EndBreak(authedContext(t, 1, "user"))
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestBreaksDoNotReduceWorkedHours(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	clk.Advance(3 * time.Hour)
	_, err = svc.StartBreak(ctx, &attendance.StartBreakRequest{})
	require.NoError(t, err)
	clk.Advance(time.Hour)
	_, err = svc.EndBreak(ctx)
	require.NoError(t, err)

	clk.Advance(4 * time.Hour)

	session, err := svc.CheckOut(ctx)
	require.NoError(t, err)

	// Gross hours; breaks are tracked separately.
	assert.InDelta(t, 8.0, session.HoursWorked, 0.01)
}

func TestListMyAttendance(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)
	_, err = svc.StartBreak(ctx, &attendance.StartBreakRequest{})
	require.NoError(t, err)
	clk.Advance(15 * time.Minute)
	_, err = svc.EndBreak(ctx)
	require.NoError(t, err)
	clk.Advance(8 * time.Hour)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	clk.Set(time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC))
	_, err = svc.CheckIn(ctx)
	require.NoError(t, err)

	sessions, err := svc.ListMyAttendance(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Newest first.
	assert.Equal(t, "2025-03-11 09:00:00", sessions[0].CheckIn)
	assert.Equal(t, "2025-03-10 09:00:00", sessions[1].CheckIn)
	require.Len(t, sessions[1].Breaks, 1)
	assert.InDelta(t, 0.25, sessions[1].Breaks[0].Duration, 0.01)
}

func TestListMyAttendanceLimit(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := authedContext(t, 1, "user")

	for day := 1; day <= 3; day++ {
		clk.Set(time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC))
		_, err := svc.CheckIn(ctx)
		require.NoError(t, err)
		clk.Advance(8 * time.Hour)
		_, err = svc.CheckOut(ctx)
		require.NoError(t, err)
	}

	sessions, err := svc.ListMyAttendance(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
