package attendance

import (
	"context"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/clock"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/metrics"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/worktrack/timeclock-backend-go/internal/repository/postgresql"
)

const defaultListLimit = 30

type service struct {
	db       *database.DB
	sessions attendance.SessionRepository
	breaks   attendance.BreakRepository
	reports  report.ReportService
	clock    clock.Clock
	metrics  metrics.Recorder
}

// NewAttendanceService wires the attendance lifecycle. db may be nil
// when the repositories are not PostgreSQL-backed; check-out then runs
// without a surrounding transaction.
func NewAttendanceService(
	db *database.DB,
	sessions attendance.SessionRepository,
	breaks attendance.BreakRepository,
	reports report.ReportService,
	clk clock.Clock,
	rec metrics.Recorder,
) attendance.AttendanceService {
	return &service{
		db:       db,
		sessions: sessions,
		breaks:   breaks,
		reports:  reports,
		clock:    clk,
		metrics:  rec,
	}
}

func (s *service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, fn)
}

func (s *service) CheckIn(ctx context.Context) (*attendance.SessionResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	session, err := s.sessions.CreateOpen(ctx, identity.UserID, now, timeutil.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, attendance.ErrAlreadyCheckedIn
	}

	s.metrics.RecordCheckIn()

	return attendance.NewSessionResponse(session), nil
}

func (s *service) CheckOut(ctx context.Context) (*attendance.SessionResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.sessions.GetOpen(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, attendance.ErrNoActiveSession
	}

	now := s.clock.Now()
	hours := timeutil.Hours(open.CheckIn, now)

	// Closing the session and crediting the monthly report must land
	// together.
	var closed *attendance.Session
	err = s.inTx(ctx, func(txCtx context.Context) error {
		c, err := s.sessions.Close(txCtx, open.ID, now, hours)
		if err != nil {
			return err
		}
		if c == nil {
			return attendance.ErrNoActiveSession
		}

		if err := s.reports.RecordHours(txCtx, identity.UserID, c.CheckIn, c.HoursWorked); err != nil {
			return err
		}

		closed = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCheckOut()

	return attendance.NewSessionResponse(closed), nil
}

func (s *service) ReportSick(ctx context.Context, req *attendance.ReportSickRequest) (*attendance.SessionResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	session, err := s.sessions.CreateSick(ctx, identity.UserID, now, req.Note, req.DocumentURL, timeutil.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, attendance.ErrAlreadySick
	}

	s.metrics.RecordSickReport()

	return attendance.NewSessionResponse(session), nil
}

func (s *service) ListMyAttendance(ctx context.Context, limit int) ([]attendance.SessionResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	sessions, err := s.sessions.ListByUser(ctx, identity.UserID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for i := range sessions {
		resp := attendance.NewSessionResponse(&sessions[i])

		breaks, err := s.breaks.ListBySession(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range breaks {
			resp.Breaks = append(resp.Breaks, *attendance.NewBreakResponse(&breaks[j]))
		}

		responses = append(responses, *resp)
	}

	return responses, nil
}

func (s *service) StartBreak(ctx context.Context, req *attendance.StartBreakRequest) (*attendance.BreakResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.sessions.GetOpen(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, attendance.ErrNoActiveSession
	}

	brk, err := s.breaks.StartIfNoneOpen(ctx, open.ID, s.clock.Now(), req.Reason)
	if err != nil {
		return nil, err
	}
	if brk == nil {
		return nil, attendance.ErrBreakInProgress
	}

	s.metrics.RecordBreakStart()

	return attendance.NewBreakResponse(brk), nil
}

func (s *service) EndBreak(ctx context.Context) (*attendance.BreakResponse, error) {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.sessions.GetOpen(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, attendance.ErrNoActiveSession
	}

	openBreak, err := s.breaks.GetOpenBySession(ctx, open.ID)
	if err != nil {
		return nil, err
	}
	if openBreak == nil {
		return nil, attendance.ErrNoActiveBreak
	}

	now := s.clock.Now()
	duration := timeutil.Hours(openBreak.StartTime, now)

	closed, err := s.breaks.CloseByID(ctx, openBreak.ID, now, duration)
	if err != nil {
		return nil, err
	}
	if closed == nil {
		return nil, attendance.ErrNoActiveBreak
	}

	s.metrics.RecordBreakEnd()

	return attendance.NewBreakResponse(closed), nil
}
