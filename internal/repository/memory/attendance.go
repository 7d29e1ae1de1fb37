package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
)

type sessionRepo struct {
	s *Store
}

func (r *sessionRepo) CreateOpen(ctx context.Context, userID int64, checkIn time.Time, dayStart time.Time) (*attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.sessions {
		existing := &r.s.sessions[i]
		if existing.UserID == userID && existing.CheckOut == nil && !existing.CheckIn.Before(dayStart) {
			return nil, nil
		}
	}

	session := attendance.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CheckIn:   checkIn,
		CreatedAt: checkIn,
		UpdatedAt: checkIn,
	}
	r.s.sessions = append(r.s.sessions, session)

	return &session, nil
}

func (r *sessionRepo) CreateSick(ctx context.Context, userID int64, at time.Time, note *string, document *string, dayStart time.Time) (*attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.sessions {
		existing := &r.s.sessions[i]
		if existing.UserID == userID && existing.SickNote != nil && !existing.CheckIn.Before(dayStart) {
			return nil, nil
		}
	}

	session := attendance.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		CheckIn:      at,
		SickNote:     note,
		SickDocument: document,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
	r.s.sessions = append(r.s.sessions, session)

	return &session, nil
}

func (r *sessionRepo) GetOpen(ctx context.Context, userID int64) (*attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest *attendance.Session
	for i := range r.s.sessions {
		s := &r.s.sessions[i]
		if s.UserID != userID || s.CheckOut != nil {
			continue
		}
		if latest == nil || s.CheckIn.After(latest.CheckIn) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}

	copied := *latest
	return &copied, nil
}

func (r *sessionRepo) Close(ctx context.Context, sessionID string, checkOut time.Time, hoursWorked float64) (*attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.sessions {
		s := &r.s.sessions[i]
		if s.ID != sessionID || s.CheckOut != nil {
			continue
		}
		out := checkOut
		s.CheckOut = &out
		s.HoursWorked = hoursWorked
		s.UpdatedAt = checkOut

		copied := *s
		return &copied, nil
	}

	return nil, nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sessions []attendance.Session
	for i := range r.s.sessions {
		if r.s.sessions[i].UserID == userID {
			sessions = append(sessions, r.s.sessions[i])
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CheckIn.After(sessions[j].CheckIn)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions, nil
}

func (r *sessionRepo) GetToday(ctx context.Context, userID int64, dayStart time.Time) (*attendance.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var earliest *attendance.Session
	for i := range r.s.sessions {
		s := &r.s.sessions[i]
		if s.UserID != userID || s.CheckIn.Before(dayStart) {
			continue
		}
		if earliest == nil || s.CheckIn.Before(earliest.CheckIn) {
			earliest = s
		}
	}
	if earliest == nil {
		return nil, nil
	}

	copied := *earliest
	return &copied, nil
}

func (r *sessionRepo) CountWorked(ctx context.Context, userID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for i := range r.s.sessions {
		s := &r.s.sessions[i]
		if s.UserID == userID && s.HoursWorked > 0 {
			count++
		}
	}

	return count, nil
}

func (r *sessionRepo) CountCheckedInSince(ctx context.Context, adminID int64, since time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owned := make(map[int64]bool)
	for i := range r.s.users {
		if r.s.users[i].AdminID == adminID {
			owned[r.s.users[i].ID] = true
		}
	}

	seen := make(map[int64]bool)
	for i := range r.s.sessions {
		s := &r.s.sessions[i]
		if owned[s.UserID] && !s.CheckIn.Before(since) {
			seen[s.UserID] = true
		}
	}

	return len(seen), nil
}

type breakRepo struct {
	s *Store
}

func (r *breakRepo) StartIfNoneOpen(ctx context.Context, sessionID string, start time.Time, reason *string) (*attendance.Break, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.breaks {
		b := &r.s.breaks[i]
		if b.SessionID == sessionID && b.EndTime == nil {
			return nil, nil
		}
	}

	brk := attendance.Break{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		StartTime: start,
		Reason:    reason,
		CreatedAt: start,
	}
	r.s.breaks = append(r.s.breaks, brk)

	return &brk, nil
}

func (r *breakRepo) GetOpenBySession(ctx context.Context, sessionID string) (*attendance.Break, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest *attendance.Break
	for i := range r.s.breaks {
		b := &r.s.breaks[i]
		if b.SessionID != sessionID || b.EndTime != nil {
			continue
		}
		if latest == nil || b.StartTime.After(latest.StartTime) {
			latest = b
		}
	}
	if latest == nil {
		return nil, nil
	}

	copied := *latest
	return &copied, nil
}

func (r *breakRepo) CloseByID(ctx context.Context, breakID string, end time.Time, duration float64) (*attendance.Break, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.breaks {
		b := &r.s.breaks[i]
		if b.ID != breakID || b.EndTime != nil {
			continue
		}
		endAt := end
		b.EndTime = &endAt
		b.Duration = duration

		copied := *b
		return &copied, nil
	}

	return nil, nil
}

func (r *breakRepo) ListBySession(ctx context.Context, sessionID string) ([]attendance.Break, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var breaks []attendance.Break
	for i := range r.s.breaks {
		if r.s.breaks[i].SessionID == sessionID {
			breaks = append(breaks, r.s.breaks[i])
		}
	}

	sort.Slice(breaks, func(i, j int) bool {
		return breaks[i].StartTime.Before(breaks[j].StartTime)
	})

	return breaks, nil
}
