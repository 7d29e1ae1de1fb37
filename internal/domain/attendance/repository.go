package attendance

import (
	"context"
	"time"
)

// SessionRepository persists attendance sessions.
//
// Lookups return (nil, nil) when no row matches. The conditional writes
// (CreateOpen, CreateSick, Close) also return (nil, nil) when their guard
// fails, so duplicate-submission races resolve inside a single statement
// instead of a read-then-write sequence.
type SessionRepository interface {
	// CreateOpen inserts an open session unless the user already has an
	// open session starting at or after dayStart.
	CreateOpen(ctx context.Context, userID int64, checkIn time.Time, dayStart time.Time) (*Session, error)

	// CreateSick inserts an open zero-hour sick session unless the user
	// already has a sick session starting at or after dayStart.
	CreateSick(ctx context.Context, userID int64, at time.Time, note *string, document *string, dayStart time.Time) (*Session, error)

	// GetOpen returns the user's most recent open session.
	GetOpen(ctx context.Context, userID int64) (*Session, error)

	// Close sets check-out and worked hours on a still-open session.
	Close(ctx context.Context, sessionID string, checkOut time.Time, hoursWorked float64) (*Session, error)

	// ListByUser returns the user's sessions, newest first.
	ListByUser(ctx context.Context, userID int64, limit int) ([]Session, error)

	// GetToday returns the user's earliest session starting at or after dayStart.
	GetToday(ctx context.Context, userID int64, dayStart time.Time) (*Session, error)

	// CountWorked counts the user's sessions with worked hours recorded.
	CountWorked(ctx context.Context, userID int64) (int, error)

	// CountCheckedInSince counts distinct users of the admin with a
	// session starting at or after since.
	CountCheckedInSince(ctx context.Context, adminID int64, since time.Time) (int, error)
}

// BreakRepository persists break intervals.
type BreakRepository interface {
	// StartIfNoneOpen inserts a break unless the session already has an
	// open one. Returns (nil, nil) when the guard fails.
	StartIfNoneOpen(ctx context.Context, sessionID string, start time.Time, reason *string) (*Break, error)

	GetOpenBySession(ctx context.Context, sessionID string) (*Break, error)

	// CloseByID sets the end time and duration on a still-open break.
	CloseByID(ctx context.Context, breakID string, end time.Time, duration float64) (*Break, error)

	// ListBySession returns the session's breaks, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]Break, error)
}
