package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
)

// isUniqueViolation reports whether err is a violation of one of the
// partial unique indexes guarding open sessions and breaks. The
// NOT EXISTS guards run against a statement snapshot, so two concurrent
// inserts can both pass them; the index turns the loser into an error
// the repositories map back to the (nil, nil) guard convention.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

type SessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = "id, user_id, check_in, check_out, hours_worked, sick_note, sick_document, created_at, updated_at"

func (r *SessionRepository) CreateOpen(ctx context.Context, userID int64, checkIn time.Time, dayStart time.Time) (*attendance.Session, error) {
	query := `
		INSERT INTO attendance_sessions (id, user_id, check_in)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE user_id = $2 AND check_out IS NULL AND check_in >= $4
		)
		RETURNING ` + sessionColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, uuid.NewString(), userID, checkIn, dayStart)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) CreateSick(ctx context.Context, userID int64, at time.Time, note *string, document *string, dayStart time.Time) (*attendance.Session, error) {
	query := `
		INSERT INTO attendance_sessions (id, user_id, check_in, sick_note, sick_document)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE user_id = $2 AND sick_note IS NOT NULL AND check_in >= $6
		)
		RETURNING ` + sessionColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, uuid.NewString(), userID, at, note, document, dayStart)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create sick session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) GetOpen(ctx context.Context, userID int64) (*attendance.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE user_id = $1 AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, userID)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Close(ctx context.Context, sessionID string, checkOut time.Time, hoursWorked float64) (*attendance.Session, error) {
	query := `
		UPDATE attendance_sessions
		SET check_out = $2, hours_worked = $3, updated_at = now()
		WHERE id = $1 AND check_out IS NULL
		RETURNING ` + sessionColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, sessionID, checkOut, hoursWorked)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]attendance.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE user_id = $1
		ORDER BY check_in DESC
		LIMIT $2`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SessionRepository) GetToday(ctx context.Context, userID int64, dayStart time.Time) (*attendance.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE user_id = $1 AND check_in >= $2
		ORDER BY check_in ASC
		LIMIT 1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, userID, dayStart)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) CountWorked(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM attendance_sessions
		WHERE user_id = $1 AND hours_worked > 0`

	var count int
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count worked sessions: %w", err)
	}

	return count, nil
}

func (r *SessionRepository) CountCheckedInSince(ctx context.Context, adminID int64, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT s.user_id)
		FROM attendance_sessions s
		JOIN users u ON u.id = s.user_id
		WHERE u.admin_id = $1 AND s.check_in >= $2`

	var count int
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, adminID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count checked-in users: %w", err)
	}

	return count, nil
}

func scanSession(row pgx.Row) (*attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.CheckIn,
		&s.CheckOut,
		&s.HoursWorked,
		&s.SickNote,
		&s.SickDocument,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}
