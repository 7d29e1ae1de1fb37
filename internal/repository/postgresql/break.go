package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
)

type BreakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) *BreakRepository {
	return &BreakRepository{db: db}
}

const breakColumns = "id, session_id, start_time, end_time, duration, reason, created_at"

func (r *BreakRepository) StartIfNoneOpen(ctx context.Context, sessionID string, start time.Time, reason *string) (*attendance.Break, error) {
	query := `
		INSERT INTO break_intervals (id, session_id, start_time, reason)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (
			SELECT 1 FROM break_intervals
			WHERE session_id = $2 AND end_time IS NULL
		)
		RETURNING ` + breakColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, uuid.NewString(), sessionID, start, reason)

	brk, err := scanBreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to start break: %w", err)
	}

	return brk, nil
}

func (r *BreakRepository) GetOpenBySession(ctx context.Context, sessionID string) (*attendance.Break, error) {
	query := `
		SELECT ` + breakColumns + `
		FROM break_intervals
		WHERE session_id = $1 AND end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, sessionID)

	brk, err := scanBreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open break: %w", err)
	}

	return brk, nil
}

func (r *BreakRepository) CloseByID(ctx context.Context, breakID string, end time.Time, duration float64) (*attendance.Break, error) {
	query := `
		UPDATE break_intervals
		SET end_time = $2, duration = $3
		WHERE id = $1 AND end_time IS NULL
		RETURNING ` + breakColumns

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, breakID, end, duration)

	brk, err := scanBreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to close break: %w", err)
	}

	return brk, nil
}

func (r *BreakRepository) ListBySession(ctx context.Context, sessionID string) ([]attendance.Break, error) {
	query := `
		SELECT ` + breakColumns + `
		FROM break_intervals
		WHERE session_id = $1
		ORDER BY start_time ASC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	var breaks []attendance.Break
	for rows.Next() {
		b, err := scanBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		breaks = append(breaks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read breaks: %w", err)
	}

	return breaks, nil
}

func scanBreak(row pgx.Row) (*attendance.Break, error) {
	var b attendance.Break
	err := row.Scan(
		&b.ID,
		&b.SessionID,
		&b.StartTime,
		&b.EndTime,
		&b.Duration,
		&b.Reason,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
