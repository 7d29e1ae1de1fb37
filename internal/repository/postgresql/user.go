package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "u.id, u.admin_id, u.name, u.email, u.password_hash, a.name, u.created_at, u.updated_at"

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (admin_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, admin_id, name, email, password_hash, created_at, updated_at`

	var created user.User
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, u.AdminID, u.Name, u.Email, u.Password).Scan(
		&created.ID,
		&created.AdminID,
		&created.Name,
		&created.Email,
		&created.Password,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN admins a ON a.id = u.admin_id
		WHERE u.email = $1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN admins a ON a.id = u.admin_id
		WHERE u.id = $1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetOwned(ctx context.Context, id, adminID int64) (*user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN admins a ON a.id = u.admin_id
		WHERE u.id = $1 AND u.admin_id = $2`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, id, adminID)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owned user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) ListByAdmin(ctx context.Context, adminID int64) ([]user.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN admins a ON a.id = u.admin_id
		WHERE u.admin_id = $1
		ORDER BY u.created_at DESC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) CountByAdmin(ctx context.Context, adminID int64) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE admin_id = $1`

	var count int
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, adminID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.AdminID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.AdminName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
