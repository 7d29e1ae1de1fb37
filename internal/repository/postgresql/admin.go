package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/database"
)

type AdminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *user.Admin) (*user.Admin, error) {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at, updated_at`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, admin.Name, admin.Email, admin.Password)

	created, err := scanAdmin(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return created, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*user.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, email)

	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*user.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1`

	row := GetQuerier(ctx, r.db).QueryRow(ctx, query, id)

	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return admin, nil
}

func scanAdmin(row pgx.Row) (*user.Admin, error) {
	var a user.Admin
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Password,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
