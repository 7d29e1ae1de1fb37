package memory

import (
	"context"
	"time"

	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
)

type adminRepo struct {
	s *Store
}

func (r *adminRepo) Create(ctx context.Context, admin *user.Admin) (*user.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextAdminID++
	now := time.Now()

	created := *admin
	created.ID = r.s.nextAdminID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.admins = append(r.s.admins, created)

	copied := created
	return &copied, nil
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*user.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.admins {
		if r.s.admins[i].Email == email {
			copied := r.s.admins[i]
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *adminRepo) GetByID(ctx context.Context, id int64) (*user.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.admins {
		if r.s.admins[i].ID == id {
			copied := r.s.admins[i]
			return &copied, nil
		}
	}

	return nil, nil
}

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextUserID++
	now := time.Now()

	created := *u
	created.ID = r.s.nextUserID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.users = append(r.s.users, created)

	copied := created
	r.fillAdminName(&copied)
	return &copied, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].Email == email {
			copied := r.s.users[i]
			r.fillAdminName(&copied)
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		if r.s.users[i].ID == id {
			copied := r.s.users[i]
			r.fillAdminName(&copied)
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *userRepo) GetOwned(ctx context.Context, id, adminID int64) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.users {
		u := &r.s.users[i]
		if u.ID == id && u.AdminID == adminID {
			copied := *u
			r.fillAdminName(&copied)
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *userRepo) ListByAdmin(ctx context.Context, adminID int64) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var users []user.User
	// Newest first, matching the SQL ordering.
	for i := len(r.s.users) - 1; i >= 0; i-- {
		if r.s.users[i].AdminID == adminID {
			copied := r.s.users[i]
			r.fillAdminName(&copied)
			users = append(users, copied)
		}
	}

	return users, nil
}

func (r *userRepo) CountByAdmin(ctx context.Context, adminID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for i := range r.s.users {
		if r.s.users[i].AdminID == adminID {
			count++
		}
	}

	return count, nil
}

// fillAdminName mirrors the join against admins. Caller must hold the lock.
func (r *userRepo) fillAdminName(u *user.User) {
	for i := range r.s.admins {
		if r.s.admins[i].ID == u.AdminID {
			u.AdminName = r.s.admins[i].Name
			return
		}
	}
}
