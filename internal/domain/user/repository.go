package user

import "context"

// AdminRepository persists admin accounts.
//
// Lookups return (nil, nil) when no row matches.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
}

// UserRepository persists employee accounts.
//
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetOwned returns the user only when it belongs to the given admin.
	GetOwned(ctx context.Context, id, adminID int64) (*User, error)
	ListByAdmin(ctx context.Context, adminID int64) ([]User, error)
	CountByAdmin(ctx context.Context, adminID int64) (int, error)
}
