package auth

import "context"

// AuthService handles account registration and login for both roles.
type AuthService interface {
	RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*AuthResponse, error)
	LoginAdmin(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	LoginUser(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}
