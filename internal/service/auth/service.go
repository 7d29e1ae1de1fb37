package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/jwt"
)

type service struct {
	admins user.AdminRepository
	users  user.UserRepository
	jwt    *jwt.Service
}

func NewAuthService(admins user.AdminRepository, users user.UserRepository, jwtSvc *jwt.Service) auth.AuthService {
	return &service{
		admins: admins,
		users:  users,
		jwt:    jwtSvc,
	}
}

func (s *service) RegisterAdmin(ctx context.Context, req *auth.RegisterAdminRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrAdminEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.admins.Create(ctx, &user.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.respond(created.ID, created.Name, created.Email, user.RoleAdmin)
}

func (s *service) LoginAdmin(ctx context.Context, req *auth.LoginRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.respond(admin.ID, admin.Name, admin.Email, user.RoleAdmin)
}

func (s *service) LoginUser(ctx context.Context, req *auth.LoginRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, auth.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.respond(u.ID, u.Name, u.Email, user.RoleUser)
}

func (s *service) respond(id int64, name, email string, role user.Role) (*auth.AuthResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(id, string(role))
	if err != nil {
		return nil, err
	}

	return &auth.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.AuthUserResponse{
			ID:    id,
			Name:  name,
			Email: email,
			Role:  string(role),
		},
	}, nil
}
