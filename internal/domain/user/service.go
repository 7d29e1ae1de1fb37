package user

import "context"

// UserService is the admin-facing user management surface. The calling
// admin's identity comes from the JWT claims in ctx.
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserActivityResponse, error)
	GetUserStats(ctx context.Context, userID int64) (*UserStatsResponse, error)
	Overview(ctx context.Context) (*OverviewResponse, error)
}
