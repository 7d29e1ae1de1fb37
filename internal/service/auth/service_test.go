package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/validator"
	"github.com/worktrack/timeclock-backend-go/internal/repository/memory"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (auth.AuthService, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	jwtSvc := jwt.NewService("test-secret", 24*time.Hour)
	svc := NewAuthService(store.Admins(), store.Users(), jwtSvc)

	return svc, store
}

func TestRegisterAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.RegisterAdmin(context.Background(), &auth.RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Greater(t, result.ExpiresAt, time.Now().Unix())
	assert.Equal(t, "Boss", result.User.Name)
	assert.Equal(t, "admin", result.User.Role)
}

func TestRegisterAdminDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := &auth.RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
	}

	_, err := svc.RegisterAdmin(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrAdminEmailExists)
}

func TestRegisterAdminValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterAdmin(context.Background(), &auth.RegisterAdminRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "123",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestLoginAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterAdmin(context.Background(), &auth.RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := svc.LoginAdmin(context.Background(), &auth.LoginRequest{
		Email:    "boss@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.User.Role)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterAdmin(context.Background(), &auth.RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.LoginAdmin(context.Background(), &auth.LoginRequest{
		Email:    "boss@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginAdminUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.LoginAdmin(context.Background(), &auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUser(t *testing.T) {
	svc, store := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = store.Users().Create(context.Background(), &user.User{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: string(hash),
		AdminID:  1,
	})
	require.NoError(t, err)

	result, err := svc.LoginUser(context.Background(), &auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "user", result.User.Role)
	assert.Equal(t, "Worker", result.User.Name)
}

func TestLoginUserWrongPassword(t *testing.T) {
	svc, store := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = store.Users().Create(context.Background(), &user.User{
		Name:     "Worker",
		Email:    "worker@example.com",
		Password: string(hash),
		AdminID:  1,
	})
	require.NoError(t, err)

	_, err = svc.LoginUser(context.Background(), &auth.LoginRequest{
		Email:    "worker@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
