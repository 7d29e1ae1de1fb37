package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the API's bearer tokens.
type Service struct {
	auth       *jwtauth.JWTAuth
	expiration time.Duration
}

func NewService(secret string, expiration time.Duration) *Service {
	return &Service{
		auth:       jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		expiration: expiration,
	}
}

// JWTAuth exposes the underlying verifier for router middleware.
func (s *Service) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

// GenerateToken signs a token carrying the user id and role.
func (s *Service) GenerateToken(userID int64, role string) (string, int64, error) {
	expiresAt := time.Now().Add(s.expiration)

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}
