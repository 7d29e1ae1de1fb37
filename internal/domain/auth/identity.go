package auth

import (
	"context"
	"encoding/json"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
)

// Identity is the authenticated caller extracted from JWT claims.
type Identity struct {
	UserID int64
	Role   user.Role
}

func (i *Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

// FromContext reads the verified claims placed in ctx by the jwtauth
// middleware.
func FromContext(ctx context.Context) (*Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, ok := toInt64(claims["user_id"])
	if !ok {
		return nil, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: userID,
		Role:   user.Role(role),
	}, nil
}

// Claims decoded from JSON carry numbers as float64; claims set locally
// keep their Go type.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
