package user

import "errors"

var (
	ErrUserNotFound           = errors.New("User not found")
	ErrEmailExists            = errors.New("User with this email already exists")
	ErrAdminEmailExists       = errors.New("Admin with this email already exists")
	ErrInvalidEmail           = errors.New("Invalid email format")
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
)
