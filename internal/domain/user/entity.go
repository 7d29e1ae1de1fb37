package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Admin owns a set of users and manages them through the admin API.
type Admin struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is an employee account that records attendance.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	AdminID   int64
	AdminName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
