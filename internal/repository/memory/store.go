// Package memory provides in-memory repository implementations backing
// the service tests. Semantics mirror the PostgreSQL repositories,
// including the (nil, nil) guard-failure convention on conditional
// writes.
package memory

import (
	"sync"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/report"
	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
)

type Store struct {
	mu sync.Mutex

	sessions []attendance.Session
	breaks   []attendance.Break
	reports  []report.MonthlyReport
	admins   []user.Admin
	users    []user.User

	nextAdminID int64
	nextUserID  int64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Sessions() attendance.SessionRepository { return &sessionRepo{s: s} }
func (s *Store) Breaks() attendance.BreakRepository     { return &breakRepo{s: s} }
func (s *Store) Reports() report.ReportRepository       { return &reportRepo{s: s} }
func (s *Store) Admins() user.AdminRepository           { return &adminRepo{s: s} }
func (s *Store) Users() user.UserRepository             { return &userRepo{s: s} }
