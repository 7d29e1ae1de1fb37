package attendance

import "context"

// AttendanceService covers the employee-facing attendance lifecycle. The
// caller's identity comes from the JWT claims in ctx.
type AttendanceService interface {
	CheckIn(ctx context.Context) (*SessionResponse, error)
	CheckOut(ctx context.Context) (*SessionResponse, error)
	ReportSick(ctx context.Context, req *ReportSickRequest) (*SessionResponse, error)
	ListMyAttendance(ctx context.Context, limit int) ([]SessionResponse, error)
	StartBreak(ctx context.Context, req *StartBreakRequest) (*BreakResponse, error)
	EndBreak(ctx context.Context) (*BreakResponse, error)
}
