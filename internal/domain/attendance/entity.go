package attendance

import "time"

// Session is one attendance record. A regular session opens at check-in
// and closes at check-out. A sick session opens with zero hours and a
// sick note; being open, it is resolved by check-out and breaks like any
// other session.
type Session struct {
	ID           string
	UserID       int64
	CheckIn      time.Time
	CheckOut     *time.Time
	HoursWorked  float64
	SickNote     *string
	SickDocument *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *Session) IsOpen() bool {
	return s.CheckOut == nil
}

func (s *Session) IsSick() bool {
	return s.SickNote != nil
}

// Break is a pause within a session. Duration is in hours and is filled
// when the break ends.
type Break struct {
	ID        string
	SessionID string
	StartTime time.Time
	EndTime   *time.Time
	Duration  float64
	Reason    *string
	CreatedAt time.Time
}

func (b *Break) IsOpen() bool {
	return b.EndTime == nil
}
