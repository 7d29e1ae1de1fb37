package attendance

import (
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// ReportSickRequest carries an optional note and document. A session is
// sick-marked only when a note is present.
type ReportSickRequest struct {
	Note *string `json:"note"`
	// DocumentURL is filled by the handler after a successful upload.
	DocumentURL *string `json:"-"`
}

type StartBreakRequest struct {
	Reason *string `json:"reason"`
}

type SessionResponse struct {
	ID           string          `json:"id"`
	UserID       int64           `json:"userId"`
	CheckIn      string          `json:"checkIn"`
	CheckOut     *string         `json:"checkOut"`
	HoursWorked  float64         `json:"hoursWorked"`
	SickNote     *string         `json:"sickNote,omitempty"`
	SickDocument *string         `json:"sickDocument,omitempty"`
	Breaks       []BreakResponse `json:"breaks,omitempty"`
}

type BreakResponse struct {
	ID        string  `json:"id"`
	SessionID string  `json:"sessionId"`
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Duration  float64 `json:"duration"`
	Reason    *string `json:"reason,omitempty"`
}

func NewSessionResponse(s *Session) *SessionResponse {
	return &SessionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		CheckIn:      s.CheckIn.Format(timeFormat),
		CheckOut:     formatTimePtr(s.CheckOut),
		HoursWorked:  s.HoursWorked,
		SickNote:     s.SickNote,
		SickDocument: s.SickDocument,
	}
}

func NewBreakResponse(b *Break) *BreakResponse {
	return &BreakResponse{
		ID:        b.ID,
		SessionID: b.SessionID,
		StartTime: b.StartTime.Format(timeFormat),
		EndTime:   formatTimePtr(b.EndTime),
		Duration:  b.Duration,
		Reason:    b.Reason,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeFormat)
	return &s
}
