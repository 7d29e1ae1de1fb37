package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("Already checked in today")
	ErrAlreadySick      = errors.New("Already reported sick today")
	ErrNoActiveSession  = errors.New("No active check-in found")
	ErrBreakInProgress  = errors.New("Break already in progress")
	ErrNoActiveBreak    = errors.New("No active break found")
)
