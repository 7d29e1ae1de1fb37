package response

import (
	"errors"
	"net/http"

	"github.com/worktrack/timeclock-backend-go/internal/domain/attendance"
	"github.com/worktrack/timeclock-backend-go/internal/domain/auth"
	"github.com/worktrack/timeclock-backend-go/internal/domain/user"
	"github.com/worktrack/timeclock-backend-go/internal/pkg/validator"
	"github.com/worktrack/timeclock-backend-go/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadySick):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrBreakInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveSession):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrNoActiveBreak):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrAdminEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrInvalidEmail):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Upload errors
	case errors.Is(err, file.ErrUnsupportedFileType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
