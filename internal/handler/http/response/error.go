package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionRevoked),
		errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrOldPasswordIncorrect):
		BadRequest(w, "Old password incorrect", nil)
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "You do not have permission to perform this action")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
