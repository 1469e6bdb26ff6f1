package attendance

import "errors"

var (
	ErrAlreadyCheckedIn   = errors.New("Already checked in")
	ErrNotCheckedIn       = errors.New("No check-in found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
