package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrProfileNotFound  = errors.New("employee profile not found")
	// ErrLoginIDExhausted is returned when every retried serial collided with an existing username.
	ErrLoginIDExhausted = errors.New("could not allocate a unique login id")
)
