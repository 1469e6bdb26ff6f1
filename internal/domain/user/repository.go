package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// GetEmployeeByID only matches non-staff accounts.
	GetEmployeeByID(ctx context.Context, id int64) (User, error)
	ListEmployees(ctx context.Context) ([]User, error)
	// ToggleEmployeeActive flips is_active on a non-staff account and returns the result.
	ToggleEmployeeActive(ctx context.Context, id int64) (User, error)

	// NextLoginSerial atomically allocates the next login-id serial for year.
	// The first allocation of a year continues after the accounts already joined in it.
	NextLoginSerial(ctx context.Context, year int) (int, error)
}
