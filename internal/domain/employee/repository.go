package employee

import (
	"context"
)

type ProfileRepository interface {
	// Create inserts the account's profile; provisioning uses it with firstLogin=true.
	Create(ctx context.Context, accountID int64, firstLogin bool) (EmployeeProfile, error)
	// GetOrCreate returns the account's profile, inserting it with firstLogin if missing.
	GetOrCreate(ctx context.Context, accountID int64, firstLogin bool) (EmployeeProfile, error)
	GetByAccountID(ctx context.Context, accountID int64) (EmployeeProfile, error)
	SetFirstLogin(ctx context.Context, accountID int64, firstLogin bool) error
}
