package employee

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
)

type EmployeeService interface {
	// CreateEmployee provisions a non-staff account with a generated login id and temporary password.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeListItem, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeDetailResponse, error)
	ToggleStatus(ctx context.Context, caller auth.Caller, id int64) (ToggleStatusResponse, error)
	GetProfile(ctx context.Context, caller auth.Caller) (ProfileResponse, error)

	// EnsureAdmin creates the staff account used to bootstrap a fresh database.
	// It does nothing when the username is already taken.
	EnsureAdmin(ctx context.Context, username, password string) error
}
