package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/metrics"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const maxLoginIDAttempts = 5

type EmployeeServiceImpl struct {
	tx          database.Transactor
	users       user.UserRepository
	profiles    employee.ProfileRepository
	companyCode string
	clock       utils.Clock
}

func NewEmployeeService(
	tx database.Transactor,
	userRepository user.UserRepository,
	profileRepository employee.ProfileRepository,
	companyCode string,
	clock utils.Clock,
) employee.EmployeeService {
	if companyCode == "" {
		companyCode = credential.DefaultCompanyCode
	}
	return &EmployeeServiceImpl{
		tx:          tx,
		users:       userRepository,
		profiles:    profileRepository,
		companyCode: companyCode,
		clock:       clock,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	tempPassword, err := credential.GenerateTempPassword()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	year := req.JoinedOn.Year()
	for attempt := 1; attempt <= maxLoginIDAttempts; attempt++ {
		// The serial is committed on its own so a collision below still advances it.
		serial, err := e.users.NextLoginSerial(ctx, year)
		if err != nil {
			return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to allocate login serial: %w", err)
		}
		loginID := credential.FormatLoginID(req.FirstName, req.LastName, year, serial, e.companyCode)

		var created user.User
		err = e.tx.WithinTx(ctx, func(txCtx context.Context) error {
			created, err = e.users.Create(txCtx, user.User{
				Username:     loginID,
				PasswordHash: string(hash),
				FirstName:    req.FirstName,
				LastName:     req.LastName,
				Email:        req.Email,
				IsActive:     true,
				IsStaff:      false,
				JoinedOn:     req.JoinedOn,
			})
			if err != nil {
				return err
			}
			if _, err := e.profiles.Create(txCtx, created.ID, true); err != nil {
				return fmt.Errorf("failed to create employee profile: %w", err)
			}
			return nil
		})
		if errors.Is(err, user.ErrUsernameExists) {
			slog.Warn("Login id already taken, retrying", "login_id", loginID, "attempt", attempt)
			continue
		}
		if err != nil {
			return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
		}

		metrics.ObserveProvisioned()
		slog.Info("Employee provisioned", "account_id", created.ID, "login_id", loginID)
		return employee.CreateEmployeeResponse{
			Message:           "Employee created",
			LoginID:           loginID,
			TemporaryPassword: tempPassword,
		}, nil
	}

	return employee.CreateEmployeeResponse{}, employee.ErrLoginIDExhausted
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeListItem, error) {
	users, err := e.users.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]employee.EmployeeListItem, 0, len(users))
	for _, u := range users {
		items = append(items, employee.ToListItem(u))
	}
	return items, nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error) {
	u, err := e.users.GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.EmployeeDetailResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToDetail(u), nil
}

// ToggleStatus implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ToggleStatus(ctx context.Context, caller auth.Caller, id int64) (employee.ToggleStatusResponse, error) {
	u, err := e.users.ToggleEmployeeActive(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ToggleStatusResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.ToggleStatusResponse{}, fmt.Errorf("failed to toggle employee status: %w", err)
	}

	slog.Info("Employee status updated", "account_id", u.ID, "is_active", u.IsActive, "updated_by", caller.Username)
	return employee.ToggleStatusResponse{Message: "Status updated", IsActive: u.IsActive}, nil
}

// GetProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetProfile(ctx context.Context, caller auth.Caller) (employee.ProfileResponse, error) {
	u, err := e.users.GetByID(ctx, caller.AccountID)
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to get account: %w", err)
	}

	firstLogin := false
	profile, err := e.profiles.GetByAccountID(ctx, caller.AccountID)
	switch {
	case err == nil:
		firstLogin = profile.IsFirstLogin
	case !errors.Is(err, employee.ErrProfileNotFound):
		return employee.ProfileResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return employee.ProfileResponse{
		Username:   u.Username,
		Name:       u.FullName(),
		Email:      u.Email,
		IsActive:   u.IsActive,
		Role:       string(u.Role()),
		FirstLogin: firstLogin,
	}, nil
}

// EnsureAdmin implements employee.EmployeeService.
func (e *EmployeeServiceImpl) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := e.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, today := e.clock.Today()
	created, err := e.users.Create(ctx, user.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
		JoinedOn:     today,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	slog.Info("Admin account created", "account_id", created.ID, "username", username)
	return nil
}
