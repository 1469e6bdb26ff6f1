package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// Create implements employee.ProfileRepository.
func (r *profileRepositoryImpl) Create(ctx context.Context, accountID int64, firstLogin bool) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (account_id, is_first_login)
		VALUES ($1, $2)
		RETURNING account_id, is_first_login
	`

	var p employee.EmployeeProfile
	if err := q.QueryRow(ctx, query, accountID, firstLogin).Scan(&p.AccountID, &p.IsFirstLogin); err != nil {
		return employee.EmployeeProfile{}, fmt.Errorf("failed to create employee profile: %w", err)
	}
	return p, nil
}

// GetOrCreate implements employee.ProfileRepository.
// The no-op update makes RETURNING yield the existing row on conflict.
func (r *profileRepositoryImpl) GetOrCreate(ctx context.Context, accountID int64, firstLogin bool) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (account_id, is_first_login)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET account_id = EXCLUDED.account_id
		RETURNING account_id, is_first_login
	`

	var p employee.EmployeeProfile
	if err := q.QueryRow(ctx, query, accountID, firstLogin).Scan(&p.AccountID, &p.IsFirstLogin); err != nil {
		return employee.EmployeeProfile{}, fmt.Errorf("failed to get or create employee profile: %w", err)
	}
	return p, nil
}

// GetByAccountID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) GetByAccountID(ctx context.Context, accountID int64) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	var p employee.EmployeeProfile
	err := q.QueryRow(ctx, `SELECT account_id, is_first_login FROM employee_profiles WHERE account_id = $1`, accountID).
		Scan(&p.AccountID, &p.IsFirstLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeProfile{}, employee.ErrProfileNotFound
		}
		return employee.EmployeeProfile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return p, nil
}

// SetFirstLogin implements employee.ProfileRepository.
func (r *profileRepositoryImpl) SetFirstLogin(ctx context.Context, accountID int64, firstLogin bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_profiles (account_id, is_first_login)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET is_first_login = EXCLUDED.is_first_login
	`
	if _, err := q.Exec(ctx, query, accountID, firstLogin); err != nil {
		return fmt.Errorf("failed to update first login flag: %w", err)
	}
	return nil
}
