package inmemory

import (
	"context"
	"errors"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
)

type profileRepository struct {
	s *Store
}

func NewProfileRepository(s *Store) employee.ProfileRepository {
	return &profileRepository{s: s}
}

func (r *profileRepository) Create(ctx context.Context, accountID int64, firstLogin bool) (employee.EmployeeProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[accountID]; ok {
		return employee.EmployeeProfile{}, errors.New("profile already exists")
	}
	p := employee.EmployeeProfile{AccountID: accountID, IsFirstLogin: firstLogin}
	r.s.profiles[accountID] = p
	return p, nil
}

func (r *profileRepository) GetOrCreate(ctx context.Context, accountID int64, firstLogin bool) (employee.EmployeeProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p, ok := r.s.profiles[accountID]; ok {
		return p, nil
	}
	p := employee.EmployeeProfile{AccountID: accountID, IsFirstLogin: firstLogin}
	r.s.profiles[accountID] = p
	return p, nil
}

func (r *profileRepository) GetByAccountID(ctx context.Context, accountID int64) (employee.EmployeeProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[accountID]
	if !ok {
		return employee.EmployeeProfile{}, employee.ErrProfileNotFound
	}
	return p, nil
}

func (r *profileRepository) SetFirstLogin(ctx context.Context, accountID int64, firstLogin bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.profiles[accountID] = employee.EmployeeProfile{AccountID: accountID, IsFirstLogin: firstLogin}
	return nil
}
