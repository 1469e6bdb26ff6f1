package inmemory

import (
	"context"
	"sort"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) user.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.accounts[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.accounts {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.accounts {
		if u.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	r.s.nextAccountID++
	newUser.ID = r.s.nextAccountID
	r.s.accounts[newUser.ID] = newUser
	return newUser, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.accounts[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.s.accounts[userID] = u
	return nil
}

func (r *userRepository) GetEmployeeByID(ctx context.Context, id int64) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.accounts[id]
	if !ok || u.IsStaff {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) ListEmployees(ctx context.Context) ([]user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := []user.User{}
	for _, u := range r.s.accounts {
		if !u.IsStaff {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepository) ToggleEmployeeActive(ctx context.Context, id int64) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.accounts[id]
	if !ok || u.IsStaff {
		return user.User{}, user.ErrUserNotFound
	}
	u.IsActive = !u.IsActive
	r.s.accounts[id] = u
	return u, nil
}

func (r *userRepository) NextLoginSerial(ctx context.Context, year int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	last, ok := r.s.sequences[year]
	if !ok {
		for _, u := range r.s.accounts {
			if u.JoinedOn.Year() == year {
				last++
			}
		}
	}
	last++
	r.s.sequences[year] = last
	return last, nil
}
