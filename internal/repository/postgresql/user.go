package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, username, password_hash, first_name, last_name, email, is_active, is_staff, joined_on, created_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.IsActive,
		&u.IsStaff,
		&u.JoinedOn,
		&u.CreatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

// GetEmployeeByID implements user.UserRepository.
func (r *userRepositoryImpl) GetEmployeeByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND is_staff = FALSE`, id)
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (username, password_hash, first_name, last_name, email, is_active, is_staff, joined_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + accountColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.FirstName,
		newUser.LastName,
		newUser.Email,
		newUser.IsActive,
		newUser.IsStaff,
		newUser.JoinedOn,
	))
	if err != nil {
		if isUniqueViolation(err, "accounts_username_key") {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE accounts SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE is_staff = FALSE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ToggleEmployeeActive implements user.UserRepository.
func (r *userRepositoryImpl) ToggleEmployeeActive(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, `
		UPDATE accounts SET is_active = NOT is_active
		WHERE id = $1 AND is_staff = FALSE
		RETURNING `+accountColumns, id)
}

// NextLoginSerial implements user.UserRepository.
func (r *userRepositoryImpl) NextLoginSerial(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO login_id_sequences (year, last_serial)
		VALUES (
			$1::int,
			(SELECT COUNT(*) FROM accounts
			 WHERE joined_on >= make_date($1::int, 1, 1)
			   AND joined_on < make_date($1::int + 1, 1, 1)) + 1
		)
		ON CONFLICT (year) DO UPDATE SET last_serial = login_id_sequences.last_serial + 1
		RETURNING last_serial
	`

	var serial int
	if err := q.QueryRow(ctx, query, year).Scan(&serial); err != nil {
		return 0, fmt.Errorf("failed to allocate login serial: %w", err)
	}
	return serial, nil
}
