package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

// NewSessionRepository creates a new instance of auth.SessionRepository.
func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements auth.SessionRepository.
func (s *sessionRepositoryImpl) Create(ctx context.Context, session auth.Session) error {
	q := GetQuerier(ctx, s.db)
	query := `
		INSERT INTO sessions (id, account_id, user_agent, ip_address, expires_at)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`
	_, err := q.Exec(ctx, query, session.ID, session.AccountID, session.UserAgent, session.IPAddress, session.ExpiresAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID implements auth.SessionRepository.
func (s *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Session, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT s.id::text, s.account_id, s.user_agent, s.ip_address, s.expires_at, s.revoked_at, s.created_at,
			   a.username, a.is_staff, a.is_active
		FROM sessions s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.id = $1::uuid
	`

	var session auth.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.AccountID, &session.UserAgent, &session.IPAddress,
		&session.ExpiresAt, &session.RevokedAt, &session.CreatedAt,
		&session.Username, &session.IsStaff, &session.AccountActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Session{}, auth.ErrSessionNotFound
		}
		return auth.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Revoke implements auth.SessionRepository.
func (s *sessionRepositoryImpl) Revoke(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE sessions
		SET revoked_at = NOW()
		WHERE id = $1::uuid AND revoked_at IS NULL
	`
	_, err := q.Exec(ctx, query, id)
	return err
}
