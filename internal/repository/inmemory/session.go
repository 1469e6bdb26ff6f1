package inmemory

import (
	"context"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
)

type sessionRepository struct {
	s *Store
}

func NewSessionRepository(s *Store) auth.SessionRepository {
	return &sessionRepository{s: s}
}

func (r *sessionRepository) Create(ctx context.Context, session auth.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[session.ID] = session
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (auth.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[id]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	if acc, ok := r.s.accounts[session.AccountID]; ok {
		session.Username = acc.Username
		session.IsStaff = acc.IsStaff
		session.AccountActive = acc.IsActive
	}
	return session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[id]
	if !ok || session.RevokedAt != nil {
		return nil
	}
	revokedAt := time.Now()
	session.RevokedAt = &revokedAt
	r.s.sessions[id] = session
	return nil
}
