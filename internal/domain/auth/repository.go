package auth

import (
	"context"
	"time"
)

type Session struct {
	ID        string
	AccountID int64
	UserAgent string
	IPAddress string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time

	// Join
	Username      string
	IsStaff       bool
	AccountActive bool
}

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	// GetByID returns the session joined with its account.
	GetByID(ctx context.Context, id string) (Session, error)
	Revoke(ctx context.Context, id string) error
}
