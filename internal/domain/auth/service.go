package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates credentials, opens today's attendance and starts a session.
	Login(ctx context.Context, req LoginRequest, sessionTrackReq SessionTrackingRequest) (LoginResult, error)
	// Logout closes today's open attendance record and revokes the session.
	Logout(ctx context.Context, caller Caller) error
	// ChangePassword replaces the password, clears the first-login flag and ends the session.
	ChangePassword(ctx context.Context, caller Caller, req ChangePasswordRequest) error
	// ResolveSession maps a verified session id onto the caller it belongs to.
	ResolveSession(ctx context.Context, sessionID string) (Caller, error)
}
