package auth

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

// Caller is the resolved identity of an authenticated request.
type Caller struct {
	AccountID int64
	Username  string
	IsAdmin   bool
	SessionID string
}

func (c Caller) Role() user.Role {
	return user.RoleFor(c.IsAdmin)
}

type callerKey struct{}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
