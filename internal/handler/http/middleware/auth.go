package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired runs after jwtauth.Verify. It checks the verified token is a
// session token, resolves its server-side session and puts the Caller in the
// request context.
func AuthRequired(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "session" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sessionID, ok := claims["sid"].(string)
			if !ok || sessionID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			caller, err := authService.ResolveSession(r.Context(), sessionID)
			if err != nil {
				slog.Warn("session rejected", "error", err)
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithCaller(r.Context(), caller)))
		}
		return http.HandlerFunc(hfn)
	}
}
