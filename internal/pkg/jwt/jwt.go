package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	SessionCookieName = "sessionid"
	sessionCookiePath = "/"
	tokenTypeSession  = "session"
)

// SessionClaims is the identity embedded in a signed session cookie.
type SessionClaims struct {
	SessionID string
	AccountID int64
	Username  string
	IsAdmin   bool
}

type Service interface {
	GenerateSessionToken(claims SessionClaims) (token string, expiresAt time.Time, err error)
	SessionExpiresAt(now time.Time) (time.Time, error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt time.Time) *http.Cookie
	ClearSessionCookie() *http.Cookie
	TokenFromCookie(r *http.Request) string
}

type JWTService struct {
	sessionExpirationTime string
	secureCookie          bool
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string, secureCookie bool) Service {
	return &JWTService{
		sessionExpirationTime: sessionExpirationTime,
		secureCookie:          secureCookie,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}
}

func (j *JWTService) SessionExpiresAt(now time.Time) (time.Time, error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse session expiration: %w", err)
	}
	return now.Add(expDuration), nil
}

func (j *JWTService) GenerateSessionToken(claims SessionClaims) (token string, expiresAt time.Time, err error) {
	now := j.now()
	expiresAt, err = j.SessionExpiresAt(now)
	if err != nil {
		return "", time.Time{}, err
	}

	payload := map[string]interface{}{
		"sid":      claims.SessionID,
		"sub":      fmt.Sprintf("%d", claims.AccountID),
		"username": claims.Username,
		"is_admin": claims.IsAdmin,
		"type":     tokenTypeSession,
	}
	jwtauth.SetIssuedAt(payload, now)
	jwtauth.SetExpiry(payload, expiresAt)

	_, tokenString, err := j.tokenAuth.Encode(payload)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     sessionCookiePath,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     sessionCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromCookie is a jwtauth token finder for the session cookie.
func (j *JWTService) TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
