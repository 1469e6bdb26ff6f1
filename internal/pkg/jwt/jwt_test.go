package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", false)

	token, expiresAt, err := svc.GenerateSessionToken(SessionClaims{
		SessionID: "0192a1b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b",
		AccountID: 42,
		Username:  "DFANLE20240004",
		IsAdmin:   true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0192a1b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b", claims["sid"])
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "DFANLE20240004", claims["username"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "session", claims["type"])
}

func TestGenerateSessionToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "forever", false)

	_, _, err := svc.GenerateSessionToken(SessionClaims{SessionID: "x", AccountID: 1})
	assert.Error(t, err)
}

func TestSessionCookies(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", true)
	expiresAt := time.Now().Add(time.Hour)

	cookie := svc.SessionCookie("token-value", expiresAt)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	cleared := svc.ClearSessionCookie()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestTokenFromCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, svc.TokenFromCookie(req))

	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
	assert.Equal(t, "abc", svc.TokenFromCookie(req))
}
