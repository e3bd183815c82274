package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sync-backend/internal/auth"
	"sync-backend/internal/config"
)

func testMiddleware(t *testing.T) (*AuthMiddleware, *auth.JWTManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "sync-backend"
	mgr := auth.NewJWTManager(cfg)
	return NewAuthMiddleware(mgr), mgr
}

func identityEcho(t *testing.T, seen *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		*seen = userID
	})
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	mw, mgr := testMiddleware(t)
	token, err := mgr.GenerateToken("USER1")
	require.NoError(t, err)

	var seen string
	req := httptest.NewRequest(http.MethodGet, "/sync/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(identityEcho(t, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "USER1", seen)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw, _ := testMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/sync/verify-token", nil)
	rec := httptest.NewRecorder()

	called := false
	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "Token missing"}`, rec.Body.String())
	assert.False(t, called)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	mw, mgr := testMiddleware(t)
	token, err := mgr.GenerateToken("USER1")
	require.NoError(t, err)

	for _, header := range []string{token, "Token " + token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/sync/verify-token", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("handler reached with header %q", header)
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticateBadToken(t *testing.T) {
	mw, _ := testMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/sync/verify-token", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with invalid token")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "Invalid or expired token"}`, rec.Body.String())
}
