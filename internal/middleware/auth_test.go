package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"property-backoffice/internal/model"
)

type stubVerifier struct {
	claims *model.AuthClaims
	err    error
}

func (s stubVerifier) VerifyToken(string) (*model.AuthClaims, error) {
	return s.claims, s.err
}

type stubResolver struct {
	user model.AuthUser
	err  error
}

func (s stubResolver) GetActiveUser(context.Context, string) (model.AuthUser, error) {
	return s.user, s.err
}

func runAuth(t *testing.T, m *AuthMiddleware, authorization string) (*httptest.ResponseRecorder, *model.AuthUser) {
	t.Helper()

	var seen *model.AuthUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := UserFromContext(r.Context()); ok {
			seen = &u
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	m.RequireAuth(next).ServeHTTP(rec, req)
	return rec, seen
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	claims := &model.AuthClaims{UserID: "u1", Email: "a@b.com"}
	activeUser := model.AuthUser{ID: "u1", Email: "a@b.com", Name: "Ana"}

	t.Run("missing header answers 401 MISSING_TOKEN", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{claims: claims}, stubResolver{user: activeUser})

		rec, seen := runAuth(t, m, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
		require.Nil(t, seen)
	})

	t.Run("non-bearer scheme answers 401 MISSING_TOKEN", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{claims: claims}, stubResolver{user: activeUser})

		rec, _ := runAuth(t, m, "Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
	})

	t.Run("bad token answers 401 INVALID_TOKEN", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{err: errors.New("signature mismatch")}, stubResolver{user: activeUser})

		rec, _ := runAuth(t, m, "Bearer not-a-token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
	})

	t.Run("valid token for a deactivated user answers 401 UNKNOWN_USER", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{claims: claims}, stubResolver{err: model.ErrUserNotFound})

		rec, _ := runAuth(t, m, "Bearer good-token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "UNKNOWN_USER", errorCode(t, rec))
	})

	t.Run("valid token attaches the active user to the request context", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{claims: claims}, stubResolver{user: activeUser})

		rec, seen := runAuth(t, m, "Bearer good-token")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		require.Equal(t, "u1", seen.ID)
		require.Equal(t, "a@b.com", seen.Email)
	})

	t.Run("bearer scheme is case-insensitive", func(t *testing.T) {
		m := NewAuthMiddleware(stubVerifier{claims: claims}, stubResolver{user: activeUser})

		rec, seen := runAuth(t, m, "bearer good-token")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
	})
}

func TestUserFromContextEmpty(t *testing.T) {
	t.Parallel()

	_, ok := UserFromContext(context.Background())
	require.False(t, ok)
}
