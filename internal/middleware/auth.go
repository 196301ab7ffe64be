package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"property-backoffice/internal/model"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (*model.AuthClaims, error)
}

type userResolver interface {
	GetActiveUser(ctx context.Context, userID string) (model.AuthUser, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

// AuthMiddleware is the single gate in front of every protected route:
// bearer token extraction, signature/expiry verification, then a lookup
// confirming the subject is still an active user. All three failure
// modes answer 401 before any business logic runs.
type AuthMiddleware struct {
	tokens tokenVerifier
	users  userResolver
}

func NewAuthMiddleware(tokens tokenVerifier, users userResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "MISSING_TOKEN", "missing or invalid authorization header")
			return
		}

		token := strings.TrimSpace(header[7:])
		claims, err := m.tokens.VerifyToken(token)
		if err != nil {
			writeUnauthorized(w, "INVALID_TOKEN", "invalid or expired token")
			return
		}

		user, err := m.users.GetActiveUser(r.Context(), claims.UserID)
		if err != nil {
			writeUnauthorized(w, "UNKNOWN_USER", "user not found or inactive")
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user attached by RequireAuth.
func UserFromContext(ctx context.Context) (model.AuthUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(*model.AuthUser)
	if !ok || user == nil {
		return model.AuthUser{}, false
	}
	return *user, true
}

func writeUnauthorized(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
