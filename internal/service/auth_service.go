package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"property-backoffice/internal/event"
	"property-backoffice/internal/model"
	"property-backoffice/pkg/apierror"
)

// UserStore is the subset of the user repository the auth service
// needs. Only active users are ever visible through it.
type UserStore interface {
	FindActiveByEmail(ctx context.Context, email string) (model.User, error)
	FindActiveByID(ctx context.Context, id string) (model.User, error)
}

type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
	bus      event.Bus
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration, bus event.Bus) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
		bus:      bus,
	}
}

// Login verifies credentials against the active-user set and issues a
// bearer token. Unknown, inactive and wrong-password cases all collapse
// into the same invalid-credentials response.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return model.LoginResult{}, apierror.Validation("a valid email is required", "email")
	}
	if password == "" {
		return model.LoginResult{}, apierror.Validation("password is required", "password")
	}

	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.LoginResult{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
		}
		return model.LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.LoginResult{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return model.LoginResult{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.Event{
			ID:         uuid.NewString(),
			Type:       event.TypeUserLoggedIn,
			ActorID:    user.ID,
			ActorEmail: user.Email,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}

	return model.LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
		User:      model.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	}, nil
}

// VerifyToken checks signature and expiry only. Whether the subject is
// still an active user is the auth middleware's concern.
func (s *AuthService) VerifyToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apierror.New("INVALID_TOKEN", "invalid token signing method", "", http.StatusUnauthorized)
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.New("INVALID_TOKEN", "invalid or expired token", "", http.StatusUnauthorized)
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.New("INVALID_TOKEN", "invalid token claims", "", http.StatusUnauthorized)
	}

	claims := &model.AuthClaims{}
	claims.UserID, _ = claimsMap["sub"].(string)
	claims.Email, _ = claimsMap["email"].(string)

	if claims.UserID == "" {
		return nil, apierror.New("INVALID_TOKEN", "invalid token subject", "", http.StatusUnauthorized)
	}

	return claims, nil
}

// GetActiveUser resolves a token subject to the password-free user
// record, failing for accounts that were deactivated after issuance.
func (s *AuthService) GetActiveUser(ctx context.Context, userID string) (model.AuthUser, error) {
	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.AuthUser{}, apierror.New("UNKNOWN_USER", "user not found or inactive", "", http.StatusUnauthorized)
		}
		return model.AuthUser{}, err
	}

	return model.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}
