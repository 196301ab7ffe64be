package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"property-backoffice/internal/model"
)

type fakeUserStore struct {
	users map[string]model.User // keyed by id
}

func newFakeUserStore(users ...model.User) *fakeUserStore {
	store := &fakeUserStore{users: map[string]model.User{}}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (s *fakeUserStore) FindActiveByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.Active {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *fakeUserStore) FindActiveByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok || !u.Active {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func testUser(t *testing.T, id string, email string, password string, active bool) model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return model.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "manager",
		Active:       active,
	}
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", true))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		result, err := svc.Login(ctx, "a@b.com", "x")
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)
		require.Equal(t, "Bearer", result.TokenType)
		require.Equal(t, int64((24 * time.Hour).Seconds()), result.ExpiresIn)
		require.Equal(t, "u1", result.User.ID)
		require.Equal(t, "a@b.com", result.User.Email)

		claims, err := svc.VerifyToken(result.Token)
		require.NoError(t, err)
		require.Equal(t, "u1", claims.UserID)
		require.Equal(t, "a@b.com", claims.Email)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", true))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		_, err := svc.Login(ctx, "a@b.com", "wrong")
		require.Error(t, err)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		store := newFakeUserStore()
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		_, err := svc.Login(ctx, "nobody@b.com", "x")
		require.Error(t, err)
	})

	t.Run("inactive user cannot log in even with the right password", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", false))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		_, err := svc.Login(ctx, "a@b.com", "x")
		require.Error(t, err)
	})

	t.Run("missing email or password fails validation", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", true))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		_, err := svc.Login(ctx, "", "x")
		require.Error(t, err)

		_, err = svc.Login(ctx, "a@b.com", "")
		require.Error(t, err)
	})
}

func TestAuthServiceVerifyToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	issueFor := func(t *testing.T, secret string, ttl time.Duration) string {
		t.Helper()
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", true))
		svc := NewAuthService(store, secret, ttl, nil)
		result, err := svc.Login(ctx, "a@b.com", "x")
		require.NoError(t, err)
		return result.Token
	}

	t.Run("token signed with a different key is rejected", func(t *testing.T) {
		token := issueFor(t, "other-secret", 24*time.Hour)
		svc := NewAuthService(newFakeUserStore(), "test-secret", 24*time.Hour, nil)

		_, err := svc.VerifyToken(token)
		require.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := issueFor(t, "test-secret", -time.Minute)
		svc := NewAuthService(newFakeUserStore(), "test-secret", 24*time.Hour, nil)

		_, err := svc.VerifyToken(token)
		require.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(newFakeUserStore(), "test-secret", 24*time.Hour, nil)

		_, err := svc.VerifyToken("not.a.token")
		require.Error(t, err)
	})
}

func TestAuthServiceGetActiveUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("resolves an active subject without the password hash", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", true))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		user, err := svc.GetActiveUser(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "u1", user.ID)
		require.Equal(t, "a@b.com", user.Email)
	})

	t.Run("fails for a deactivated subject", func(t *testing.T) {
		store := newFakeUserStore(testUser(t, "u1", "a@b.com", "x", false))
		svc := NewAuthService(store, "test-secret", 24*time.Hour, nil)

		_, err := svc.GetActiveUser(ctx, "u1")
		require.Error(t, err)
	})
}
