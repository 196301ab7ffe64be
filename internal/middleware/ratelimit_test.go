package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func hit(m *RateLimitMiddleware, path string, ip string) int {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	m.Handler(next).ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("requests past the budget answer 429", func(t *testing.T) {
		m := NewRateLimitMiddleware(2, 0)

		require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.1"))
		require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.1"))
		require.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/properties", "10.0.0.1"))
	})

	t.Run("budgets are tracked per client IP", func(t *testing.T) {
		m := NewRateLimitMiddleware(1, 0)

		require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.1"))
		require.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/properties", "10.0.0.1"))
		require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.2"))
	})

	t.Run("auth routes draw from the tighter budget", func(t *testing.T) {
		m := NewRateLimitMiddleware(100, 1)

		require.Equal(t, http.StatusOK, hit(m, "/api/v1/auth/login", "10.0.0.1"))
		require.Equal(t, http.StatusTooManyRequests, hit(m, "/api/v1/auth/login", "10.0.0.1"))
		require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.1"))
	})

	t.Run("zero disables the limit", func(t *testing.T) {
		m := NewRateLimitMiddleware(0, 0)

		for i := 0; i < 20; i++ {
			require.Equal(t, http.StatusOK, hit(m, "/api/v1/properties", "10.0.0.1"))
		}
	})

	t.Run("forwarded header takes precedence for client identity", func(t *testing.T) {
		m := NewRateLimitMiddleware(1, 0)

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		send := func(forwardedFor string) int {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
			req.RemoteAddr = "10.0.0.1:12345"
			req.Header.Set("X-Forwarded-For", forwardedFor)
			rec := httptest.NewRecorder()
			m.Handler(next).ServeHTTP(rec, req)
			return rec.Code
		}

		require.Equal(t, http.StatusOK, send("203.0.113.7"))
		require.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
		require.Equal(t, http.StatusOK, send("203.0.113.8"))
	})
}
