// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func doRequest(h http.Handler, path, remote string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	_, rdb := newTestRedis(t)

	rl := NewRateLimiter(rdb, RateLimitConfig{Limit: PerMinute(2, 2)})
	h := rl.Handler(okHandler)

	for range 2 {
		rec := doRequest(h, "/api/fees/info", "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(h, "/api/fees/info", "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")

	other := doRequest(h, "/api/fees/info", "10.0.0.2:1234")
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiter_Bypass(t *testing.T) {
	_, rdb := newTestRedis(t)

	rl := NewRateLimiter(rdb, RateLimitConfig{
		Limit:      PerMinute(1, 1),
		BypassFunc: BypassPaths("/health"),
	})
	h := rl.Handler(okHandler)

	for range 3 {
		assert.Equal(t, http.StatusOK, doRequest(h, "/health", "10.0.0.1:1").Code)
	}
}

func TestRateLimiter_FallsBackWhenRedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()

	rl := NewRateLimiter(rdb, RateLimitConfig{Limit: PerHour(1, 1)})
	h := rl.Handler(okHandler)

	assert.Equal(t, http.StatusOK, doRequest(h, "/api/x", "10.0.0.9:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "/api/x", "10.0.0.9:1").Code)
}

func TestKeys(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/auth/users/123e4567-e89b-12d3-a456-426614174000", nil)
	r.RemoteAddr = "192.168.1.5:5555"

	assert.Equal(t, "ratelimit:ip:192.168.1.5", KeyByIP(r))
	assert.Equal(t,
		"ratelimit:ip:192.168.1.5:endpoint:/api/auth/users/{id}",
		KeyByIPAndEndpoint(r),
	)
}

func TestLocalLimiter_RefillsAndSweeps(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newLocalLimiter(func() time.Time { return now })
	limit := PerMinute(60, 1)

	assert.Equal(t, 1, l.allow("a", limit).Allowed)

	denied := l.allow("a", limit)
	assert.Equal(t, 0, denied.Allowed)
	assert.Equal(t, time.Second, denied.RetryAfter)

	now = now.Add(time.Second)
	assert.Equal(t, 1, l.allow("a", limit).Allowed)

	now = now.Add(bucketTTL + time.Second)
	l.allow("b", limit)
	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}
