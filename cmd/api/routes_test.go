// AngelaMos | 2026
// routes_test.go

package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/config"
)

const testOrigin = "https://shop.example.com"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		App:       config.AppConfig{Environment: "development"},
		RateLimit: config.RateLimitConfig{Requests: 1, Burst: 1},
		CORS:      config.CORSConfig{AllowedOrigins: []string{testOrigin}},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	mountMiddleware(r, cfg, logger, rdb)
	r.Get("/api/fees/info", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func TestMountMiddleware_ThrottledResponseKeepsCORS(t *testing.T) {
	h := newTestRouter(t)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/fees/info", nil)
		req.Header.Set("Origin", testOrigin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, testOrigin, first.Header().Get("Access-Control-Allow-Origin"))

	throttled := send()
	require.Equal(t, http.StatusTooManyRequests, throttled.Code)
	assert.Equal(t, testOrigin, throttled.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, throttled.Header().Get("Retry-After"))
}
