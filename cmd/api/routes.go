// AngelaMos | 2026
// routes.go

package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/config"
	"github.com/carterperez-dev/etsy-dashboard-api/internal/middleware"
)

// mountMiddleware installs the global chain. CORS sits ahead of the
// limiter so throttled responses still carry the allow-origin headers.
func mountMiddleware(
	router chi.Router,
	cfg *config.Config,
	logger *slog.Logger,
	rdb *redis.Client,
) {
	router.Use(chimw.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorDetail(cfg.ErrorDetailEnabled()))
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(
		middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			BypassFunc: middleware.BypassPaths("/health", "/livez", "/readyz"),
		}).Handler,
	)
}

func credentialLimiter(
	cfg *config.Config,
	rdb *redis.Client,
) func(next http.Handler) http.Handler {
	return middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
		Limit: middleware.PerHour(
			cfg.RateLimit.AuthRequests,
			cfg.RateLimit.AuthBurst,
		),
		KeyFunc: middleware.KeyByIPAndEndpoint,
	}).Handler
}
