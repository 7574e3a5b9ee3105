package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/salespulse/insights-backend/api/responses"
	"github.com/salespulse/insights-backend/pkg/config"
	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
	"github.com/salespulse/insights-backend/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit throttles analysis requests per tenant with a fixed window
// counter in Redis. A nil store or a zero limit disables throttling.
func RateLimit(cfg config.RateLimitConfig, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil || cfg.Limit <= 0 || cfg.Window <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tenantID := TenantIDFromContext(ctx)
			if tenantID == "" {
				// let the tenant guard produce the proper error
				next.ServeHTTP(w, r)
				return
			}

			scope := fmt.Sprintf("tenant:%s", tenantID)
			allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(cfg.Limit), cfg.Window)
			if err != nil {
				// fail open: throttling must not take the API down with it
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "rate_limit.store_unavailable")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"attempts":       count,
						"limit":          cfg.Limit,
						"window_seconds": int(cfg.Window.Seconds()),
					})
					logg.Warn(logCtx, "rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
