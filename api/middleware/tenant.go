package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/salespulse/insights-backend/api/responses"
	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
	"github.com/salespulse/insights-backend/pkg/logger"
)

const tenantIDHeader = "X-Tenant-Id"

type tenantIDKey struct{}

// TenantContext requires the tenant header on every request it guards and
// stashes the trimmed value in the request context.
func TenantContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenantID := strings.TrimSpace(r.Header.Get(tenantIDHeader))
			ctx := r.Context()
			if tenantID == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeMissingTenant, "tenant id header is required"))
				return
			}

			if logg != nil {
				ctx = logg.WithTenantID(ctx, tenantID)
			}
			ctx = context.WithValue(ctx, tenantIDKey{}, tenantID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantIDFromContext returns the tenant id set by TenantContext, empty when
// the middleware did not run.
func TenantIDFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(tenantIDKey{}).(string); ok {
		return value
	}
	return ""
}
