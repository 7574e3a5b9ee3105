package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/salespulse/insights-backend/api/responses"
	"github.com/salespulse/insights-backend/pkg/config"
	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
	"github.com/salespulse/insights-backend/pkg/logger"
)

const envHeader = "X-SalesPulse-Env"

// Pinger is the health-check surface a dependency exposes.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every hard dependency and reports the combined result.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var err error
		checks := map[string]string{}
		probe := func(name string, p Pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if pingErr := p.Ping(ctx); pingErr != nil {
				checks[name] = "down"
				err = multierr.Append(err, fmt.Errorf("%s: %w", name, pingErr))
				return
			}
			checks[name] = "ok"
		}

		probe("database", db)
		probe("redis", redis)

		if err != nil {
			wrapped := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed").WithDetails(checks)
			responses.WriteError(ctx, logg, w, wrapped)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
