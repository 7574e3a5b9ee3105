package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salespulse/insights-backend/api/controllers"
	insightscontrollers "github.com/salespulse/insights-backend/api/controllers/insights"
	"github.com/salespulse/insights-backend/api/middleware"
	insightsvc "github.com/salespulse/insights-backend/internal/insights"
	"github.com/salespulse/insights-backend/pkg/config"
	"github.com/salespulse/insights-backend/pkg/db"
	"github.com/salespulse/insights-backend/pkg/logger"
	"github.com/salespulse/insights-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	insightsService insightsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	// a typed-nil client must not reach the interface-valued probe
	var redisP controllers.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/insights", func(r chi.Router) {
		r.Get("/actions", insightscontrollers.Actions())

		r.Group(func(r chi.Router) {
			r.Use(middleware.TenantContext(logg))
			r.Use(middleware.RateLimit(cfg.RateLimit, redisClient, logg))
			r.Post("/", insightscontrollers.Run(insightsService, logg))
		})
	})

	return r
}
