package app

import (
	"net/http"

	authhandlers "github.com/Black-And-White-Club/matchday/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/matchday/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/matchday/app/shared/observability/attr"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// correlationHeader lets callers thread their own id through the logs.
const correlationHeader = "X-Correlation-ID"

// Router builds the HTTP handler: health and metrics at the root, the JSON API under
// /api behind rate limiting, CORS and bearer authentication.
func (app *App) Router() http.Handler {
	logger := app.Observability.Provider.Logger
	limiter := authhandlers.NewIPRateLimiter(rate.Limit(app.Config.HTTP.RateLimit), app.Config.HTTP.RateBurst)
	provider := authjwt.NewProvider(app.Config.JWT.Secret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(correlationID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if app.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", app.metricsHandler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(authhandlers.RateLimitMiddleware(limiter))
		r.Use(authhandlers.CORSMiddleware(app.Config.HTTP.AllowedOrigins))
		r.Use(authhandlers.RequireAuth(provider, logger))

		app.Modules.CompetitionModule.RegisterRoutes(r)
		app.Modules.BotModule.RegisterRoutes(r)
		app.Modules.MatchModule.RegisterRoutes(r)
		app.Modules.StandingsModule.RegisterRoutes(r)
		app.Modules.NotificationModule.RegisterRoutes(r)
	})

	return r
}

func (app *App) metricsHandler() http.Handler {
	if app.Observability.Registry.Prometheus == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(app.Observability.Registry.Prometheus, promhttp.HandlerOpts{})
}

// correlationID adopts the caller's X-Correlation-ID, or a fresh UUID, as the
// correlation id of the request and echoes it back.
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlationHeader, id)
		next.ServeHTTP(w, r.WithContext(attr.WithCorrelationID(r.Context(), id)))
	})
}
