package httpapi

import (
	"net/http"

	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string
	// RequestObserver and MetricsHandler are optional. MetricsHandler is mounted at /metrics.
	RequestObserver RequestObserver
	MetricsHandler  http.Handler
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerUserRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerActivityRoutes(mux, handler)
	registerLeaderboardRoutes(mux, handler)
	registerWorkoutRoutes(mux, handler)

	return RequestTracing(
		RequestLogging(logger,
			CORS(opts.CORSAllowedOrigins,
				recoverPanic(logger,
					RequestMetrics(opts.RequestObserver, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
