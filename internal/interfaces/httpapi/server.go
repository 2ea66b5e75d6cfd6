package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

// RouterConfig carries the optional pieces of the HTTP surface.
type RouterConfig struct {
	Logger             *logging.Logger
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// Metrics is exposed on /metrics and fed by RequestMetrics when non-nil.
	Metrics MetricsExporter
}

// MetricsExporter serves collected metrics and observes requests.
type MetricsExporter interface {
	RequestObserver
	Handler() http.Handler
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg)
	registerDashboardRoutes(mux, handler)
	registerUserRoutes(mux, handler)
	registerTournamentRoutes(mux, handler)
	registerMatchRoutes(mux, handler)

	var observer RequestObserver
	if cfg.Metrics != nil {
		observer = cfg.Metrics
	}

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(observer, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
