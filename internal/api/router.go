package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spool-dev/spool/internal/composer"
	"github.com/spool-dev/spool/internal/config"
)

// Router wraps a chi router with handler configuration
type Router struct {
	chi     chi.Router
	handler *Handler
	logger  *slog.Logger
}

// NewRouter creates a new Router with the given dependencies. The service is
// consumed by a browser front-end, so CORS is open for the routes it needs.
func NewRouter(comp *composer.Composer, cfg *config.Config, logger *slog.Logger) *Router {
	handler := NewHandler(comp, cfg)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Register routes
	r.Get("/health", handler.Health)
	r.Get("/limits", handler.Limits)
	r.Post("/format", handler.Format)

	return &Router{
		chi:     r,
		handler: handler,
		logger:  logger,
	}
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chi.ServeHTTP(w, req)
}

// requestLogger logs one line per request with method, path, status, and
// duration. A nil logger disables request logging.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if logger == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}
		return http.HandlerFunc(fn)
	}
}
