package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Despensa_Go/internal/database"
	"github.com/osse101/Despensa_Go/internal/handler"
	"github.com/osse101/Despensa_Go/internal/logger"
	"github.com/osse101/Despensa_Go/internal/menu"
	"github.com/osse101/Despensa_Go/internal/metrics"
	"github.com/osse101/Despensa_Go/internal/middleware"
	"github.com/osse101/Despensa_Go/internal/naming"
	"github.com/osse101/Despensa_Go/internal/pantry"
	"github.com/osse101/Despensa_Go/internal/prepare"
)

// Options configures the HTTP surface
type Options struct {
	Port               int
	Version            string
	APIKey             string
	Tokens             TokenParser
	TrustedProxies     []string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Services are the dependencies routes are bound to
type Services struct {
	DB      database.Pool
	Pantry  pantry.Service
	Menu    menu.Service
	Prepare prepare.Service
	Units   naming.Resolver
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware chain and routes
func NewRouter(opts Options, svc Services) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewRateLimiter(opts.RateLimitPerMinute, opts.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.Tokens, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion(opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", handler.HandleListPantry(svc.Pantry))
			r.With(middleware.Track(middleware.ActionPantryCreate)).Post("/", handler.HandleCreatePantry(svc.Pantry))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetPantryItem(svc.Pantry))
				r.With(middleware.Track(middleware.ActionPantryUpdate)).Patch("/", handler.HandlePatchPantryItem(svc.Pantry))
				r.With(middleware.Track(middleware.ActionPantryUpdate)).Put("/", handler.HandleReplacePantryItem(svc.Pantry))
				r.With(middleware.Track(middleware.ActionPantryDelete)).Delete("/", handler.HandleDeletePantryItem(svc.Pantry))
			})
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", handler.HandleListMenus(svc.Menu))
			r.With(middleware.Track(middleware.ActionMenuCreate)).Post("/", handler.HandleCreateMenu(svc.Menu))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetMenu(svc.Menu))
				r.With(middleware.Track(middleware.ActionMenuUpdate)).Put("/days/{day}", handler.HandleReplaceRecipe(svc.Menu))
				r.With(middleware.Track(middleware.ActionMenuFinalize)).Post("/finalize", handler.HandleFinalizeMenu(svc.Menu))
				r.With(middleware.Track(middleware.ActionMenuPrepare)).Post("/prepare", handler.HandlePrepareMenu(svc.Prepare))
			})
		})

		r.Get("/units", handler.HandleListUnits(svc.Units))

		r.Route("/admin", func(r chi.Router) {
			r.With(middleware.Track(middleware.ActionReloadUnits)).Post("/reload-units", handler.HandleReloadUnits(svc.Units))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for probes and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Honor a caller-supplied id so traces join across the CLI and server
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
