package server

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/MagicGarden_Go/internal/database"
	"github.com/osse101/MagicGarden_Go/internal/handler"
	"github.com/osse101/MagicGarden_Go/internal/journal"
	"github.com/osse101/MagicGarden_Go/internal/logger"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
	"github.com/osse101/MagicGarden_Go/internal/sse"
	"github.com/osse101/MagicGarden_Go/internal/stream"
)

// Options configures the listener and its guards
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Dependencies are the components the routes serve. Journal and DB may be
// nil when no journal backend is configured.
type Dependencies struct {
	Session      handler.GardenSession
	Catalog      handler.CatalogSearcher
	Notification handler.NotificationReader
	Journal      journal.Service
	DB           database.Pinger
	Events       *sse.Hub
	Stream       *stream.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) (*Server, error) {
	r, err := NewRouter(opts, deps)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}, nil
}

// NewRouter builds the route tree
func NewRouter(opts Options, deps Dependencies) (chi.Router, error) {
	gzip, err := gzhttp.NewWrapper(gzhttp.MinSize(MinCompressSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %w", err)
	}
	compress := func(next http.Handler) http.Handler { return gzip(next) }

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Session, deps.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	sessionHandler := handler.NewSessionHandler(deps.Session)
	actionsHandler := handler.NewActionsHandler(deps.Session)
	journalHandler := handler.NewJournalHandler(deps.Journal)

	r.Route("/api/v1", func(r chi.Router) {
		// Long-lived streams must not sit behind the compressor
		if deps.Events != nil {
			r.Get("/events", sse.Handler(deps.Events))
		}
		if deps.Stream != nil {
			r.Get("/ws", deps.Stream.Handler())
		}
		// Export is already zstd
		r.Get("/journal/export", journalHandler.HandleExport)

		r.Group(func(r chi.Router) {
			r.Use(compress)

			r.Get("/session", sessionHandler.HandleGetSession)
			r.Post("/session/reload", sessionHandler.HandleReload)

			r.Post("/selection", sessionHandler.HandleSelect)
			r.Delete("/selection", sessionHandler.HandleCancelSelection)

			r.Route("/actions", func(r chi.Router) {
				r.Post("/buy", actionsHandler.HandleBuy)
				r.Post("/plant", actionsHandler.HandlePlant)
				r.Post("/harvest", actionsHandler.HandleHarvest)
				r.Post("/unlock", actionsHandler.HandleUnlock)
			})

			r.Get("/catalog", handler.HandleCatalog(deps.Catalog))
			r.Get("/notification", handler.HandleNotification(deps.Notification))
			r.Get("/journal", journalHandler.HandleList)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r, nil
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

// Flush keeps server-sent events streaming through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the WebSocket upgrader take over the connection
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	rw.written = true
	rw.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
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
