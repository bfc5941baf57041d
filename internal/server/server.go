// Package server assembles the HTTP surface: Connect services, REST read
// endpoints, health and metrics, behind chi with CORS and h2c.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/zaryabali001/roommate/internal/auth"
	"github.com/zaryabali001/roommate/internal/metrics"
	"github.com/zaryabali001/roommate/internal/middleware"
	"github.com/zaryabali001/roommate/internal/service"
	"github.com/zaryabali001/roommate/internal/store"
)

// Config holds the listener settings.
type Config struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// Server serves one household store.
type Server struct {
	cfg      Config
	store    *store.Store
	services *service.Services
	tokens   *auth.JWTManager
	metrics  *metrics.Recorder
	logger   *slog.Logger
}

// New creates a server. A nil recorder disables /metrics and RPC metrics.
func New(cfg Config, st *store.Store, services *service.Services, tokens *auth.JWTManager, recorder *metrics.Recorder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	return &Server{
		cfg:      cfg,
		store:    st,
		services: services,
		tokens:   tokens,
		metrics:  recorder,
		logger:   logger,
	}
}

// Handler returns the complete HTTP handler, wrapped with h2c for HTTP/2
// without TLS (required for Connect streaming clients).
func (s *Server) Handler() http.Handler {
	return h2c.NewHandler(s.routes(), &http2.Server{})
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders:   []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.healthHandler)
	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", s.snapshotHandler)
		r.Get("/pages", s.pageHandler)
		r.Get("/pages/{page}", s.pageHandler)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	for _, route := range s.services.Routes(connect.WithInterceptors(s.interceptors()...)) {
		r.Handle(route.Path+"*", route.Handler)
	}
	return r
}

func (s *Server) interceptors() []connect.Interceptor {
	interceptors := []connect.Interceptor{
		middleware.OptionalAuth(s.tokens),
		middleware.LoggingInterceptor(s.logger),
	}
	if s.metrics != nil {
		interceptors = append(interceptors, middleware.MetricsInterceptor(s.metrics))
	}
	return interceptors
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Connect server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	s.logger.Info("Server exiting")
	return nil
}

// requestLogger logs every HTTP request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimiddleware.GetReqID(r.Context()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
