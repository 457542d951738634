// Package api provides the DailyBread REST and WebSocket server.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
	"github.com/FocuswithJustin/DailyBread/internal/metrics"
	"github.com/FocuswithJustin/DailyBread/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may finish on shutdown.
const shutdownTimeout = 10 * time.Second

// Server serves passage lookups over HTTP.
type Server struct {
	bible    *bible.Bible
	metrics  *metrics.Metrics
	cfg      Config
	hub      *Hub
	upgrader *websocket.Upgrader
	limiter  *RateLimiter
	handler  http.Handler
	started  time.Time
}

// New returns a server for b. m may be nil, in which case /metrics is not
// served.
func New(b *bible.Bible, m *metrics.Metrics, cfg Config) (*Server, error) {
	if err := ValidateAuthConfig(cfg.Auth); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if (cfg.TLS.CertFile == "") != (cfg.TLS.KeyFile == "") {
		return nil, fmt.Errorf("TLS needs both a cert file and a key file")
	}
	if cfg.WebSocket.MaxMessageSize <= 0 {
		cfg.WebSocket.MaxMessageSize = DefaultWebSocketSecurityConfig().MaxMessageSize
	}
	if len(cfg.WebSocket.AllowedOrigins) == 0 {
		cfg.WebSocket.AllowedOrigins = cfg.AllowedOrigins
	}

	s := &Server{
		bible:    b,
		metrics:  m,
		cfg:      cfg,
		hub:      NewHub(),
		upgrader: newUpgrader(cfg.WebSocket),
		started:  time.Now(),
	}
	s.handler = s.buildHandler()
	return s, nil
}

// Handler returns the root handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.Handle("/health", s.get("/health", s.handleHealth))
	mux.Handle("/passages", s.get("/passages", s.handlePassages))
	mux.Handle("/passage", s.get("/passage", s.handlePassage))
	mux.Handle("/books/", s.get("/books", s.handleBook))
	mux.Handle("/versions", s.get("/versions", s.handleVersions))
	mux.Handle("/votd", s.get("/votd", s.handleVotd))
	mux.HandleFunc("/ws", s.handleWebSocket)
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	return mux
}

// get restricts h to GET and HEAD and counts its responses by route.
func (s *Server) get(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			rec.Header().Set("Allow", "GET, HEAD")
			respondError(rec, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Only GET is allowed")
		} else {
			h(rec, r)
		}
		if s.metrics != nil {
			s.metrics.HTTPRequest(route, rec.status)
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) buildHandler() http.Handler {
	var handler http.Handler = server.SecurityHeaders(server.APICSPConfig(), s.routes())

	if s.cfg.Auth.Enabled {
		handler = AuthMiddleware(s.cfg.Auth, handler)
		logging.SecurityEvent("authentication_configured", "api",
			"enabled", true,
			"note", "API key required")
	}

	if s.cfg.RateLimitRequests > 0 {
		s.limiter = NewRateLimiter(RateLimiterConfig{
			RequestsPerMinute: s.cfg.RateLimitRequests,
			BurstSize:         s.cfg.RateLimitBurst,
		})
		handler = s.limiter.Middleware(handler)
		logging.Info("rate limiting enabled",
			"requests_per_minute", s.cfg.RateLimitRequests,
			"burst_size", s.limiter.config.BurstSize)
	}

	handler = server.CORSMiddleware(server.CORSConfig{AllowedOrigins: s.cfg.AllowedOrigins}, handler)
	if len(s.cfg.AllowedOrigins) == 0 {
		logging.SecurityEvent("cors_configured", "api",
			"mode", "permissive",
			"note", "allowing all origins (*)")
	}

	return logging.CombinedMiddleware(handler)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logging.GetLogger().Handler(), slog.LevelError),
	}

	protocol := "http"
	if s.cfg.TLS.Enabled() {
		protocol = "https"
	}
	logging.ServerStartup("rest_api", protocol, s.cfg.Port,
		"bible_version", s.bible.Version().Abbreviation)

	errc := make(chan error, 1)
	go func() {
		if s.cfg.TLS.Enabled() {
			errc <- srv.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		s.Close()
		return err
	case <-ctx.Done():
	}

	logging.InfoContext(ctx, "server shutting down", "cause", context.Cause(ctx))
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close disconnects WebSocket clients and stops background work.
func (s *Server) Close() {
	s.hub.Close()
	if s.limiter != nil {
		s.limiter.Close()
	}
}
