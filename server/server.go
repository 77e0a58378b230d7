// Package server exposes the P&L calculator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"pnl/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Config controls the HTTP server.
type Config struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	// RateLimit is requests per second across all clients; 0 disables it.
	RateLimit    float64
	MaxBodyBytes int64
	// Defaults for products that omit their rates.
	ReferralRate float64
	AdsRate      float64
}

// DefaultConfig returns the settings used by the -serve flag.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxBodyBytes:    1 << 20, // 1MB
		ReferralRate:    types.DefaultReferralRate,
		AdsRate:         types.DefaultAdsRate,
	}
}

// Server wires the calculator handlers into a chi router.
type Server struct {
	cfg    Config
	logger zerolog.Logger
	router chi.Router
}

// New builds the router and its middleware stack.
func New(cfg Config, logger zerolog.Logger) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultConfig().MaxBodyBytes
	}

	s := &Server{cfg: cfg, logger: logger}
	h := &handler{
		maxBody:      cfg.MaxBodyBytes,
		referralRate: cfg.ReferralRate,
		adsRate:      cfg.AdsRate,
		logger:       logger,
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.RateLimit > 0 && !math.IsInf(cfg.RateLimit, 0) {
		burst := int(math.Max(1, math.Ceil(cfg.RateLimit)))
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst), logger))
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/samples", h.Samples)
		r.Post("/metrics", h.Metrics)
		r.Post("/portfolio", h.Portfolio)
	})

	s.router = r
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("calculator API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("server exited")
	return nil
}
