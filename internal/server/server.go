// Package server exposes the calculator and province data over a JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rotisserie/eris"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/valuin/domikado/internal/store"
	"github.com/valuin/domikado/pkg/allocation"
)

const shutdownTimeout = 30 * time.Second

// Options configures the HTTP listener.
type Options struct {
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Server is the API server over a province store.
type Server struct {
	store  store.Store
	policy allocation.Policy
	opts   Options
}

// New creates a server reading provinces from st and scoring them with policy.
func New(st store.Store, policy allocation.Policy, opts Options) *Server {
	return &Server{
		store:  st,
		policy: policy,
		opts:   opts,
	}
}

// Handler returns the routed, CORS-enabled handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/indicators", s.handleIndicators).Methods(http.MethodGet)
	api.HandleFunc("/provinces", s.handleProvinces).Methods(http.MethodGet)
	api.HandleFunc("/provinces/{key}", s.handleProvince).Methods(http.MethodGet)
	api.HandleFunc("/provinces/{key}/calculation", s.handleCalculation).Methods(http.MethodGet)
	api.HandleFunc("/provinces/{key}/requirements", s.handleRequirements).Methods(http.MethodGet)
	api.HandleFunc("/provinces/{key}/validation", s.handleValidation).Methods(http.MethodGet)
	api.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodPost)
	api.HandleFunc("/timeline/intensity/{quarter}", s.handleIntensity).Methods(http.MethodGet)
	api.HandleFunc("/timeline/{month}", s.handleTimeline).Methods(http.MethodGet)

	// Router-level fallbacks bypass r.Use, so they get the chain explicitly.
	chain := func(h http.HandlerFunc) http.Handler {
		return requestIDMiddleware(loggingMiddleware(recoveryMiddleware(h)))
	}
	r.NotFoundHandler = chain(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = chain(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Length", "Content-Type", requestIDHeader},
		MaxAge:         86400,
	})
	return c.Handler(r)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
		IdleTimeout:       s.opts.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.opts.Addr).Msg("domikado server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return eris.Wrap(err, "http server")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "graceful shutdown")
	}
	log.Info().Msg("server stopped")
	return nil
}
