package server

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/metrics"
	"github.com/Conte777/NewsFlow/services/announcement-service/pkg/httputil"
)

// Server represents fasthttp server
type Server struct {
	server  *fasthttp.Server
	Router  *router.Router
	addr    string
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewServer creates a new fasthttp server listening on port
func NewServer(name, port string, m *metrics.Metrics, logger zerolog.Logger) *Server {
	r := router.New()
	r.SaveMatchedRoutePath = true

	s := &Server{
		Router:  r,
		addr:    fmt.Sprintf(":%s", port),
		metrics: m,
		logger:  logger.With().Str("component", "http").Logger(),
	}

	s.server = &fasthttp.Server{
		Handler:      httputil.Chain(r.Handler, httputil.RequestIDMiddleware, s.accessLog),
		Name:         name,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the wrapped root handler
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.server.Handler
}

// RegisterMetrics registers Prometheus metrics endpoint
func (s *Server) RegisterMetrics() {
	s.Router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
}

// Start starts the HTTP server in a separate goroutine
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.addr).
		Msg("Starting HTTP server")

	go func() {
		if err := s.server.ListenAndServe(s.addr); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")

	if err := s.server.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped gracefully")
	return nil
}

func (s *Server) accessLog(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		elapsed := time.Since(start)

		route, _ := ctx.UserValue(router.MatchedRoutePathParam).(string)
		if route == "" {
			route = "unmatched"
		}
		status := ctx.Response.StatusCode()

		s.metrics.ObserveHTTPRequest(string(ctx.Method()), route, status, elapsed)

		event := s.logger.Debug()
		if status >= fasthttp.StatusInternalServerError {
			event = s.logger.Warn()
		}
		event.
			Str("request_id", httputil.RequestID(ctx)).
			Bytes("method", ctx.Method()).
			Bytes("path", ctx.Path()).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("HTTP request handled")
	}
}
