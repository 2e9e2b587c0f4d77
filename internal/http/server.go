// Package http provides HTTP server implementation and routing.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	oprfHTTP "github.com/allisson/maskd/internal/oprf/http"
)

// Server represents the HTTP server for the masking protocol API.
type Server struct {
	server          *http.Server
	router          *gin.Engine
	logger          *slog.Logger
	evaluateHandler *oprfHTTP.EvaluateHandler
	corsEnabled     bool
	corsOrigins     string
	metricsHandler  gin.HandlerFunc
}

// ServerOption configures optional server behavior.
type ServerOption func(*Server)

// WithCORS enables CORS with the given comma-separated allowed origins.
func WithCORS(enabled bool, allowOrigins string) ServerOption {
	return func(s *Server) {
		s.corsEnabled = enabled
		s.corsOrigins = allowOrigins
	}
}

// WithHTTPMetrics installs a metrics middleware on the router.
func WithHTTPMetrics(middleware gin.HandlerFunc) ServerOption {
	return func(s *Server) {
		s.metricsHandler = middleware
	}
}

// NewServer creates a new HTTP server.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	evaluateHandler *oprfHTTP.EvaluateHandler,
	opts ...ServerOption,
) *Server {
	s := &Server{
		logger:          logger,
		evaluateHandler: evaluateHandler,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetupRouter builds the Gin router with middleware and routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.corsEnabled, s.corsOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsHandler != nil {
		router.Use(s.metricsHandler)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Masking protocol endpoint
	if s.evaluateHandler != nil {
		v1 := router.Group("/v1")
		v1.POST("/oprf/evaluate", s.evaluateHandler.EvaluateHandler)
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the service can evaluate requests.
// The service is stateless, so readiness only requires a configured handler.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.evaluateHandler == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"oracle": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"oracle": "ok"},
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
