// Package api exposes the matching engine over HTTP. The surface is
// deliberately thin: every query carries its own candidate list, and the
// server keeps no state between requests.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookkept/matchd/internal/api/handlers"
	"github.com/bookkept/matchd/internal/api/middleware"
	"github.com/bookkept/matchd/internal/domain/matcher"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	engine     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
	matcher    *matcher.Matcher
}

// NewServer creates a new API server around the given matcher.
func NewServer(cfg Config, m *matcher.Matcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		config:  cfg,
		engine:  engine,
		logger:  logger,
		matcher: m,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logging(s.logger))

	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:  s.config.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Check)

	matchHandler := handlers.NewMatchHandler(s.matcher, s.logger)
	api := s.engine.Group("/api")
	{
		api.POST("/match/attachment", matchHandler.FindAttachment)
		api.POST("/match/transaction", matchHandler.FindTransaction)
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the underlying handler for testing.
func (s *Server) Router() http.Handler {
	return s.engine
}
