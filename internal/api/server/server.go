package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/analytics"
	"github.com/finara-labs/finara-backend/internal/api/middleware"
	"github.com/finara-labs/finara-backend/internal/api/rest"
	"github.com/finara-labs/finara-backend/internal/api/shared/executor"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/ratelimit"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/tokenization"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Deps holds the services the API is built on
type Deps struct {
	Store     store.Store
	Relayer   relayer.Relayer
	Publisher messaging.Publisher
	// Limiter is optional; without it the API is not rate limited
	Limiter ratelimit.Limiter
	Clock   adapter.Clock
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	deps       Deps
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, deps Deps) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())

	workflow := tokenization.NewWorkflow(s.deps.Store, s.deps.Relayer, s.deps.Publisher, s.deps.Clock)
	aggregator := analytics.NewAggregator(s.deps.Store, s.deps.Relayer)
	exec := executor.NewExecutor(s.deps.Store, s.deps.Relayer, workflow, aggregator, s.deps.Publisher, s.deps.Clock)

	var apiMiddleware []gin.HandlerFunc
	if s.deps.Limiter != nil {
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(s.deps.Limiter))
	}

	rest.SetupRoutes(router, rest.NewHandler(exec, s.deps.Clock), s.config.Auth, apiMiddleware...)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
		zap.Bool("relayerConfigured", s.deps.Relayer.Configured()),
		zap.Bool("authEnabled", s.config.Auth.Enabled()),
		zap.Bool("rateLimited", s.deps.Limiter != nil),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
