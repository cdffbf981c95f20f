package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apihttp "github.com/fsgateway/fsgateway/internal/api/http"
	"github.com/fsgateway/fsgateway/internal/api/middleware"
	"github.com/fsgateway/fsgateway/internal/config"
	"github.com/fsgateway/fsgateway/internal/logging"
	"github.com/fsgateway/fsgateway/internal/monitoring"
	"github.com/fsgateway/fsgateway/internal/providers/gateway"
	"github.com/fsgateway/fsgateway/internal/providers/system"
	"github.com/fsgateway/fsgateway/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	srv      *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	metrics := monitoring.NewMetrics()
	registry := service.NewRegistry()

	registerProviders(registry, cfg, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	handlers := apihttp.NewHandlers(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run(addr string) error {
	s.logger.Info("starting gateway", logging.String("addr", addr))

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Registry exposes the service registry, mainly for tests
func (s *Server) Registry() *service.Registry {
	return s.registry
}

func registerProviders(registry *service.Registry, cfg *config.Config, logger *logging.Logger) {
	ops := gateway.NewOps(cfg.Gateway.Roots, cfg.Gateway.Extensions, cfg.Gateway.IgnorePatterns)
	if err := registry.Register(gateway.NewProvider(ops)); err != nil {
		logger.Warn("failed to register gateway provider", logging.Err(err))
	}

	if err := registry.Register(system.NewProvider()); err != nil {
		logger.Warn("failed to register system provider", logging.Err(err))
	}

	stats := registry.Stats()
	logger.Info("service providers registered",
		logging.Int("services", stats["total_services"].(int)),
		logging.Int("tools", stats["total_tools"].(int)),
	)
}
