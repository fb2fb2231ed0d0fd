package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ecomeal/backend/config"
	"github.com/ecomeal/backend/internal/api"
	"github.com/ecomeal/backend/internal/middleware"
	"github.com/ecomeal/backend/internal/service"
	"github.com/ecomeal/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// NewServer creates a new server instance with all routes registered
func NewServer(cfg *config.Config, llm service.LLMServiceInterface, st store.Store, logger zerolog.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api.RegisterRoutes(router, llm, st, logger)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
