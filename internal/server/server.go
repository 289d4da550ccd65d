// internal/server/server.go
// HTTP server setup with dependency injection

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/api"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/middleware"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/realtime"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	services *services.Container
	logger   *log.Logger
	server   *http.Server
}

// New creates a new server with all dependencies
func New(cfg *config.Config, db *database.Connections, logger *log.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := services.NewContainer(db, cfg, logger)
	router := setupRouter(cfg, db, serviceContainer, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		config:   cfg,
		router:   router,
		services: serviceContainer,
		logger:   logger,
		server:   srv,
	}
}

// setupRouter configures all routes and middleware
func setupRouter(cfg *config.Config, db *database.Connections, svc *services.Container, logger *log.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimiter(svc.Cache))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	if cfg.Features.MaintenanceMode {
		router.Use(middleware.MaintenanceMode())
	}

	router.GET("/health", api.HealthCheck(cfg, db))

	var hub *realtime.Hub
	if cfg.Features.EnableRealtime {
		hub = realtime.NewHub(logger)
		go hub.Run()
		router.GET("/ws", realtime.HandleConnection(hub))
	}

	v1 := router.Group("/api/v1")
	{
		api.RegisterAuthRoutes(v1, svc)
		api.RegisterTournamentRoutes(v1, svc, hub)
	}

	return router
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
