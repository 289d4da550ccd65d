// internal/services/container.go
// Service container provides dependency injection for business logic services.

package services

import (
	"errors"
	"log"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth       *AuthService
	Tournament *TournamentService
	Schedule   *ScheduleService
	Cache      *CacheService
	Analytics  *AnalyticsService
}

// NewContainer creates a new service container with all dependencies
func NewContainer(db *database.Connections, cfg *config.Config, logger *log.Logger) *Container {
	repos := repositories.NewContainer(db)

	cache := NewCacheService(db.Redis, logger)
	analytics := NewAnalyticsService(db.MongoDB, logger)

	auth := NewAuthService(repos.User, cfg.Auth, cache, logger)
	tournament := NewTournamentService(repos, cache, logger)
	schedule := NewScheduleService(repos, cache, analytics, logger, cfg.Scheduler)

	return &Container{
		Auth:       auth,
		Tournament: tournament,
		Schedule:   schedule,
		Cache:      cache,
		Analytics:  analytics,
	}
}

// Common errors used across services
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDuplicateTeamCode  = errors.New("team code already used in this tournament")
	ErrInvalidFormat      = errors.New("invalid tournament format")
)
