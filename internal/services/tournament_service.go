// internal/services/tournament_service.go
// Tournament, team and venue business logic

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/utils"
)

// TournamentService handles tournament-related business logic
type TournamentService struct {
	repos  *repositories.Container
	cache  *CacheService
	logger *log.Logger
}

// NewTournamentService creates a new tournament service
func NewTournamentService(repos *repositories.Container, cache *CacheService, logger *log.Logger) *TournamentService {
	return &TournamentService{
		repos:  repos,
		cache:  cache,
		logger: logger,
	}
}

// CreateTournamentRequest represents the data needed to create a tournament
type CreateTournamentRequest struct {
	Name               string                  `json:"name" binding:"required,min=3,max=255"`
	Description        *string                 `json:"description" binding:"omitempty,max=1000"`
	Format             models.TournamentFormat `json:"format" binding:"required"`
	StartDate          time.Time               `json:"start_date" binding:"required"`
	EndDate            time.Time               `json:"end_date" binding:"required,gtfield=StartDate"`
	MatchDurationHours int                     `json:"match_duration_hours" binding:"required,min=1,max=12"`
	MinRestHours       int                     `json:"min_rest_hours" binding:"min=0,max=168"`
	SlotsPerDay        int                     `json:"slots_per_day" binding:"required,min=1,max=10"`
}

// CreateTeamRequest represents team registration data
type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Code        string  `json:"code" binding:"required,min=2,max=10"`
	LogoURL     *string `json:"logo_url"`
	HomeVenueID *string `json:"home_venue_id"`
}

// CreateVenueRequest represents venue creation data
type CreateVenueRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=255"`
	City      string   `json:"city" binding:"required,min=2,max=100"`
	Capacity  *int     `json:"capacity"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

// Create creates a new tournament in draft status
func (s *TournamentService) Create(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	if !req.Format.Valid() {
		return nil, ErrInvalidFormat
	}

	now := time.Now()
	tournament := &models.Tournament{
		ID:                 utils.NewID(),
		Name:               req.Name,
		Description:        req.Description,
		Format:             req.Format,
		Status:             models.TournamentDraft,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		MatchDurationHours: req.MatchDurationHours,
		MinRestHours:       req.MinRestHours,
		SlotsPerDay:        req.SlotsPerDay,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repos.Tournament.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	return tournament, nil
}

// GetByID retrieves a tournament by ID
func (s *TournamentService) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	cacheKey := fmt.Sprintf("tournament_%s", id)
	var tournament models.Tournament
	if err := s.cache.Get(cacheKey, &tournament); err == nil {
		return &tournament, nil
	}

	t, err := s.repos.Tournament.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, t, 5*time.Minute)
	return t, nil
}

// List retrieves tournaments with pagination
func (s *TournamentService) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repos.Tournament.List(ctx, limit, offset)
}

// Update updates tournament configuration and clears its cache entry
func (s *TournamentService) Update(ctx context.Context, t *models.Tournament) error {
	if err := s.repos.Tournament.Update(ctx, t); err != nil {
		return err
	}

	s.cache.Delete(fmt.Sprintf("tournament_%s", t.ID))
	return nil
}

// Delete removes a tournament and everything that hangs off it
func (s *TournamentService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Tournament.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(fmt.Sprintf("tournament_%s", id))
	s.cache.Delete(scheduleCacheKey(id))
	return nil
}

// AddTeam registers a team in a tournament, enforcing short code uniqueness
func (s *TournamentService) AddTeam(ctx context.Context, tournamentID string, req CreateTeamRequest) (*models.Team, error) {
	if _, err := s.repos.Tournament.GetByID(ctx, tournamentID); err != nil {
		return nil, err
	}

	taken, err := s.repos.Team.CodeExists(ctx, tournamentID, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check team code: %w", err)
	}
	if taken {
		return nil, ErrDuplicateTeamCode
	}

	team := &models.Team{
		ID:           utils.NewID(),
		TournamentID: tournamentID,
		Name:         req.Name,
		Code:         req.Code,
		LogoURL:      req.LogoURL,
		HomeVenueID:  req.HomeVenueID,
		CreatedAt:    time.Now(),
	}

	if err := s.repos.Team.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// Teams lists the tournament's teams in registration order
func (s *TournamentService) Teams(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	return s.repos.Team.GetByTournamentID(ctx, tournamentID)
}

// RemoveTeam deletes a team from a tournament
func (s *TournamentService) RemoveTeam(ctx context.Context, teamID string) error {
	return s.repos.Team.Delete(ctx, teamID)
}

// AddVenue creates a venue for a tournament
func (s *TournamentService) AddVenue(ctx context.Context, tournamentID string, req CreateVenueRequest) (*models.Venue, error) {
	if _, err := s.repos.Tournament.GetByID(ctx, tournamentID); err != nil {
		return nil, err
	}

	venue := &models.Venue{
		ID:           utils.NewID(),
		TournamentID: tournamentID,
		Name:         req.Name,
		City:         req.City,
		Capacity:     req.Capacity,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Address:      req.Address,
		CreatedAt:    time.Now(),
	}

	if err := s.repos.Venue.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return venue, nil
}

// Venues lists the tournament's venues
func (s *TournamentService) Venues(ctx context.Context, tournamentID string) ([]*models.Venue, error) {
	return s.repos.Venue.GetByTournamentID(ctx, tournamentID)
}

// RemoveVenue deletes a venue from a tournament
func (s *TournamentService) RemoveVenue(ctx context.Context, venueID string) error {
	return s.repos.Venue.Delete(ctx, venueID)
}
