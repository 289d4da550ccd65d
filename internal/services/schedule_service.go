// internal/services/schedule_service.go
// Orchestrates scheduling runs: adapts the repositories onto the engine's
// store contract, invalidates caches and records run analytics.

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/config"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/scheduler"
)

// ScheduleService drives schedule generation and reads
type ScheduleService struct {
	repos     *repositories.Container
	cache     *CacheService
	analytics *AnalyticsService
	logger    *log.Logger
	cfg       config.SchedulerConfig
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	repos *repositories.Container,
	cache *CacheService,
	analytics *AnalyticsService,
	logger *log.Logger,
	cfg config.SchedulerConfig,
) *ScheduleService {
	return &ScheduleService{
		repos:     repos,
		cache:     cache,
		analytics: analytics,
		logger:    logger,
		cfg:       cfg,
	}
}

// Generate runs a full scheduling pass for the tournament. On success the
// cached schedule is invalidated, the tournament is marked scheduled and a
// run event is recorded.
func (s *ScheduleService) Generate(ctx context.Context, tournamentID string, opts *scheduler.Options) (*scheduler.Result, error) {
	engine := scheduler.New(&repoStore{repos: s.repos}, s.logger, s.cfg.SolveBudget)

	started := time.Now()
	result, err := engine.Generate(ctx, tournamentID, opts)

	event := map[string]interface{}{
		"tournament_id": tournamentID,
		"duration_ms":   time.Since(started).Milliseconds(),
	}
	if result != nil {
		event["success"] = result.Success
		event["matches_scheduled"] = result.MatchesScheduled
		event["status"] = result.Status
	}
	if err != nil {
		event["error"] = err.Error()
	}
	s.analytics.LogEvent(ctx, "schedule_generated", event)

	if result != nil && result.Success {
		s.cache.Delete(scheduleCacheKey(tournamentID))
		if uerr := s.repos.Tournament.UpdateStatus(ctx, tournamentID, models.TournamentScheduled); uerr != nil {
			s.logger.Printf("failed to update tournament %s status: %v", tournamentID, uerr)
		}
	}

	return result, err
}

// Matches returns the tournament's matches ordered by start time, served
// from cache when possible.
func (s *ScheduleService) Matches(ctx context.Context, tournamentID string) ([]*models.Match, error) {
	cacheKey := scheduleCacheKey(tournamentID)

	var cached []*models.Match
	if err := s.cache.Get(cacheKey, &cached); err == nil {
		return cached, nil
	}

	matches, err := s.repos.Match.GetByTournamentID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, matches, s.cfg.ScheduleCacheTTL); err != nil {
		s.logger.Printf("failed to cache schedule for tournament %s: %v", tournamentID, err)
	}

	return matches, nil
}

// Clear removes the tournament's scheduled matches, leaving played ones
// alone, and reports how many rows were deleted.
func (s *ScheduleService) Clear(ctx context.Context, tournamentID string) (int64, error) {
	deleted, err := s.repos.Match.DeleteScheduled(ctx, tournamentID)
	if err != nil {
		return 0, err
	}

	s.cache.Delete(scheduleCacheKey(tournamentID))
	return deleted, nil
}

func scheduleCacheKey(tournamentID string) string {
	return fmt.Sprintf("tournament_schedule_%s", tournamentID)
}

// repoStore adapts the repository container onto the scheduling engine's
// store contract.
type repoStore struct {
	repos *repositories.Container
}

func (r *repoStore) LoadTournament(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := r.repos.Tournament.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, scheduler.ErrTournamentNotFound
	}
	return t, err
}

func (r *repoStore) LoadTeams(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	return r.repos.Team.GetByTournamentID(ctx, tournamentID)
}

func (r *repoStore) LoadVenues(ctx context.Context, tournamentID string) ([]*models.Venue, error) {
	return r.repos.Venue.GetByTournamentID(ctx, tournamentID)
}

func (r *repoStore) ReplaceMatches(ctx context.Context, tournamentID string, matches []*models.Match) error {
	return r.repos.Match.ReplaceScheduled(ctx, tournamentID, matches)
}
