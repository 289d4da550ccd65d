// internal/scheduler/scheduler.go
// Constraint programming scheduler for cricket tournaments.
//
// A run loads the tournament configuration through the Store, derives the
// slot grid and match pairs, pre-checks feasibility, builds the constraint
// model, solves it under a wall-clock budget, independently re-validates the
// extracted schedule, and atomically replaces the tournament's scheduled
// matches. Runs are single-threaded, stateless between calls, and never
// leave partial schedules behind.

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/utils"
)

// DefaultSolveBudget is the wall-clock deadline handed to the solver.
const DefaultSolveBudget = 30 * time.Second

// Options carries per-run overrides. All fields are reserved for future
// objectives: they are validated and accepted but do not alter the
// constraints or the slot grid yet.
type Options struct {
	OptimizeFor        string `json:"optimize_for,omitempty"`
	AllowBackToBack    bool   `json:"allow_back_to_back,omitempty"`
	PreferredStartHour *int   `json:"preferred_start_hour,omitempty"`
}

func (o *Options) validate() error {
	switch o.OptimizeFor {
	case "", "balanced", "minimize_travel", "fairness":
	default:
		return &ConfigError{Reason: fmt.Sprintf("unknown optimize_for value %q", o.OptimizeFor)}
	}
	if o.PreferredStartHour != nil && (*o.PreferredStartHour < 0 || *o.PreferredStartHour > 23) {
		return &ConfigError{Reason: "preferred_start_hour must be between 0 and 23"}
	}
	return nil
}

// Result is the structured outcome of a scheduling run.
type Result struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message"`
	MatchesScheduled int              `json:"matches_scheduled"`
	Status           string           `json:"status,omitempty"` // "optimal" or "feasible"
	Conflicts        []string         `json:"conflicts,omitempty"`
	Schedule         []ScheduledMatch `json:"schedule,omitempty"`
}

// Scheduler generates conflict-free tournament schedules.
type Scheduler struct {
	store  Store
	logger *log.Logger
	budget time.Duration
}

// New creates a scheduler over the given store. A non-positive budget
// falls back to DefaultSolveBudget.
func New(store Store, logger *log.Logger, budget time.Duration) *Scheduler {
	if budget <= 0 {
		budget = DefaultSolveBudget
	}
	return &Scheduler{store: store, logger: logger, budget: budget}
}

// runPhase tracks the monotonic progress of a single run; there is no retry
// loop inside the engine.
type runPhase int

const (
	phaseInit runPhase = iota
	phaseReady
	phaseModeled
	phaseSolved
	phasePersisted
)

// run holds everything derived for one scheduling pass.
type run struct {
	phase      runPhase
	tournament *models.Tournament
	teams      []*models.Team
	venues     []*models.Venue
	slots      []time.Time
	pairs      []pair
}

// Generate runs a full scheduling pass for the tournament and commits the
// result. Failures come back both ways: the typed error identifies the kind
// (ConfigError, InfeasibilityError, SolverTimeoutError, SolverInternalError,
// StoreError) and the Result carries the caller-facing message and issue
// list. A nil error means the schedule was validated and persisted.
func (s *Scheduler) Generate(ctx context.Context, tournamentID string, opts *Options) (*Result, error) {
	if opts != nil {
		if err := opts.validate(); err != nil {
			return failure("invalid scheduling options", err), err
		}
	}

	r := &run{phase: phaseInit}
	if err := s.load(ctx, r, tournamentID); err != nil {
		return failure("schedule generation failed", err), err
	}
	r.phase = phaseReady

	s.logger.Printf("scheduler ready: %d teams, %d venues, %d slots, %d matches (%s)",
		len(r.teams), len(r.venues), len(r.slots), len(r.pairs), r.tournament.Format)

	ok, issues := checkFeasibility(r.tournament, r.pairs, len(r.teams), len(r.slots), len(r.venues))
	if !ok {
		err := &InfeasibilityError{
			Reason:      "schedule not feasible with current constraints",
			Suggestions: issues,
		}
		return &Result{
			Success:   false,
			Message:   err.Reason,
			Conflicts: issues,
		}, err
	}
	for _, issue := range issues {
		s.logger.Printf("feasibility: %s", issue)
	}

	model, err := buildModel(r.tournament, r.pairs, len(r.slots), len(r.venues))
	if err != nil {
		serr := &SolverInternalError{Reason: err.Error()}
		return failure("schedule generation failed", serr), serr
	}
	r.phase = phaseModeled

	s.logger.Printf("solving placement model: %d boolean variables, budget %s",
		model.numMatches*model.options(), s.budget)
	solveStart := time.Now()
	status, assign := solve(model, s.budget)
	s.logger.Printf("solver finished in %s with status %s", time.Since(solveStart).Round(time.Millisecond), status)

	switch status {
	case statusOptimal, statusFeasible:
		r.phase = phaseSolved

	case statusInfeasible:
		err := &InfeasibilityError{
			Reason: "schedule is mathematically impossible with current constraints",
			Suggestions: []string{
				"suggestion: extend the tournament by 1-2 days",
				"suggestion: add more venues to allow parallel matches",
				fmt.Sprintf("suggestion: reduce the rest period from %dh to %dh",
					r.tournament.MinRestHours, r.tournament.MatchDurationHours*2),
				"suggestion: reduce the number of matches by changing the format",
			},
		}
		return &Result{Success: false, Message: err.Reason, Conflicts: err.Suggestions}, err

	case statusModelInvalid:
		err := &SolverInternalError{Reason: "placement model rejected by the solver"}
		return failure("schedule generation failed", err), err

	default:
		err := &SolverTimeoutError{Budget: s.budget}
		return &Result{
			Success:   false,
			Message:   err.Error(),
			Conflicts: []string{"no feasible schedule found within the solver budget"},
		}, err
	}

	schedule := extractSchedule(model, assign, r.slots, r.teams, r.venues, r.tournament.MatchDurationHours)

	if conflicts := verifySchedule(schedule, r.tournament.MinRestHours); len(conflicts) > 0 {
		s.logger.Printf("solution validation failed with %d conflicts", len(conflicts))
		err := &SolverInternalError{
			Reason:    "generated schedule has conflicts",
			Conflicts: conflicts,
		}
		return &Result{Success: false, Message: err.Reason, Conflicts: conflicts}, err
	}

	if err := s.store.ReplaceMatches(ctx, tournamentID, matchRows(tournamentID, schedule)); err != nil {
		serr := &StoreError{Op: "replace matches", Err: err}
		return failure("failed to persist the generated schedule", serr), serr
	}
	r.phase = phasePersisted

	s.logger.Printf("schedule validated and persisted: %d matches, zero conflicts", len(schedule))

	return &Result{
		Success:          true,
		Message:          "schedule generated successfully with zero conflicts",
		MatchesScheduled: len(schedule),
		Status:           resultStatus(status),
		Schedule:         schedule,
	}, nil
}

// load pulls the tournament configuration and derives the slot grid and
// match pairs, rejecting degenerate configuration up front.
func (s *Scheduler) load(ctx context.Context, r *run, tournamentID string) error {
	t, err := s.store.LoadTournament(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, ErrTournamentNotFound) {
			return err
		}
		return &StoreError{Op: "load tournament", Err: err}
	}

	if t.MatchDurationHours < 1 || t.MatchDurationHours > 12 {
		return &ConfigError{Reason: "match duration must be between 1 and 12 hours"}
	}
	if t.MinRestHours < 0 || t.MinRestHours > 168 {
		return &ConfigError{Reason: "minimum rest must be between 0 and 168 hours"}
	}
	if t.SlotsPerDay < 1 || t.SlotsPerDay > 10 {
		return &ConfigError{Reason: "slots per day must be between 1 and 10"}
	}
	if t.EndDate.Before(t.StartDate) {
		return &ConfigError{Reason: "tournament end date precedes its start date"}
	}

	teams, err := s.store.LoadTeams(ctx, tournamentID)
	if err != nil {
		return &StoreError{Op: "load teams", Err: err}
	}
	if len(teams) < 2 {
		return &ConfigError{Reason: "at least 2 teams are required for scheduling"}
	}

	venues, err := s.store.LoadVenues(ctx, tournamentID)
	if err != nil {
		return &StoreError{Op: "load venues", Err: err}
	}
	if len(venues) < 1 {
		return &ConfigError{Reason: "at least 1 venue is required for scheduling"}
	}

	pairs, err := matchPairs(t.Format, len(teams))
	if err != nil {
		return err
	}

	r.tournament = t
	r.teams = teams
	r.venues = venues
	r.slots = slotGrid(t.StartDate, t.EndDate, t.SlotsPerDay)
	r.pairs = pairs
	return nil
}

// matchRows converts the extracted schedule into persistable match rows.
func matchRows(tournamentID string, schedule []ScheduledMatch) []*models.Match {
	now := time.Now()
	rows := make([]*models.Match, 0, len(schedule))
	for i := range schedule {
		sm := schedule[i]
		rows = append(rows, &models.Match{
			ID:             utils.NewID(),
			TournamentID:   tournamentID,
			Team1ID:        sm.Team1ID,
			Team2ID:        sm.Team2ID,
			VenueID:        &sm.VenueID,
			ScheduledStart: &sm.ScheduledStart,
			ScheduledEnd:   &sm.ScheduledEnd,
			MatchNumber:    &sm.MatchNumber,
			Status:         models.MatchScheduled,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return rows
}

func resultStatus(s solveStatus) string {
	if s == statusOptimal {
		return "optimal"
	}
	return "feasible"
}

func failure(message string, err error) *Result {
	return &Result{
		Success:   false,
		Message:   message + ": " + err.Error(),
		Conflicts: []string{err.Error()},
	}
}
