package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// memStore is an in-memory Store with the same replace semantics as the SQL
// implementation: only scheduled rows are swapped out.
type memStore struct {
	tournament   *models.Tournament
	teams        []*models.Team
	venues       []*models.Venue
	matches      []*models.Match
	replaceCalls int
	replaceErr   error
}

func (s *memStore) LoadTournament(ctx context.Context, id string) (*models.Tournament, error) {
	if s.tournament == nil || s.tournament.ID != id {
		return nil, ErrTournamentNotFound
	}
	return s.tournament, nil
}

func (s *memStore) LoadTeams(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	return s.teams, nil
}

func (s *memStore) LoadVenues(ctx context.Context, tournamentID string) ([]*models.Venue, error) {
	return s.venues, nil
}

func (s *memStore) ReplaceMatches(ctx context.Context, tournamentID string, matches []*models.Match) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}

	kept := s.matches[:0]
	for _, m := range s.matches {
		if m.Status != models.MatchScheduled {
			kept = append(kept, m)
		}
	}
	s.matches = append(kept, matches...)
	s.replaceCalls++
	return nil
}

type storeConfig struct {
	teams       int
	venues      int
	format      models.TournamentFormat
	days        int
	duration    int
	rest        int
	slotsPerDay int
}

func newMemStore(cfg storeConfig) *memStore {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, cfg.days-1).Add(23 * time.Hour)

	now := time.Now()
	tournament := &models.Tournament{
		ID:                 "t1",
		Name:               "Premier Cup",
		Format:             cfg.format,
		Status:             models.TournamentDraft,
		StartDate:          start,
		EndDate:            end,
		MatchDurationHours: cfg.duration,
		MinRestHours:       cfg.rest,
		SlotsPerDay:        cfg.slotsPerDay,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	teams := make([]*models.Team, 0, cfg.teams)
	for i := 0; i < cfg.teams; i++ {
		teams = append(teams, &models.Team{
			ID:           fmt.Sprintf("team-%d", i),
			TournamentID: tournament.ID,
			Name:         fmt.Sprintf("Team %d", i),
			Code:         fmt.Sprintf("T%d", i),
			CreatedAt:    now,
		})
	}

	venues := make([]*models.Venue, 0, cfg.venues)
	for i := 0; i < cfg.venues; i++ {
		venues = append(venues, &models.Venue{
			ID:           fmt.Sprintf("venue-%d", i),
			TournamentID: tournament.ID,
			Name:         fmt.Sprintf("Venue %d", i),
			City:         "Test City",
			CreatedAt:    now,
		})
	}

	return &memStore{tournament: tournament, teams: teams, venues: venues}
}

func newTestScheduler(store Store) *Scheduler {
	return New(store, log.New(io.Discard, "", 0), 10*time.Second)
}

// assertScheduleValid checks the universal properties of a successful run:
// cardinality, pair coverage, venue and team exclusivity, rest gaps and
// dense match numbering.
func assertScheduleValid(t *testing.T, store *memStore, result *Result, wantMatches int) {
	t.Helper()

	require.True(t, result.Success, "message: %s, conflicts: %v", result.Message, result.Conflicts)
	assert.Equal(t, wantMatches, result.MatchesScheduled)
	require.Len(t, result.Schedule, wantMatches)
	assert.Contains(t, []string{"optimal", "feasible"}, result.Status)

	tournament := store.tournament

	t.Run("pair coverage", func(t *testing.T) {
		pairs, err := matchPairs(tournament.Format, len(store.teams))
		require.NoError(t, err)

		want := make(map[string]int)
		for _, p := range pairs {
			want[pairKey(store.teams[p.team1].ID, store.teams[p.team2].ID)]++
		}
		got := make(map[string]int)
		for _, m := range result.Schedule {
			got[pairKey(m.Team1ID, m.Team2ID)]++
		}
		assert.Equal(t, want, got)
	})

	t.Run("venue exclusivity", func(t *testing.T) {
		type cell struct {
			start time.Time
			venue string
		}
		seen := make(map[cell]bool)
		for _, m := range result.Schedule {
			c := cell{m.ScheduledStart, m.VenueID}
			assert.False(t, seen[c], "venue %s double-booked at %s", m.VenueName, m.ScheduledStart)
			seen[c] = true
		}
	})

	t.Run("team exclusivity", func(t *testing.T) {
		type appearance struct {
			start time.Time
			team  string
		}
		seen := make(map[appearance]bool)
		for _, m := range result.Schedule {
			for _, team := range []string{m.Team1ID, m.Team2ID} {
				a := appearance{m.ScheduledStart, team}
				assert.False(t, seen[a], "team %s plays twice at %s", team, m.ScheduledStart)
				seen[a] = true
			}
		}
	})

	t.Run("rest gaps", func(t *testing.T) {
		byTeam := make(map[string][]ScheduledMatch)
		for _, m := range result.Schedule {
			byTeam[m.Team1ID] = append(byTeam[m.Team1ID], m)
			byTeam[m.Team2ID] = append(byTeam[m.Team2ID], m)
		}
		for team, ms := range byTeam {
			for i := 0; i+1 < len(ms); i++ {
				gap := ms[i+1].ScheduledStart.Sub(ms[i].ScheduledEnd).Hours()
				assert.GreaterOrEqual(t, gap, float64(tournament.MinRestHours),
					"team %s rest between match %d and %d", team, ms[i].MatchNumber, ms[i+1].MatchNumber)
			}
		}
	})

	t.Run("ordering", func(t *testing.T) {
		for i, m := range result.Schedule {
			assert.Equal(t, i+1, m.MatchNumber)
			if i > 0 {
				prev := result.Schedule[i-1]
				assert.False(t, m.ScheduledStart.Before(prev.ScheduledStart))
				if m.ScheduledStart.Equal(prev.ScheduledStart) {
					assert.Greater(t, m.VenueIndex, prev.VenueIndex)
				}
			}
			assert.Equal(t, m.ScheduledStart.Add(time.Duration(tournament.MatchDurationHours)*time.Hour), m.ScheduledEnd)
		}
	})

	t.Run("persisted rows", func(t *testing.T) {
		require.Len(t, store.matches, wantMatches)
		for _, row := range store.matches {
			assert.Equal(t, models.MatchScheduled, row.Status)
			assert.NotNil(t, row.VenueID)
			assert.NotNil(t, row.ScheduledStart)
			assert.NotEqual(t, row.Team1ID, row.Team2ID)
		}
	})
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func TestGenerateFourTeamsTwoVenues(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 30, duration: 4, rest: 24, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	assertScheduleValid(t, store, result, 6)
}

func TestGenerateSixTeamsThreeVenues(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 6, venues: 3, format: models.FormatRoundRobin,
		days: 38, duration: 4, rest: 24, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	assertScheduleValid(t, store, result, 15)
}

func TestGenerateEightTeamsFourVenues(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 8, venues: 4, format: models.FormatRoundRobin,
		days: 25, duration: 4, rest: 24, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	assertScheduleValid(t, store, result, 28)
}

func TestGenerateDoubleRoundRobin(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 3, venues: 2, format: models.FormatDoubleRoundRobin,
		days: 40, duration: 4, rest: 24, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)

	require.True(t, result.Success, "conflicts: %v", result.Conflicts)
	assert.Equal(t, 6, result.MatchesScheduled) // 3*2 home-and-away fixtures
}

func TestGenerateKnockout(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatKnockout,
		days: 20, duration: 4, rest: 24, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	require.True(t, result.Success, "conflicts: %v", result.Conflicts)
	assert.Equal(t, 3, result.MatchesScheduled)
}

func TestGenerateSingleSlotSingleMatch(t *testing.T) {
	// Two teams, one venue, a one-day window with one slot per day: exactly
	// one fixture at 14:00 local.
	store := newMemStore(storeConfig{
		teams: 2, venues: 1, format: models.FormatRoundRobin,
		days: 1, duration: 4, rest: 24, slotsPerDay: 1,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	assertScheduleValid(t, store, result, 1)

	assert.Equal(t, 14, result.Schedule[0].ScheduledStart.Hour())
}

func TestGenerateCapacityShortfall(t *testing.T) {
	// Six matches into a single slot-venue cell must fail before the solver
	// runs, naming the shortfall.
	store := newMemStore(storeConfig{
		teams: 4, venues: 1, format: models.FormatRoundRobin,
		days: 1, duration: 4, rest: 24, slotsPerDay: 1,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.Error(t, err)

	var infeasible *InfeasibilityError
	require.ErrorAs(t, err, &infeasible)

	assert.False(t, result.Success)
	assert.Zero(t, result.MatchesScheduled)
	joined := strings.Join(result.Conflicts, "\n")
	assert.Contains(t, joined, "6 matches")
	assert.Contains(t, joined, "only 1 are available")
	assert.Empty(t, store.matches, "nothing may be persisted on failure")
}

func TestGenerateRestMakesWindowInfeasible(t *testing.T) {
	// A full week of rest inside a two-day window: the run fails with
	// actionable suggestions including reducing the rest period.
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 2, duration: 4, rest: 168, slotsPerDay: 3,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.Error(t, err)

	var infeasible *InfeasibilityError
	require.ErrorAs(t, err, &infeasible)

	assert.False(t, result.Success)
	joined := strings.Join(result.Conflicts, "\n")
	assert.Contains(t, joined, "reduce the rest period")
	assert.Empty(t, store.matches)
}

func TestGenerateZeroSlots(t *testing.T) {
	// End instant before the first slot hour of the day: no grid at all.
	store := newMemStore(storeConfig{
		teams: 2, venues: 1, format: models.FormatRoundRobin,
		days: 1, duration: 4, rest: 24, slotsPerDay: 1,
	})
	store.tournament.EndDate = store.tournament.StartDate.Add(9 * time.Hour)

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.Error(t, err)

	var infeasible *InfeasibilityError
	require.ErrorAs(t, err, &infeasible)
	assert.False(t, result.Success)
}

func TestGenerateSolverProvenInfeasible(t *testing.T) {
	// Three mutually conflicting matches in four slots pass the arithmetic
	// pre-check but are proven impossible by exhaustive search.
	store := newMemStore(storeConfig{
		teams: 3, venues: 1, format: models.FormatRoundRobin,
		days: 2, duration: 4, rest: 4, slotsPerDay: 2,
	})

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.Error(t, err)

	var infeasible *InfeasibilityError
	require.ErrorAs(t, err, &infeasible)

	assert.Contains(t, result.Message, "mathematically impossible")
	joined := strings.Join(result.Conflicts, "\n")
	assert.Contains(t, joined, "add more venues")
	assert.Empty(t, store.matches)
}

func TestGenerateReplacesInsteadOfAccumulating(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 30, duration: 4, rest: 24, slotsPerDay: 3,
	})

	engine := newTestScheduler(store)

	first, err := engine.Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	assertScheduleValid(t, store, first, 6)

	second, err := engine.Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	require.True(t, second.Success)

	assert.Equal(t, 2, store.replaceCalls)
	assert.Len(t, store.matches, 6, "rerunning must replace, not accumulate")
}

func TestGenerateReplaceLeavesPlayedMatchesAlone(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 30, duration: 4, rest: 24, slotsPerDay: 3,
	})

	completed := &models.Match{
		ID:           "finished-match",
		TournamentID: "t1",
		Team1ID:      "team-0",
		Team2ID:      "team-1",
		Status:       models.MatchCompleted,
	}
	store.matches = append(store.matches, completed)

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	require.Len(t, store.matches, 7)
	assert.Equal(t, "finished-match", store.matches[0].ID)
}

func TestGenerateTournamentNotFound(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 2, venues: 1, format: models.FormatRoundRobin,
		days: 2, duration: 4, rest: 24, slotsPerDay: 1,
	})

	_, err := newTestScheduler(store).Generate(context.Background(), "missing", nil)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGenerateConfigErrors(t *testing.T) {
	base := storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 10, duration: 4, rest: 24, slotsPerDay: 3,
	}

	tests := []struct {
		name   string
		mutate func(*memStore)
		reason string
	}{
		{
			name:   "one team",
			mutate: func(s *memStore) { s.teams = s.teams[:1] },
			reason: "at least 2 teams",
		},
		{
			name:   "no venues",
			mutate: func(s *memStore) { s.venues = nil },
			reason: "at least 1 venue",
		},
		{
			name:   "zero duration",
			mutate: func(s *memStore) { s.tournament.MatchDurationHours = 0 },
			reason: "match duration",
		},
		{
			name:   "excessive rest",
			mutate: func(s *memStore) { s.tournament.MinRestHours = 300 },
			reason: "minimum rest",
		},
		{
			name:   "too many slots per day",
			mutate: func(s *memStore) { s.tournament.SlotsPerDay = 11 },
			reason: "slots per day",
		},
		{
			name:   "inverted window",
			mutate: func(s *memStore) { s.tournament.EndDate = s.tournament.StartDate.AddDate(0, 0, -1) },
			reason: "precedes",
		},
		{
			name:   "unsupported format",
			mutate: func(s *memStore) { s.tournament.Format = models.TournamentFormat("swiss") },
			reason: "unsupported tournament format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore(base)
			tt.mutate(store)

			result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, cfgErr.Reason, tt.reason)
			assert.False(t, result.Success)
		})
	}
}

func TestGenerateStoreFailureRollsBack(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 4, venues: 2, format: models.FormatRoundRobin,
		days: 30, duration: 4, rest: 24, slotsPerDay: 3,
	})
	store.replaceErr = fmt.Errorf("connection reset")

	result, err := newTestScheduler(store).Generate(context.Background(), "t1", nil)
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.False(t, result.Success)
	assert.Empty(t, store.matches)
}

func TestGenerateOptions(t *testing.T) {
	store := newMemStore(storeConfig{
		teams: 2, venues: 1, format: models.FormatRoundRobin,
		days: 3, duration: 4, rest: 24, slotsPerDay: 1,
	})
	engine := newTestScheduler(store)

	t.Run("accepted but inert", func(t *testing.T) {
		hour := 9
		result, err := engine.Generate(context.Background(), "t1", &Options{
			OptimizeFor:        "fairness",
			AllowBackToBack:    true,
			PreferredStartHour: &hour,
		})
		require.NoError(t, err)
		require.True(t, result.Success)
		// The slot grid is unchanged by the preferred hour.
		assert.Equal(t, 14, result.Schedule[0].ScheduledStart.Hour())
	})

	t.Run("unknown optimize_for", func(t *testing.T) {
		_, err := engine.Generate(context.Background(), "t1", &Options{OptimizeFor: "fastest"})
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("preferred hour out of range", func(t *testing.T) {
		hour := 24
		_, err := engine.Generate(context.Background(), "t1", &Options{PreferredStartHour: &hour})
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}
