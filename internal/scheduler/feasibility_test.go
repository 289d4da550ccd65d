package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

func feasibilityTournament(durationHours, restHours int) *models.Tournament {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &models.Tournament{
		ID:                 "t1",
		Name:               "Feasibility Cup",
		Format:             models.FormatRoundRobin,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, 1),
		MatchDurationHours: durationHours,
		MinRestHours:       restHours,
		SlotsPerDay:        3,
	}
}

func TestRestWindowSlots(t *testing.T) {
	assert.Equal(t, 6, restWindowSlots(feasibilityTournament(4, 24)))
	assert.Equal(t, 1, restWindowSlots(feasibilityTournament(4, 4)))
	// Never below one slot, even with no configured rest.
	assert.Equal(t, 1, restWindowSlots(feasibilityTournament(4, 0)))
	assert.Equal(t, 42, restWindowSlots(feasibilityTournament(4, 168)))
}

func TestCheckFeasibilityCapacityShortfall(t *testing.T) {
	// Six round robin matches into a single slot-venue cell.
	pairs, err := matchPairs(models.FormatRoundRobin, 4)
	require.NoError(t, err)

	ok, issues := checkFeasibility(feasibilityTournament(4, 24), pairs, 4, 1, 1)
	assert.False(t, ok)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "6 matches")
	assert.Contains(t, issues[0], "only 1 are available")
}

func TestCheckFeasibilityRestTooStrict(t *testing.T) {
	// Scenario: two days of slots against a full week of rest.
	pairs, err := matchPairs(models.FormatRoundRobin, 4)
	require.NoError(t, err)

	ok, issues := checkFeasibility(feasibilityTournament(4, 168), pairs, 4, 6, 2)
	assert.False(t, ok)

	joined := strings.Join(issues, "\n")
	assert.Contains(t, joined, "rest period too strict")
	assert.Contains(t, joined, "reduce the rest period")
}

func TestCheckFeasibilitySingleMatchSingleSlot(t *testing.T) {
	// One match needs exactly one slot regardless of the rest window.
	pairs, err := matchPairs(models.FormatRoundRobin, 2)
	require.NoError(t, err)

	ok, issues := checkFeasibility(feasibilityTournament(4, 24), pairs, 2, 1, 1)
	assert.True(t, ok)

	// Full utilisation is advisory only.
	joined := strings.Join(issues, "\n")
	assert.Contains(t, joined, "warning: high slot utilisation")
}

func TestCheckFeasibilityComfortable(t *testing.T) {
	pairs, err := matchPairs(models.FormatRoundRobin, 4)
	require.NoError(t, err)

	ok, issues := checkFeasibility(feasibilityTournament(4, 24), pairs, 4, 90, 2)
	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestCheckFeasibilityZeroSlots(t *testing.T) {
	pairs, err := matchPairs(models.FormatRoundRobin, 2)
	require.NoError(t, err)

	ok, issues := checkFeasibility(feasibilityTournament(4, 24), pairs, 2, 0, 1)
	assert.False(t, ok)
	assert.NotEmpty(t, issues)
}
