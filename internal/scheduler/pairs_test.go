package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

func TestMatchPairsRoundRobin(t *testing.T) {
	pairs, err := matchPairs(models.FormatRoundRobin, 4)
	require.NoError(t, err)
	require.Len(t, pairs, 6) // 4*3/2

	seen := make(map[pair]bool)
	for _, p := range pairs {
		assert.Less(t, p.team1, p.team2, "round robin pairs are ordered i < j")
		assert.False(t, seen[p], "pair %v emitted twice", p)
		seen[p] = true
	}
}

func TestMatchPairsLeagueMatchesRoundRobin(t *testing.T) {
	rr, err := matchPairs(models.FormatRoundRobin, 5)
	require.NoError(t, err)
	league, err := matchPairs(models.FormatLeague, 5)
	require.NoError(t, err)
	assert.Equal(t, rr, league)
}

func TestMatchPairsDoubleRoundRobin(t *testing.T) {
	pairs, err := matchPairs(models.FormatDoubleRoundRobin, 4)
	require.NoError(t, err)
	require.Len(t, pairs, 12) // 4*3, home and away

	for _, p := range pairs {
		assert.NotEqual(t, p.team1, p.team2)
	}
}

func TestMatchPairsKnockout(t *testing.T) {
	pairs, err := matchPairs(models.FormatKnockout, 4)
	require.NoError(t, err)
	assert.Equal(t, []pair{{0, 1}, {1, 2}, {2, 3}}, pairs)

	pairs, err = matchPairs(models.FormatKnockout, 2)
	require.NoError(t, err)
	assert.Equal(t, []pair{{0, 1}}, pairs)
}

func TestMatchPairsUnknownFormat(t *testing.T) {
	_, err := matchPairs(models.TournamentFormat("swiss"), 4)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "unsupported tournament format")
}

func TestMatchesPerTeam(t *testing.T) {
	pairs, err := matchPairs(models.FormatRoundRobin, 4)
	require.NoError(t, err)

	counts := matchesPerTeam(pairs, 4)
	for team, n := range counts {
		assert.Equal(t, 3, n, "team %d", team)
	}
}
