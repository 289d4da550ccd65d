package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// solverTournament yields a one-slot rest window (4h rest / 4h matches).
func solverTournament() *models.Tournament {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &models.Tournament{
		ID:                 "t1",
		Format:             models.FormatRoundRobin,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, 2),
		MatchDurationHours: 4,
		MinRestHours:       4,
		SlotsPerDay:        2,
	}
}

func triangleModel(t *testing.T, numSlots, numVenues int) *cspModel {
	t.Helper()

	// Three teams round robin: every match shares a team with every other.
	pairs, err := matchPairs(models.FormatRoundRobin, 3)
	require.NoError(t, err)

	m, err := buildModel(solverTournament(), pairs, numSlots, numVenues)
	require.NoError(t, err)
	return m
}

func TestSolveFindsSatisfyingAssignment(t *testing.T) {
	// Mutually conflicting matches need slot indices pairwise more than one
	// apart: five slots fit them at 0, 2 and 4.
	m := triangleModel(t, 5, 1)

	status, assign := solve(m, time.Second)
	require.Equal(t, statusOptimal, status)
	require.Len(t, assign, 3)

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			si, sj := m.slotOf(assign[i]), m.slotOf(assign[j])
			d := si - sj
			if d < 0 {
				d = -d
			}
			assert.Greater(t, d, 1, "matches %d and %d too close", i, j)
		}
	}
}

func TestSolveProvesInfeasibility(t *testing.T) {
	// Four slots cannot hold three mutually conflicting matches with a
	// one-slot rest window; exhaustion proves it.
	m := triangleModel(t, 4, 1)

	status, assign := solve(m, time.Second)
	assert.Equal(t, statusInfeasible, status)
	assert.Nil(t, assign)
}

func TestSolveMoreVenuesDoNotRelaxTeamConstraints(t *testing.T) {
	// Extra venues add capacity but not team availability.
	m := triangleModel(t, 4, 3)

	status, _ := solve(m, time.Second)
	assert.Equal(t, statusInfeasible, status)
}

func TestSolveHonoursDeadline(t *testing.T) {
	m := triangleModel(t, 5, 1)

	status, assign := solve(m, -time.Second)
	assert.Equal(t, statusUnknown, status)
	assert.Nil(t, assign)
}

func TestSolveRejectsInvalidModel(t *testing.T) {
	m := triangleModel(t, 5, 1)
	m.sharedTeam = m.sharedTeam[:1] // corrupt the conflict table

	status, _ := solve(m, time.Second)
	assert.Equal(t, statusModelInvalid, status)
}

func TestBitsetOperations(t *testing.T) {
	b := fullBitset(70)
	assert.Equal(t, 70, b.count())
	assert.Equal(t, 0, b.next(0))
	assert.Equal(t, 69, b.next(69))
	assert.Equal(t, -1, b.next(70))

	b.clear(0)
	b.clear(64)
	assert.Equal(t, 68, b.count())
	assert.Equal(t, 1, b.next(0))
	assert.Equal(t, 65, b.next(64))

	c := b.clone()
	c.clear(1)
	assert.Equal(t, 1, b.next(0), "clone must not alias the original")
}

func TestModelCompatibility(t *testing.T) {
	m := triangleModel(t, 5, 2)

	// Same cell is always exclusive.
	assert.False(t, m.compatible(0, 0, 1, 0))

	// Same slot, different venue: still blocked for matches sharing a team.
	opt1 := 0*m.numVenues + 0
	opt2 := 0*m.numVenues + 1
	assert.False(t, m.compatible(0, opt1, 1, opt2))

	// Adjacent slots blocked by the rest window; two slots apart is fine.
	assert.False(t, m.compatible(0, 0*m.numVenues, 1, 1*m.numVenues))
	assert.True(t, m.compatible(0, 0*m.numVenues, 1, 2*m.numVenues))
}
