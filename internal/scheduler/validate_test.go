package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureAt(team1, team2, venue string, start time.Time, durationHours int) ScheduledMatch {
	return ScheduledMatch{
		Team1ID:        team1,
		Team2ID:        team2,
		Team1Name:      team1,
		Team2Name:      team2,
		VenueID:        venue,
		VenueName:      venue,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Duration(durationHours) * time.Hour),
	}
}

func TestVerifyScheduleClean(t *testing.T) {
	day1 := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1).Add(4 * time.Hour) // 14:00, 24h after day1 ends

	schedule := []ScheduledMatch{
		fixtureAt("A", "B", "V1", day1, 4),
		fixtureAt("C", "D", "V2", day1, 4),
		fixtureAt("A", "C", "V1", day2, 4),
		fixtureAt("B", "D", "V2", day2, 4),
	}

	assert.Empty(t, verifySchedule(schedule, 24))
}

func TestVerifyScheduleTeamClash(t *testing.T) {
	start := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	schedule := []ScheduledMatch{
		fixtureAt("A", "B", "V1", start, 4),
		fixtureAt("A", "C", "V2", start, 4),
	}

	// The overlap is reported twice: as a clash in the slot, and as a
	// negative rest gap between A's two matches (10:00 start, 14:00 end).
	conflicts := verifySchedule(schedule, 0)
	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts[0], "team A plays multiple matches")
	assert.Contains(t, conflicts[1], "team A has only -4.0h rest")
}

func TestVerifyScheduleVenueDoubleBooked(t *testing.T) {
	start := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	schedule := []ScheduledMatch{
		fixtureAt("A", "B", "V1", start, 4),
		fixtureAt("C", "D", "V1", start, 4),
	}

	conflicts := verifySchedule(schedule, 0)
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "venue V1 double-booked")
}

func TestVerifyScheduleRestViolation(t *testing.T) {
	day1 := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	sameEvening := day1.Add(8 * time.Hour) // ends 14:00, next starts 18:00: 4h rest

	schedule := []ScheduledMatch{
		fixtureAt("A", "B", "V1", day1, 4),
		fixtureAt("A", "C", "V1", sameEvening, 4),
	}

	conflicts := verifySchedule(schedule, 24)
	require.Len(t, conflicts, 1)
	assert.Contains(t, conflicts[0], "team A has only 4.0h rest")
}

func TestVerifyScheduleRestExactlyMinimum(t *testing.T) {
	day1 := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	next := day1.Add(28 * time.Hour) // ends 14:00, next starts 14:00 next day

	schedule := []ScheduledMatch{
		fixtureAt("A", "B", "V1", day1, 4),
		fixtureAt("A", "C", "V1", next, 4),
	}

	assert.Empty(t, verifySchedule(schedule, 24))
}
