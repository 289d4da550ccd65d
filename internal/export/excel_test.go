package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

func exportFixtures() (*models.Tournament, []*models.Team, []*models.Venue, []*models.Match) {
	start := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	tournament := &models.Tournament{
		ID:     "t1",
		Name:   "Premier Cup",
		Format: models.FormatRoundRobin,
	}

	teams := []*models.Team{
		{ID: "team-0", TournamentID: "t1", Name: "Mumbai", Code: "MI"},
		{ID: "team-1", TournamentID: "t1", Name: "Chennai", Code: "CSK"},
	}
	venues := []*models.Venue{
		{ID: "venue-0", TournamentID: "t1", Name: "Wankhede", City: "Mumbai"},
	}

	number := 1
	venueID := "venue-0"
	matches := []*models.Match{
		{
			ID:             "m1",
			TournamentID:   "t1",
			Team1ID:        "team-0",
			Team2ID:        "team-1",
			VenueID:        &venueID,
			ScheduledStart: &start,
			ScheduledEnd:   &end,
			MatchNumber:    &number,
			Status:         models.MatchScheduled,
		},
	}

	return tournament, teams, venues, matches
}

func TestWorkbookSheets(t *testing.T) {
	tournament, teams, venues, matches := exportFixtures()

	f, err := Workbook(tournament, teams, venues, matches)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Fixtures")
	assert.Contains(t, sheets, "MI")
	assert.Contains(t, sheets, "CSK")
	assert.NotContains(t, sheets, "Sheet1")
}

func TestWorkbookFixtureRows(t *testing.T) {
	tournament, teams, venues, matches := exportFixtures()

	f, err := Workbook(tournament, teams, venues, matches)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Fixtures", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Match", header)

	date, err := f.GetCellValue("Fixtures", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", date)

	team1, err := f.GetCellValue("Fixtures", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", team1)

	venue, err := f.GetCellValue("Fixtures", "H2")
	require.NoError(t, err)
	assert.Equal(t, "Wankhede", venue)

	status, err := f.GetCellValue("Fixtures", "I2")
	require.NoError(t, err)
	assert.Equal(t, "scheduled", status)
}

func TestWorkbookTeamSheetFiltersMatches(t *testing.T) {
	tournament, teams, venues, matches := exportFixtures()
	teams = append(teams, &models.Team{ID: "team-2", TournamentID: "t1", Name: "Kolkata", Code: "KKR"})

	f, err := Workbook(tournament, teams, venues, matches)
	require.NoError(t, err)
	defer f.Close()

	// The uninvolved team's sheet has a header but no fixture rows.
	row, err := f.GetCellValue("KKR", "A2")
	require.NoError(t, err)
	assert.Empty(t, row)

	row, err = f.GetCellValue("MI", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", row)
}
