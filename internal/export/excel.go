// internal/export/excel.go
// Fixture list export to an Excel workbook

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

const fixtureSheet = "Fixtures"

var fixtureHeaders = []string{"Match", "Date", "Day", "Start", "End", "Team 1", "Team 2", "Venue", "Status"}

// Workbook builds an Excel workbook with the full fixture list and one sheet
// per team. Matches are expected in schedule order.
func Workbook(t *models.Tournament, teams []*models.Team, venues []*models.Venue, matches []*models.Match) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	teamsByID := make(map[string]*models.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}
	venuesByID := make(map[string]*models.Venue, len(venues))
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	if err := writeFixtureSheet(f, matches, teamsByID, venuesByID); err != nil {
		return nil, fmt.Errorf("writing fixture sheet: %w", err)
	}

	for _, team := range teams {
		if err := writeTeamSheet(f, team, matches, teamsByID, venuesByID); err != nil {
			return nil, fmt.Errorf("writing sheet for team %s: %w", team.Code, err)
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeFixtureSheet(f *excelize.File, matches []*models.Match, teams map[string]*models.Team, venues map[string]*models.Venue) error {
	if _, err := f.NewSheet(fixtureSheet); err != nil {
		return err
	}

	writeHeaders(f, fixtureSheet)

	for i, m := range matches {
		if err := writeMatchRow(f, fixtureSheet, i+2, m, teams, venues); err != nil {
			return err
		}
	}

	return sizeColumns(f, fixtureSheet)
}

func writeTeamSheet(f *excelize.File, team *models.Team, matches []*models.Match, teams map[string]*models.Team, venues map[string]*models.Venue) error {
	if _, err := f.NewSheet(team.Code); err != nil {
		return err
	}

	writeHeaders(f, team.Code)

	row := 2
	for _, m := range matches {
		if m.Team1ID != team.ID && m.Team2ID != team.ID {
			continue
		}
		if err := writeMatchRow(f, team.Code, row, m, teams, venues); err != nil {
			return err
		}
		row++
	}

	return sizeColumns(f, team.Code)
}

func writeHeaders(f *excelize.File, sheet string) {
	for i, h := range fixtureHeaders {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}
}

func writeMatchRow(f *excelize.File, sheet string, row int, m *models.Match, teams map[string]*models.Team, venues map[string]*models.Venue) error {
	date, day, start, end := "", "", "", ""
	if m.ScheduledStart != nil {
		date = m.ScheduledStart.Format("2006-01-02")
		day = m.ScheduledStart.Weekday().String()
		start = m.ScheduledStart.Format("15:04")
	}
	if m.ScheduledEnd != nil {
		end = m.ScheduledEnd.Format("15:04")
	}

	venueName := ""
	if m.VenueID != nil {
		if v, ok := venues[*m.VenueID]; ok {
			venueName = v.Name
		}
	}

	number := 0
	if m.MatchNumber != nil {
		number = *m.MatchNumber
	}

	values := []interface{}{
		number,
		date,
		day,
		start,
		end,
		teamName(teams, m.Team1ID),
		teamName(teams, m.Team2ID),
		venueName,
		string(m.Status),
	}
	for i, v := range values {
		if err := f.SetCellValue(sheet, cellRef(i+1, row), v); err != nil {
			return err
		}
	}
	return nil
}

func teamName(teams map[string]*models.Team, id string) string {
	if t, ok := teams[id]; ok {
		return t.Name
	}
	return id
}

func sizeColumns(f *excelize.File, sheet string) error {
	if err := f.SetColWidth(sheet, "A", "A", 8); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "E", 12); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "F", "I", 22)
}

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
