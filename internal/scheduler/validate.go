// internal/scheduler/validate.go
// Independent conflict check on the extracted schedule

package scheduler

import (
	"fmt"
	"sort"
	"time"
)

// verifySchedule re-checks the extracted fixtures for conflicts without
// consulting the solver: no team twice in one slot, no venue double-booked,
// and every team's consecutive matches separated by the configured rest in
// real hours. Its purpose is to catch model construction bugs before
// anything is persisted. Returns a conflict description per violation.
func verifySchedule(matches []ScheduledMatch, minRestHours int) []string {
	var conflicts []string

	// Team clashes per start instant.
	teamsAt := make(map[time.Time]map[string]bool)
	for _, m := range matches {
		set := teamsAt[m.ScheduledStart]
		if set == nil {
			set = make(map[string]bool)
			teamsAt[m.ScheduledStart] = set
		}
		if set[m.Team1ID] {
			conflicts = append(conflicts, fmt.Sprintf("team %s plays multiple matches at %s",
				m.Team1Name, m.ScheduledStart.Format("2006-01-02 15:04")))
		}
		if set[m.Team2ID] {
			conflicts = append(conflicts, fmt.Sprintf("team %s plays multiple matches at %s",
				m.Team2Name, m.ScheduledStart.Format("2006-01-02 15:04")))
		}
		set[m.Team1ID] = true
		set[m.Team2ID] = true
	}

	// Venue double-bookings per start instant.
	venuesAt := make(map[time.Time]map[string]bool)
	for _, m := range matches {
		set := venuesAt[m.ScheduledStart]
		if set == nil {
			set = make(map[string]bool)
			venuesAt[m.ScheduledStart] = set
		}
		if set[m.VenueID] {
			conflicts = append(conflicts, fmt.Sprintf("venue %s double-booked at %s",
				m.VenueName, m.ScheduledStart.Format("2006-01-02 15:04")))
		}
		set[m.VenueID] = true
	}

	// Rest gaps between consecutive matches per team.
	type teamFixture struct {
		name  string
		match ScheduledMatch
	}
	byTeam := make(map[string][]teamFixture)
	for _, m := range matches {
		byTeam[m.Team1ID] = append(byTeam[m.Team1ID], teamFixture{m.Team1Name, m})
		byTeam[m.Team2ID] = append(byTeam[m.Team2ID], teamFixture{m.Team2Name, m})
	}
	for _, fixtures := range byTeam {
		sort.Slice(fixtures, func(i, j int) bool {
			return fixtures[i].match.ScheduledStart.Before(fixtures[j].match.ScheduledStart)
		})
		for i := 0; i+1 < len(fixtures); i++ {
			gap := fixtures[i+1].match.ScheduledStart.Sub(fixtures[i].match.ScheduledEnd).Hours()
			if gap < float64(minRestHours) {
				conflicts = append(conflicts, fmt.Sprintf("team %s has only %.1fh rest (minimum %dh) between matches",
					fixtures[i].name, gap, minRestHours))
			}
		}
	}

	return conflicts
}
