// internal/scheduler/extract.go
// Translation of a solver assignment into concrete fixtures

package scheduler

import (
	"sort"
	"time"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// ScheduledMatch is one fixture produced by a scheduling run, carrying
// enough denormalised detail for API responses and exports.
type ScheduledMatch struct {
	MatchNumber    int       `json:"match_number"`
	Team1ID        string    `json:"team1_id"`
	Team2ID        string    `json:"team2_id"`
	Team1Name      string    `json:"team1_name"`
	Team2Name      string    `json:"team2_name"`
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	SlotIndex      int       `json:"slot_index"`
	VenueIndex     int       `json:"venue_index"`

	pairIndex int
}

// extractSchedule maps each match's chosen cell back to real teams, venues
// and instants, then sorts by start time (venue, then generation order as
// tie-breaks) and numbers the fixtures 1..N in that order.
func extractSchedule(m *cspModel, assign []int, slots []time.Time, teams []*models.Team, venues []*models.Venue, durationHours int) []ScheduledMatch {
	out := make([]ScheduledMatch, 0, m.numMatches)
	for idx, p := range m.pairs {
		opt := assign[idx]
		s, v := m.slotOf(opt), m.venueOf(opt)
		start := slots[s]
		out = append(out, ScheduledMatch{
			Team1ID:        teams[p.team1].ID,
			Team2ID:        teams[p.team2].ID,
			Team1Name:      teams[p.team1].Name,
			Team2Name:      teams[p.team2].Name,
			VenueID:        venues[v].ID,
			VenueName:      venues[v].Name,
			ScheduledStart: start,
			ScheduledEnd:   start.Add(time.Duration(durationHours) * time.Hour),
			SlotIndex:      s,
			VenueIndex:     v,
			pairIndex:      idx,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledStart.Equal(out[j].ScheduledStart) {
			return out[i].ScheduledStart.Before(out[j].ScheduledStart)
		}
		if out[i].VenueIndex != out[j].VenueIndex {
			return out[i].VenueIndex < out[j].VenueIndex
		}
		return out[i].pairIndex < out[j].pairIndex
	})

	for i := range out {
		out[i].MatchNumber = i + 1
	}
	return out
}
