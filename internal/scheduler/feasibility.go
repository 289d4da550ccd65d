// internal/scheduler/feasibility.go
// Arithmetic pre-check run before the solver is built

package scheduler

import (
	"fmt"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// highUtilisation is the slot usage ratio above which a schedule is likely
// to be very tight; crossing it produces an advisory, not a failure.
const highUtilisation = 0.80

// restWindowSlots converts the configured rest period into a slot-distance
// window: two matches of the same team must sit more than this many slot
// indices apart. Never less than one slot.
func restWindowSlots(t *models.Tournament) int {
	r := t.MinRestHours / t.MatchDurationHours
	if r < 1 {
		r = 1
	}
	return r
}

// checkFeasibility rejects clearly impossible inputs before any solver work.
// It returns ok=false only for hard failures; the issues list may also carry
// advisories (prefixed "warning:") that do not block the run.
func checkFeasibility(t *models.Tournament, pairs []pair, numTeams, numSlots, numVenues int) (bool, []string) {
	var issues []string
	hard := false

	capacity := numSlots * numVenues
	if len(pairs) > capacity {
		hard = true
		issues = append(issues,
			fmt.Sprintf("not enough time slots: %d matches require %d slot-venue combinations, but only %d are available (%d slots x %d venues)",
				len(pairs), len(pairs), capacity, numSlots, numVenues),
			fmt.Sprintf("suggestion: extend the tournament past %s or add more venues",
				t.EndDate.AddDate(0, 0, 2).Format("2006-01-02")))
	}

	restSlots := restWindowSlots(t)
	maxTeamMatches := 0
	for _, n := range matchesPerTeam(pairs, numTeams) {
		if n > maxTeamMatches {
			maxTeamMatches = n
		}
	}
	// A team's matches must sit more than restSlots indices apart, so m
	// matches occupy a span of at least (m-1)*(restSlots+1)+1 slots.
	needed := 0
	if maxTeamMatches > 0 {
		needed = (maxTeamMatches-1)*(1+restSlots) + 1
	}
	if needed > numSlots {
		hard = true
		issues = append(issues,
			fmt.Sprintf("rest period too strict: a team needs %d slots to fit %d matches with %dh rest, but only %d are available",
				needed, maxTeamMatches, t.MinRestHours, numSlots),
			fmt.Sprintf("suggestion: reduce the rest period to %dh or extend the tournament",
				t.MatchDurationHours*2))
	}

	if !hard && capacity > 0 {
		if util := float64(len(pairs)) / float64(capacity); util > highUtilisation {
			issues = append(issues,
				fmt.Sprintf("warning: high slot utilisation (%.1f%%), the schedule will be tight", util*100))
		}
	}

	return !hard, issues
}
