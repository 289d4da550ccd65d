// internal/scheduler/pairs.go
// Match pair generation per tournament format

package scheduler

import (
	"fmt"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// pair references two teams by their index in the loaded team list.
type pair struct {
	team1, team2 int
}

// matchPairs generates every fixture the format requires, as team index
// pairs. Round robin and league play each opponent once; double round robin
// plays home and away; knockout chains teams into a simplified bracket of
// |T|-1 matches.
func matchPairs(format models.TournamentFormat, numTeams int) ([]pair, error) {
	var pairs []pair

	switch format {
	case models.FormatRoundRobin, models.FormatLeague:
		for i := 0; i < numTeams; i++ {
			for j := i + 1; j < numTeams; j++ {
				pairs = append(pairs, pair{i, j})
			}
		}

	case models.FormatDoubleRoundRobin:
		for i := 0; i < numTeams; i++ {
			for j := 0; j < numTeams; j++ {
				if i != j {
					pairs = append(pairs, pair{i, j})
				}
			}
		}

	case models.FormatKnockout:
		for i := 0; i < numTeams-1; i++ {
			t1 := i % numTeams
			t2 := (i + 1) % numTeams
			if t1 != t2 {
				pairs = append(pairs, pair{t1, t2})
			}
		}

	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported tournament format %q", format)}
	}

	return pairs, nil
}

// matchesPerTeam counts how many of the given pairs involve each team.
func matchesPerTeam(pairs []pair, numTeams int) []int {
	counts := make([]int, numTeams)
	for _, p := range pairs {
		counts[p.team1]++
		counts[p.team2]++
	}
	return counts
}
