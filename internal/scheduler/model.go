// internal/scheduler/model.go
// Boolean constraint model over match placement variables

package scheduler

import (
	"errors"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// cspModel is the satisfaction model the solver works on. Conceptually it
// declares one boolean x[m,s,v] per (match, slot, venue) triple, meaning
// match m starts at slot s in venue v; the triple space is addressed as a
// flat index with venue varying fastest. Four constraint families bind it:
//
//  1. each match is placed exactly once (the solver's assignment step);
//  2. a (slot, venue) cell holds at most one match;
//  3. a team plays at most once per slot;
//  4. two matches of the same team sit more than restSlots indices apart.
//
// Families 2-4 are encoded by the pairwise compatibility relation below,
// with the rest rule in its sliding-window form rather than as explicit
// clauses per slot pair.
type cspModel struct {
	numMatches int
	numSlots   int
	numVenues  int

	pairs []pair

	// sharedTeam[m1*numMatches+m2] marks match pairs with a common team.
	sharedTeam []bool

	// restSlots is the slot-distance window closed to same-team matches.
	restSlots int
}

// buildModel assembles the constraint model for the run.
func buildModel(t *models.Tournament, pairs []pair, numSlots, numVenues int) (*cspModel, error) {
	if len(pairs) == 0 || numSlots <= 0 || numVenues <= 0 {
		return nil, errors.New("degenerate model dimensions")
	}

	n := len(pairs)
	shared := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			a, b := pairs[i], pairs[j]
			if a.team1 == b.team1 || a.team1 == b.team2 || a.team2 == b.team1 || a.team2 == b.team2 {
				shared[i*n+j] = true
			}
		}
	}

	return &cspModel{
		numMatches: n,
		numSlots:   numSlots,
		numVenues:  numVenues,
		pairs:      pairs,
		sharedTeam: shared,
		restSlots:  restWindowSlots(t),
	}, nil
}

// options is the per-match domain size: one option per (slot, venue) cell.
func (m *cspModel) options() int {
	return m.numSlots * m.numVenues
}

func (m *cspModel) slotOf(opt int) int {
	return opt / m.numVenues
}

func (m *cspModel) venueOf(opt int) int {
	return opt % m.numVenues
}

// compatible reports whether two placements can coexist: distinct matches
// may not share a (slot, venue) cell, and matches with a common team must
// sit more than restSlots slot indices apart (which also forbids the same
// slot in any venue).
func (m *cspModel) compatible(m1, opt1, m2, opt2 int) bool {
	s1, v1 := m.slotOf(opt1), m.venueOf(opt1)
	s2, v2 := m.slotOf(opt2), m.venueOf(opt2)

	if s1 == s2 && v1 == v2 {
		return false
	}
	if m.sharedTeam[m1*m.numMatches+m2] {
		d := s1 - s2
		if d < 0 {
			d = -d
		}
		if d <= m.restSlots {
			return false
		}
	}
	return true
}

// check validates internal consistency before the solver runs; a failure
// here is a model construction bug, not bad input.
func (m *cspModel) check() error {
	if m.numMatches != len(m.pairs) || len(m.sharedTeam) != m.numMatches*m.numMatches {
		return errors.New("model dimensions disagree with pair list")
	}
	if m.numSlots <= 0 || m.numVenues <= 0 || m.restSlots < 1 {
		return errors.New("model has degenerate dimensions")
	}
	return nil
}
