// internal/scheduler/solver.go
// Complete backtracking search with forward checking over the placement model

package scheduler

import (
	"math/bits"
	"time"
)

// solveStatus mirrors the terminal outcomes of a CP-SAT style engine.
type solveStatus int

const (
	statusUnknown solveStatus = iota
	statusOptimal
	statusFeasible
	statusInfeasible
	statusModelInvalid
)

func (s solveStatus) String() string {
	switch s {
	case statusOptimal:
		return "OPTIMAL"
	case statusFeasible:
		return "FEASIBLE"
	case statusInfeasible:
		return "INFEASIBLE"
	case statusModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// solve searches for a placement of every match onto a (slot, venue) cell
// that satisfies the model. The search is depth-first with forward checking:
// placing a match prunes incompatible cells from every unplaced match's
// domain, and an emptied domain forces a backtrack. Matches are expanded
// smallest-domain-first, cells earliest-slot-first, which keeps schedules
// compact without an explicit objective.
//
// The search is complete, so exhaustion proves infeasibility; hitting the
// wall-clock budget returns statusUnknown. On success the returned slice
// holds each match's chosen cell index.
func solve(m *cspModel, budget time.Duration) (solveStatus, []int) {
	if err := m.check(); err != nil {
		return statusModelInvalid, nil
	}

	opts := m.options()
	domains := make([]bitset, m.numMatches)
	for i := range domains {
		domains[i] = fullBitset(opts)
	}

	assign := make([]int, m.numMatches)
	for i := range assign {
		assign[i] = -1
	}

	s := &search{model: m, deadline: time.Now().Add(budget)}
	switch s.expand(domains, assign) {
	case searchFound:
		return statusOptimal, assign
	case searchExhausted:
		return statusInfeasible, nil
	default:
		return statusUnknown, nil
	}
}

type searchOutcome int

const (
	searchFound searchOutcome = iota
	searchExhausted
	searchDeadline
)

type search struct {
	model    *cspModel
	deadline time.Time
	nodes    uint64
}

func (s *search) expand(domains []bitset, assign []int) searchOutcome {
	s.nodes++
	if time.Now().After(s.deadline) {
		return searchDeadline
	}

	// Fail-first: expand the unplaced match with the fewest remaining cells.
	pick, best := -1, int(^uint(0)>>1)
	for i := range assign {
		if assign[i] >= 0 {
			continue
		}
		if c := domains[i].count(); c < best {
			pick, best = i, c
		}
	}
	if pick < 0 {
		return searchFound
	}

	for opt := domains[pick].next(0); opt >= 0; opt = domains[pick].next(opt + 1) {
		assign[pick] = opt
		if narrowed, ok := s.narrow(domains, assign, pick, opt); ok {
			out := s.expand(narrowed, assign)
			if out != searchExhausted {
				return out
			}
		}
		assign[pick] = -1
	}
	return searchExhausted
}

// narrow applies forward checking for a new placement: every unplaced
// match's domain loses the cells incompatible with it. Reports ok=false
// when a domain empties.
func (s *search) narrow(domains []bitset, assign []int, placed, opt int) ([]bitset, bool) {
	next := make([]bitset, len(domains))
	for m2 := range domains {
		if m2 == placed || assign[m2] >= 0 {
			next[m2] = domains[m2]
			continue
		}
		d := domains[m2].clone()
		for o2 := d.next(0); o2 >= 0; o2 = d.next(o2 + 1) {
			if !s.model.compatible(placed, opt, m2, o2) {
				d.clear(o2)
			}
		}
		if d.count() == 0 {
			return nil, false
		}
		next[m2] = d
	}
	return next, true
}

// bitset is a fixed-size set of cell indices.
type bitset []uint64

func fullBitset(n int) bitset {
	b := make(bitset, (n+63)/64)
	for i := 0; i < n; i++ {
		b[i/64] |= 1 << (uint(i) % 64)
	}
	return b
}

func (b bitset) clear(i int) {
	b[i/64] &^= 1 << (uint(i) % 64)
}

func (b bitset) clone() bitset {
	c := make(bitset, len(b))
	copy(c, b)
	return c
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// next returns the smallest member >= from, or -1.
func (b bitset) next(from int) int {
	if from < 0 {
		from = 0
	}
	for w := from / 64; w < len(b); w++ {
		word := b[w]
		if w == from/64 {
			word &= ^uint64(0) << (uint(from) % 64)
		}
		if word != 0 {
			return w*64 + bits.TrailingZeros64(word)
		}
	}
	return -1
}
