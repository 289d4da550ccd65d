// internal/scheduler/errors.go
// Error kinds surfaced by a scheduling run

package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// ErrTournamentNotFound is returned by Store implementations when the
// tournament id does not resolve to a row.
var ErrTournamentNotFound = errors.New("tournament not found")

// ConfigError reports tournament configuration that can never produce a
// schedule: too few teams, no venues, an unsupported format, or
// out-of-range scheduling parameters. Not retryable.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid scheduling configuration: " + e.Reason
}

// InfeasibilityError reports that no conflict-free schedule exists for the
// current configuration, either proven by the arithmetic pre-check or by an
// exhaustive solver run. Suggestions carry human-actionable fixes.
type InfeasibilityError struct {
	Reason      string
	Suggestions []string
}

func (e *InfeasibilityError) Error() string {
	return e.Reason
}

// SolverTimeoutError reports that the solver exhausted its wall-clock budget
// without proving the model feasible or infeasible.
type SolverTimeoutError struct {
	Budget time.Duration
}

func (e *SolverTimeoutError) Error() string {
	return fmt.Sprintf("no feasible schedule found within the %s solver budget", e.Budget)
}

// SolverInternalError reports a bug in model construction: either the solver
// rejected the model outright, or the independent validation pass found
// conflicts in a solution the solver claimed was clean.
type SolverInternalError struct {
	Reason    string
	Conflicts []string
}

func (e *SolverInternalError) Error() string {
	return "scheduling engine error: " + e.Reason
}

// StoreError wraps a failure from the backing store. The transaction is
// rolled back by the store; no partial schedule is ever persisted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
