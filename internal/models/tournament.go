// internal/models/tournament.go
// Domain models representing core business entities

package models

import (
	"encoding/json"
	"time"
)

// Tournament represents a tournament with its scheduling configuration
type Tournament struct {
	ID          string           `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description,omitempty" db:"description"`
	Format      TournamentFormat `json:"format" db:"format"`
	Status      TournamentStatus `json:"status" db:"status"`

	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`

	// Scheduling configuration
	MatchDurationHours int `json:"match_duration_hours" db:"match_duration_hours"`
	MinRestHours       int `json:"min_rest_hours" db:"min_rest_hours"`
	SlotsPerDay        int `json:"slots_per_day" db:"slots_per_day"`

	// Additional settings stored as JSON
	Settings json.RawMessage `json:"settings,omitempty" db:"settings"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TournamentFormat represents different tournament formats
type TournamentFormat string

const (
	FormatRoundRobin       TournamentFormat = "round_robin"
	FormatKnockout         TournamentFormat = "knockout"
	FormatLeague           TournamentFormat = "league"
	FormatDoubleRoundRobin TournamentFormat = "double_round_robin"
)

// Valid reports whether the format is one of the supported values.
func (f TournamentFormat) Valid() bool {
	switch f {
	case FormatRoundRobin, FormatKnockout, FormatLeague, FormatDoubleRoundRobin:
		return true
	}
	return false
}

// TournamentStatus represents the current state of a tournament
type TournamentStatus string

const (
	TournamentDraft      TournamentStatus = "draft"
	TournamentScheduled  TournamentStatus = "scheduled"
	TournamentInProgress TournamentStatus = "in_progress"
	TournamentCompleted  TournamentStatus = "completed"
	TournamentCancelled  TournamentStatus = "cancelled"
)
