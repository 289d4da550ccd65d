// internal/models/match.go
// Match and fixture related models

package models

import "time"

// Match represents a scheduled fixture between two teams
type Match struct {
	ID           string `json:"id" db:"id"`
	TournamentID string `json:"tournament_id" db:"tournament_id"`

	Team1ID string `json:"team1_id" db:"team1_id"`
	Team2ID string `json:"team2_id" db:"team2_id"`

	VenueID        *string    `json:"venue_id,omitempty" db:"venue_id"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty" db:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end,omitempty" db:"scheduled_end"`

	// Actual timing, filled in as the match is played
	ActualStart *time.Time `json:"actual_start,omitempty" db:"actual_start"`
	ActualEnd   *time.Time `json:"actual_end,omitempty" db:"actual_end"`

	MatchNumber *int        `json:"match_number,omitempty" db:"match_number"`
	Round       *string     `json:"round,omitempty" db:"round"`
	Status      MatchStatus `json:"status" db:"status"`

	// Results
	WinnerID   *string `json:"winner_id,omitempty" db:"winner_id"`
	Team1Score *string `json:"team1_score,omitempty" db:"team1_score"`
	Team2Score *string `json:"team2_score,omitempty" db:"team2_score"`

	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
	MatchPostponed  MatchStatus = "postponed"
)
