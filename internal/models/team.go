// internal/models/team.go
// Team related models

package models

import "time"

// Team represents a team registered in a tournament
type Team struct {
	ID           string    `json:"id" db:"id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	Code         string    `json:"code" db:"code"` // Short code like "MI", "CSK"
	LogoURL      *string   `json:"logo_url,omitempty" db:"logo_url"`
	HomeVenueID  *string   `json:"home_venue_id,omitempty" db:"home_venue_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
