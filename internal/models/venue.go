// internal/models/venue.go
// Venue related models

package models

import "time"

// Venue represents a ground where matches are played
type Venue struct {
	ID           string    `json:"id" db:"id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	City         string    `json:"city" db:"city"`
	Capacity     *int      `json:"capacity,omitempty" db:"capacity"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	Address      *string   `json:"address,omitempty" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
