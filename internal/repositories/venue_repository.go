// internal/repositories/venue_repository.go
// Venue data access layer

package repositories

import (
	"context"
	"database/sql"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// VenueRepository handles venue data access
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create inserts a new venue
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (
			id, tournament_id, name, city, capacity, latitude, longitude, address, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		venue.ID,
		venue.TournamentID,
		venue.Name,
		venue.City,
		venue.Capacity,
		venue.Latitude,
		venue.Longitude,
		venue.Address,
		venue.CreatedAt,
	)

	return err
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	query := `
		SELECT id, tournament_id, name, city, capacity, latitude, longitude, address, created_at
		FROM venues
		WHERE id = ?
	`

	var v models.Venue
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.TournamentID,
		&v.Name,
		&v.City,
		&v.Capacity,
		&v.Latitude,
		&v.Longitude,
		&v.Address,
		&v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByTournamentID retrieves all venues for a tournament in stable order
func (r *VenueRepository) GetByTournamentID(ctx context.Context, tournamentID string) ([]*models.Venue, error) {
	query := `
		SELECT id, tournament_id, name, city, capacity, latitude, longitude, address, created_at
		FROM venues
		WHERE tournament_id = ?
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		var v models.Venue
		err := rows.Scan(
			&v.ID,
			&v.TournamentID,
			&v.Name,
			&v.City,
			&v.Capacity,
			&v.Latitude,
			&v.Longitude,
			&v.Address,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, &v)
	}

	return venues, rows.Err()
}

// Delete removes a venue
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	return err
}
