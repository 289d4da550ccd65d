// internal/repositories/team_repository.go
// Team data access layer

package repositories

import (
	"context"
	"database/sql"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (
			id, tournament_id, name, code, logo_url, home_venue_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		team.ID,
		team.TournamentID,
		team.Name,
		team.Code,
		team.LogoURL,
		team.HomeVenueID,
		team.CreatedAt,
	)

	return err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	query := `
		SELECT id, tournament_id, name, code, logo_url, home_venue_id, created_at
		FROM teams
		WHERE id = ?
	`

	var t models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.TournamentID,
		&t.Name,
		&t.Code,
		&t.LogoURL,
		&t.HomeVenueID,
		&t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByTournamentID retrieves all teams for a tournament in registration order
func (r *TeamRepository) GetByTournamentID(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	query := `
		SELECT id, tournament_id, name, code, logo_url, home_venue_id, created_at
		FROM teams
		WHERE tournament_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		err := rows.Scan(
			&t.ID,
			&t.TournamentID,
			&t.Name,
			&t.Code,
			&t.LogoURL,
			&t.HomeVenueID,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		teams = append(teams, &t)
	}

	return teams, rows.Err()
}

// CodeExists checks whether a short code is already used within a tournament
func (r *TeamRepository) CodeExists(ctx context.Context, tournamentID, code string) (bool, error) {
	query := `SELECT COUNT(*) FROM teams WHERE tournament_id = ? AND code = ?`

	var count int
	err := r.db.QueryRowContext(ctx, query, tournamentID, code).Scan(&count)
	return count > 0, err
}

// Delete removes a team
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	return err
}
