// internal/repositories/tournament_repository.go
// Tournament data access layer

package repositories

import (
	"context"
	"database/sql"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// TournamentRepository handles tournament data access
type TournamentRepository struct {
	db *sql.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *sql.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

const tournamentColumns = `
	id, name, description, format, status, start_date, end_date,
	match_duration_hours, min_rest_hours, slots_per_day, settings,
	created_at, updated_at
`

func scanTournament(row interface{ Scan(...interface{}) error }) (*models.Tournament, error) {
	var t models.Tournament
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Format,
		&t.Status,
		&t.StartDate,
		&t.EndDate,
		&t.MatchDurationHours,
		&t.MinRestHours,
		&t.SlotsPerDay,
		&t.Settings,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new tournament
func (r *TournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (
			id, name, description, format, status, start_date, end_date,
			match_duration_hours, min_rest_hours, slots_per_day, settings,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		t.Format,
		t.Status,
		t.StartDate,
		t.EndDate,
		t.MatchDurationHours,
		t.MinRestHours,
		t.SlotsPerDay,
		t.Settings,
		t.CreatedAt,
		t.UpdatedAt,
	)

	return err
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = ?`
	return scanTournament(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves tournaments ordered by start date
func (r *TournamentRepository) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY start_date DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return tournaments, rows.Err()
}

// Update updates tournament information
func (r *TournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	query := `
		UPDATE tournaments SET
			name = ?, description = ?, format = ?, status = ?,
			start_date = ?, end_date = ?, match_duration_hours = ?,
			min_rest_hours = ?, slots_per_day = ?, settings = ?, updated_at = NOW()
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Description,
		t.Format,
		t.Status,
		t.StartDate,
		t.EndDate,
		t.MatchDurationHours,
		t.MinRestHours,
		t.SlotsPerDay,
		t.Settings,
		t.ID,
	)

	return err
}

// UpdateStatus updates only the tournament status
func (r *TournamentRepository) UpdateStatus(ctx context.Context, id string, status models.TournamentStatus) error {
	query := `UPDATE tournaments SET status = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// Delete removes a tournament and its dependent rows (cascaded by schema)
func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = ?`, id)
	return err
}
