// internal/repositories/match_repository.go
// Match data access layer

package repositories

import (
	"context"
	"database/sql"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// MatchRepository handles match data access
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `
	id, tournament_id, team1_id, team2_id, venue_id,
	scheduled_start, scheduled_end, actual_start, actual_end,
	match_number, round, status, winner_id, team1_score, team2_score,
	notes, created_at, updated_at
`

const insertMatchQuery = `
	INSERT INTO matches (
		id, tournament_id, team1_id, team2_id, venue_id,
		scheduled_start, scheduled_end, actual_start, actual_end,
		match_number, round, status, winner_id, team1_score, team2_score,
		notes, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func matchArgs(m *models.Match) []interface{} {
	return []interface{}{
		m.ID,
		m.TournamentID,
		m.Team1ID,
		m.Team2ID,
		m.VenueID,
		m.ScheduledStart,
		m.ScheduledEnd,
		m.ActualStart,
		m.ActualEnd,
		m.MatchNumber,
		m.Round,
		m.Status,
		m.WinnerID,
		m.Team1Score,
		m.Team2Score,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	}
}

func scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID,
		&m.TournamentID,
		&m.Team1ID,
		&m.Team2ID,
		&m.VenueID,
		&m.ScheduledStart,
		&m.ScheduledEnd,
		&m.ActualStart,
		&m.ActualEnd,
		&m.MatchNumber,
		&m.Round,
		&m.Status,
		&m.WinnerID,
		&m.Team1Score,
		&m.Team2Score,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new match
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	_, err := r.db.ExecContext(ctx, insertMatchQuery, matchArgs(match)...)
	return err
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = ?`
	return scanMatch(r.db.QueryRowContext(ctx, query, id))
}

// GetByTournamentID retrieves all matches for a tournament ordered by start time
func (r *MatchRepository) GetByTournamentID(ctx context.Context, tournamentID string) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = ? ORDER BY scheduled_start, match_number`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// ReplaceScheduled atomically swaps the tournament's scheduled matches for
// the given rows: previously scheduled matches are deleted and the new ones
// inserted in one transaction. Matches in any other status (completed,
// in progress, cancelled, postponed) are left untouched.
func (r *MatchRepository) ReplaceScheduled(ctx context.Context, tournamentID string, matches []*models.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM matches WHERE tournament_id = ? AND status = ?`,
		tournamentID, models.MatchScheduled,
	); err != nil {
		return err
	}

	for _, m := range matches {
		if _, err := tx.ExecContext(ctx, insertMatchQuery, matchArgs(m)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteScheduled removes the tournament's scheduled matches and reports how
// many rows were deleted.
func (r *MatchRepository) DeleteScheduled(ctx context.Context, tournamentID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM matches WHERE tournament_id = ? AND status = ?`,
		tournamentID, models.MatchScheduled,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateStatus updates match status, stamping the actual start time when a
// match goes in progress
func (r *MatchRepository) UpdateStatus(ctx context.Context, id string, status models.MatchStatus) error {
	query := `UPDATE matches SET status = ?, updated_at = NOW() WHERE id = ?`
	if status == models.MatchInProgress {
		query = `UPDATE matches SET status = ?, actual_start = NOW(), updated_at = NOW() WHERE id = ?`
	}

	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// RecordResult stores the outcome of a completed match
func (r *MatchRepository) RecordResult(ctx context.Context, id string, winnerID, team1Score, team2Score string) error {
	query := `
		UPDATE matches SET
			winner_id = ?, team1_score = ?, team2_score = ?,
			status = ?, actual_end = NOW(), updated_at = NOW()
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, winnerID, team1Score, team2Score, models.MatchCompleted, id)
	return err
}
