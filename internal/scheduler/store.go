// internal/scheduler/store.go
// Storage contract consumed by the scheduling engine

package scheduler

import (
	"context"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/models"
)

// Store is the read/write surface a scheduling run needs. Reads return the
// tournament configuration the run works from; ReplaceMatches commits the
// result. Implementations must make ReplaceMatches atomic: delete the
// tournament's previously scheduled matches and insert the new ones in a
// single transaction, leaving completed or cancelled matches untouched.
type Store interface {
	// LoadTournament returns the tournament or ErrTournamentNotFound.
	LoadTournament(ctx context.Context, id string) (*models.Tournament, error)

	// LoadTeams returns the tournament's teams in stable registration order.
	LoadTeams(ctx context.Context, tournamentID string) ([]*models.Team, error)

	// LoadVenues returns the tournament's venues in stable order.
	LoadVenues(ctx context.Context, tournamentID string) ([]*models.Venue, error)

	// ReplaceMatches atomically swaps the tournament's scheduled matches
	// for the given rows.
	ReplaceMatches(ctx context.Context, tournamentID string, matches []*models.Match) error
}
