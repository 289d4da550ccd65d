// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/database"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Container holds all repository instances
type Container struct {
	Tournament *TournamentRepository
	Team       *TeamRepository
	Venue      *VenueRepository
	Match      *MatchRepository
	User       *UserRepository
	db         *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		Tournament: NewTournamentRepository(conn.MySQL),
		Team:       NewTeamRepository(conn.MySQL),
		Venue:      NewVenueRepository(conn.MySQL),
		Match:      NewMatchRepository(conn.MySQL),
		User:       NewUserRepository(conn.MySQL),
		db:         conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
