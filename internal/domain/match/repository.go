package match

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("match not found")

// Repository describes match persistence needs from use cases.
// List methods return matches by scheduled date, earliest first.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	ListByStatus(ctx context.Context, status string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID string) error
	Count(ctx context.Context) (int, error)
}
