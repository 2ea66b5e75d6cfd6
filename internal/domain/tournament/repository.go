package tournament

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("tournament not found")

// Repository describes tournament persistence needs from use cases.
// List methods return the most recently created tournaments first.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	ListByStatus(ctx context.Context, status string) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	Create(ctx context.Context, item Tournament) error
	Update(ctx context.Context, item Tournament) error
	Delete(ctx context.Context, tournamentID string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
