package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
)

type TournamentRepository struct {
	mu    sync.RWMutex
	items map[string]tournament.Tournament
}

func NewTournamentRepository(seed ...tournament.Tournament) *TournamentRepository {
	items := make(map[string]tournament.Tournament, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &TournamentRepository{items: items}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	return r.filter(func(tournament.Tournament) bool { return true }), nil
}

func (r *TournamentRepository) ListByStatus(_ context.Context, status string) ([]tournament.Tournament, error) {
	return r.filter(func(item tournament.Tournament) bool { return item.Status == status }), nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[tournamentID]
	return item, ok, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *TournamentRepository) Update(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return tournament.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *TournamentRepository) Delete(_ context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[tournamentID]; !ok {
		return tournament.ErrNotFound
	}
	delete(r.items, tournamentID)
	return nil
}

func (r *TournamentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *TournamentRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, item := range r.items {
		if item.Status == status {
			total++
		}
	}
	return total, nil
}

func (r *TournamentRepository) filter(keep func(tournament.Tournament) bool) []tournament.Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
