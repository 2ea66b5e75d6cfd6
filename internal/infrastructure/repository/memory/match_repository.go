package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(seed ...match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(seed))
	for _, item := range seed {
		items[item.ID] = cloneMatch(item)
	}
	return &MatchRepository{items: items}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	return r.filter(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	return r.filter(func(item match.Match) bool { return item.TournamentID == tournamentID }), nil
}

func (r *MatchRepository) ListByStatus(_ context.Context, status string) ([]match.Match, error) {
	return r.filter(func(item match.Match) bool { return item.Status == status }), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return match.ErrNotFound
	}
	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[matchID]; !ok {
		return match.ErrNotFound
	}
	delete(r.items, matchID)
	return nil
}

func (r *MatchRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *MatchRepository) filter(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, cloneMatch(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledDate.Equal(out[j].ScheduledDate) {
			return out[i].ScheduledDate.Before(out[j].ScheduledDate)
		}
		if out[i].MatchNumber != out[j].MatchNumber {
			return out[i].MatchNumber < out[j].MatchNumber
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func cloneMatch(item match.Match) match.Match {
	copied := item
	copied.Highlights = append([]string(nil), item.Highlights...)
	return copied
}
