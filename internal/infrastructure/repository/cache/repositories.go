package cache

import (
	"context"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	basecache "github.com/riskibarqy/cricket-tournament/internal/platform/cache"
)

const (
	tournamentPrefix = "tournament:"
	matchPrefix      = "match:"
)

// TournamentRepository caches tournament reads; every write drops all cached tournament keys.
type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	return r.cachedList(ctx, tournamentPrefix+"list", r.next.List)
}

func (r *TournamentRepository) ListByStatus(ctx context.Context, status string) ([]tournament.Tournament, error) {
	return r.cachedList(ctx, tournamentPrefix+"status:"+status, func(ctx context.Context) ([]tournament.Tournament, error) {
		return r.next.ListByStatus(ctx, status)
	})
}

func (r *TournamentRepository) cachedList(ctx context.Context, key string, load func(context.Context) ([]tournament.Tournament, error)) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	key := tournamentPrefix + "id:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cached.value, cached.exists, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	defer r.cache.DeletePrefix(ctx, tournamentPrefix)
	return r.next.Create(ctx, item)
}

func (r *TournamentRepository) Update(ctx context.Context, item tournament.Tournament) error {
	defer r.cache.DeletePrefix(ctx, tournamentPrefix)
	return r.next.Update(ctx, item)
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID string) error {
	defer r.cache.DeletePrefix(ctx, tournamentPrefix)
	return r.next.Delete(ctx, tournamentID)
}

// Count and CountByStatus feed the dashboard and always hit the store.
func (r *TournamentRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func (r *TournamentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	return r.next.CountByStatus(ctx, status)
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

// MatchRepository caches the per-tournament fixture list shown on the public page.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.next.List(ctx)
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, matchPrefix+"tournament:"+tournamentID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

func (r *MatchRepository) ListByStatus(ctx context.Context, status string) ([]match.Match, error) {
	return r.next.ListByStatus(ctx, status)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return r.next.GetByID(ctx, matchID)
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Create(ctx, item)
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Update(ctx, item)
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Delete(ctx, matchID)
}

func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		copied := item
		copied.Highlights = append([]string(nil), item.Highlights...)
		out = append(out, copied)
	}
	return out
}
