package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/cricket-tournament/internal/platform/cache"
)

type countingTournaments struct {
	tournament.Repository
	lists int
	gets  int
}

func (c *countingTournaments) List(ctx context.Context) ([]tournament.Tournament, error) {
	c.lists++
	return c.Repository.List(ctx)
}

func (c *countingTournaments) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func TestTournamentRepository_CachesReadsAndInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	backing := &countingTournaments{Repository: memory.NewTournamentRepository(memory.SeedTournaments()...)}
	repo := NewTournamentRepository(backing, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := repo.List(ctx); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if backing.lists != 1 {
		t.Fatalf("expected one backing list call, got %d", backing.lists)
	}

	item, ok, err := repo.GetByID(ctx, memory.TournamentIDMysuruPremier)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	item.Status = tournament.StatusCompleted
	if err := repo.Update(ctx, item); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _, _ := repo.GetByID(ctx, memory.TournamentIDMysuruPremier)
	if got.Status != tournament.StatusCompleted {
		t.Fatalf("expected fresh read after update, got %q", got.Status)
	}
	if backing.gets != 2 {
		t.Fatalf("expected reload after invalidation, got %d gets", backing.gets)
	}

	if err := repo.Delete(ctx, memory.TournamentIDMysuruPremier); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.GetByID(ctx, memory.TournamentIDMysuruPremier); ok {
		t.Fatalf("expected deleted tournament to be gone")
	}
}

func TestTournamentRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTournamentRepository(memory.NewTournamentRepository(memory.SeedTournaments()...), basecache.NewStore(time.Minute))

	items, _ := repo.List(ctx)
	items[0].Title = "mutated"

	again, _ := repo.List(ctx)
	if again[0].Title == "mutated" {
		t.Fatalf("expected cached slice to be isolated from callers")
	}
}

func TestMatchRepository_InvalidatesTournamentListOnCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(memory.NewMatchRepository(memory.SeedMatches()...), basecache.NewStore(time.Minute))

	before, _ := repo.ListByTournament(ctx, memory.TournamentIDKarnatakaOpen)
	if err := repo.Create(ctx, match.Match{
		ID:            "mch-kao-003",
		TournamentID:  memory.TournamentIDKarnatakaOpen,
		MatchNumber:   3,
		ScheduledDate: time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	after, _ := repo.ListByTournament(ctx, memory.TournamentIDKarnatakaOpen)
	if len(after) != len(before)+1 {
		t.Fatalf("expected list to reflect new match, before=%d after=%d", len(before), len(after))
	}
}

// slowFirstGet reads the backing row, then holds the first GetByID until released.
type slowFirstGet struct {
	tournament.Repository
	blocked atomic.Bool
	started chan struct{}
	release chan struct{}
}

func (s *slowFirstGet) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	item, ok, err := s.Repository.GetByID(ctx, id)
	if s.blocked.CompareAndSwap(false, true) {
		close(s.started)
		<-s.release
	}
	return item, ok, err
}

func TestTournamentRepository_WriteDuringInFlightReadIsNotCachedStale(t *testing.T) {
	ctx := context.Background()
	backing := &slowFirstGet{
		Repository: memory.NewTournamentRepository(memory.SeedTournaments()...),
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	repo := NewTournamentRepository(backing, basecache.NewStore(time.Minute))

	type result struct {
		item tournament.Tournament
		err  error
	}
	slowRead := make(chan result, 1)
	go func() {
		item, _, err := repo.GetByID(ctx, memory.TournamentIDMysuruPremier)
		slowRead <- result{item: item, err: err}
	}()
	<-backing.started

	current, _, err := backing.Repository.GetByID(ctx, memory.TournamentIDMysuruPremier)
	if err != nil {
		t.Fatalf("read backing: %v", err)
	}
	current.Status = tournament.StatusCompleted
	if err := repo.Update(ctx, current); err != nil {
		t.Fatalf("update: %v", err)
	}

	close(backing.release)
	old := <-slowRead
	if old.err != nil {
		t.Fatalf("slow read: %v", old.err)
	}
	if old.item.Status == tournament.StatusCompleted {
		t.Fatalf("slow read should have observed the row before the update")
	}

	got, ok, err := repo.GetByID(ctx, memory.TournamentIDMysuruPremier)
	if err != nil || !ok {
		t.Fatalf("get after update: ok=%v err=%v", ok, err)
	}
	if got.Status != tournament.StatusCompleted {
		t.Fatalf("expected status %q after update, got %q", tournament.StatusCompleted, got.Status)
	}
}
