package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

func newTestMatchService() *MatchService {
	return NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()...),
		memory.NewTournamentRepository(memory.SeedTournaments()...),
		&idgen.Sequence{Prefix: "mch-"},
		nil,
	)
}

func sampleMatch() match.Match {
	return match.Match{
		TournamentID:  memory.TournamentIDMysuruPremier,
		MatchNumber:   1,
		TeamA:         "Mysuru Warriors",
		TeamB:         "Mandya Kings",
		ScheduledDate: time.Date(2025, 12, 1, 14, 0, 0, 0, time.UTC),
		Venue:         "Gangothri Grounds, Mysuru",
	}
}

func TestMatchService_CreateDefaultsAndListsByTournament(t *testing.T) {
	ctx := context.Background()
	svc := newTestMatchService()

	created, err := svc.Create(ctx, sampleMatch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "mch-1" || created.Status != match.StatusUpcoming || created.MatchType != match.TypeLeague {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	items, err := svc.ListByTournament(ctx, memory.TournamentIDMysuruPremier)
	if err != nil {
		t.Fatalf("list by tournament: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Fatalf("unexpected matches: %+v", items)
	}
}

func TestMatchService_CreateRequiresExistingTournament(t *testing.T) {
	svc := newTestMatchService()

	input := sampleMatch()
	input.TournamentID = "trn-missing"

	_, err := svc.Create(context.Background(), input)
	var verr validation.Errors
	if !errors.Is(err, ErrInvalidInput) || !errors.As(err, &verr) || !verr.Has("tournamentId") {
		t.Fatalf("expected tournamentId violation, got %v", err)
	}
}

func TestMatchService_CreateRejectsSameTeams(t *testing.T) {
	svc := newTestMatchService()

	input := sampleMatch()
	input.TeamB = input.TeamA

	_, err := svc.Create(context.Background(), input)
	var verr validation.Errors
	if !errors.As(err, &verr) || !verr.Has("teamB") {
		t.Fatalf("expected teamB violation, got %v", err)
	}
}

func TestMatchService_StatusFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestMatchService()

	started, err := svc.UpdateStatus(ctx, "mch-kao-002", "in progress")
	if err != nil {
		t.Fatalf("start match: %v", err)
	}
	if started.Status != match.StatusInProgress {
		t.Fatalf("expected in_progress, got %q", started.Status)
	}

	winner := "Mysuru Warriors"
	margin := "4 wickets"
	completed := match.StatusCompleted
	score := match.Score{Runs: 180, Wickets: 6, Overs: 20}
	ended, err := svc.Update(ctx, UpdateMatchInput{ID: "mch-kao-002", Status: &completed, Winner: &winner, Margin: &margin, TeamBScore: &score})
	if err != nil {
		t.Fatalf("complete match: %v", err)
	}
	if got := ended.Result(); got != "Mysuru Warriors won by 4 wickets" {
		t.Fatalf("unexpected result line: %q", got)
	}

	cancelled, err := svc.UpdateStatus(ctx, "mch-kao-002", "cancelled")
	if err != nil {
		t.Fatalf("cancel completed match: %v", err)
	}
	if cancelled.Status != match.StatusCancelled {
		t.Fatalf("expected cancelled, got %q", cancelled.Status)
	}
	if cancelled.Winner != "" || cancelled.Margin != "" || cancelled.ManOfTheMatch != "" {
		t.Fatalf("expected result details cleared, got winner=%q margin=%q motm=%q", cancelled.Winner, cancelled.Margin, cancelled.ManOfTheMatch)
	}
	if cancelled.TeamBScore != score {
		t.Fatalf("expected scores kept, got %+v", cancelled.TeamBScore)
	}

	reopened, err := svc.UpdateStatus(ctx, "mch-kao-002", match.StatusUpcoming)
	if err != nil {
		t.Fatalf("reopen match: %v", err)
	}
	stored, err := svc.Get(ctx, "mch-kao-002")
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.Status != reopened.Status || stored.Winner != "" {
		t.Fatalf("expected stored match upcoming without winner, got %+v", stored)
	}

	if _, err := svc.UpdateStatus(ctx, "mch-kao-002", "abandoned"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown status rejected, got %v", err)
	}
}

func TestMatchService_ListByTournamentAfterTournamentDeleted(t *testing.T) {
	ctx := context.Background()
	svc := newTestMatchService()

	if err := svc.tournamentRepo.Delete(ctx, memory.TournamentIDKarnatakaOpen); err != nil {
		t.Fatalf("delete tournament: %v", err)
	}

	items, err := svc.ListByTournament(ctx, memory.TournamentIDKarnatakaOpen)
	if err != nil {
		t.Fatalf("list orphaned matches: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected orphaned matches to stay listed, got %d", len(items))
	}
}

func TestMatchService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestMatchService()

	if err := svc.Delete(ctx, "mch-kao-001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "mch-kao-001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
