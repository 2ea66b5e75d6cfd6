package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/cricket-tournament/internal/domain/match"
	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
)

// DashboardStats are the admin landing page aggregates.
type DashboardStats struct {
	TotalUsers        int
	PendingUsers      int
	ApprovedUsers     int
	TotalTournaments  int
	ActiveTournaments int
	TotalMatches      int
}

type DashboardService struct {
	userRepo       user.Repository
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
}

func NewDashboardService(
	userRepo user.Repository,
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
	}
}

// Stats runs every count concurrently and fails on the first error.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Stats")
	defer span.End()

	var out DashboardStats
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(countInto(&out.TotalUsers, "count users", s.userRepo.Count))
	p.Go(countInto(&out.PendingUsers, "count pending users", func(ctx context.Context) (int, error) {
		return s.userRepo.CountByStatus(ctx, user.StatusPending)
	}))
	p.Go(countInto(&out.ApprovedUsers, "count approved users", func(ctx context.Context) (int, error) {
		return s.userRepo.CountByStatus(ctx, user.StatusApproved)
	}))
	p.Go(countInto(&out.TotalTournaments, "count tournaments", s.tournamentRepo.Count))
	p.Go(countInto(&out.ActiveTournaments, "count active tournaments", func(ctx context.Context) (int, error) {
		return s.tournamentRepo.CountByStatus(ctx, tournament.StatusActive)
	}))
	p.Go(countInto(&out.TotalMatches, "count matches", s.matchRepo.Count))

	if err := p.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}

func countInto(dst *int, op string, fn func(context.Context) (int, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := fn(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*dst = n
		return nil
	}
}
