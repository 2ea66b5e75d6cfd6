package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/cricket-tournament/internal/mocks/domain/match"
	tournamentmock "github.com/riskibarqy/cricket-tournament/internal/mocks/domain/tournament"
	usermock "github.com/riskibarqy/cricket-tournament/internal/mocks/domain/user"
)

func TestDashboardService_StatsFromSeed(t *testing.T) {
	svc := NewDashboardService(
		memory.NewUserRepository(memory.SeedUsers()...),
		memory.NewTournamentRepository(memory.SeedTournaments()...),
		memory.NewMatchRepository(memory.SeedMatches()...),
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	want := DashboardStats{
		TotalUsers:        2,
		PendingUsers:      1,
		ApprovedUsers:     1,
		TotalTournaments:  2,
		ActiveTournaments: 1,
		TotalMatches:      2,
	}
	if stats != want {
		t.Fatalf("unexpected stats: got %+v want %+v", stats, want)
	}
}

func TestDashboardService_StatsFailsOnCountErrorUsingMockery(t *testing.T) {
	t.Parallel()

	users := usermock.NewRepository(t)
	tournaments := tournamentmock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	svc := NewDashboardService(users, tournaments, matches)

	boom := errors.New("database is down")
	users.On("Count", mock.Anything).Return(0, boom).Maybe()
	users.On("CountByStatus", mock.Anything, user.StatusPending).Return(3, nil).Maybe()
	users.On("CountByStatus", mock.Anything, user.StatusApproved).Return(4, nil).Maybe()
	tournaments.On("Count", mock.Anything).Return(2, nil).Maybe()
	tournaments.On("CountByStatus", mock.Anything, mock.Anything).Return(1, nil).Maybe()
	matches.On("Count", mock.Anything).Return(5, nil).Maybe()

	_, err := svc.Stats(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected count error, got %v", err)
	}
}
