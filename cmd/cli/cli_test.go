package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-tournament/external/cricketapi"
	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-tournament/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

func newAPIClient(t *testing.T) *cricketapi.Client {
	t.Helper()

	logger := logging.NewNop()
	users := memory.NewUserRepository()
	tournaments := memory.NewTournamentRepository()
	matches := memory.NewMatchRepository()
	ids := idgen.NewUUIDGenerator()

	handler := httpapi.NewHandler(
		usecase.NewUserService(users, ids, nil, logger),
		usecase.NewTournamentService(tournaments, matches, ids, logger),
		usecase.NewMatchService(matches, tournaments, ids, logger),
		usecase.NewDashboardService(users, tournaments, matches),
		"memory",
		logger,
	)
	srv := httptest.NewServer(httpapi.NewRouter(handler, httpapi.RouterConfig{Logger: logger}))
	t.Cleanup(srv.Close)

	return cricketapi.NewClient(cricketapi.ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Logger:     logger,
	})
}

func TestDemoRegistration_IsValidForEveryType(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		reg := demoRegistration(7, i)
		u := user.User{
			FullName:       reg.FullName,
			Email:          reg.Email,
			WhatsAppNumber: reg.WhatsAppNumber,
			State:          reg.State,
			District:       reg.District,
			Pincode:        reg.Pincode,
			Type:           reg.Type,
			BatsmanHanded:  reg.BatsmanHanded,
			BowlerHanded:   reg.BowlerHanded,
			BowlerType:     reg.BowlerType,
		}.Normalize()
		require.NoError(t, u.Validate(), "registration %d", i)

		assert.False(t, seen[reg.Email], "duplicate email %s", reg.Email)
		assert.False(t, seen[reg.WhatsAppNumber], "duplicate phone %s", reg.WhatsAppNumber)
		seen[reg.Email] = true
		seen[reg.WhatsAppNumber] = true
	}
}

func TestSeedRegistrations_CountsDuplicatesOnRerun(t *testing.T) {
	client := newAPIClient(t)
	ctx := context.Background()

	first, err := seedRegistrations(ctx, client, 9, 3, 42)
	require.NoError(t, err)
	assert.Equal(t, 9, first.Created)
	assert.Zero(t, first.Failed)

	second, err := seedRegistrations(ctx, client, 9, 3, 42)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, 9, second.Duplicates)

	stats, err := client.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, stats.TotalUsers)
	assert.Equal(t, 9, stats.PendingUsers)
}

func TestSeedRegistrations_RejectsZeroPlayers(t *testing.T) {
	_, err := seedRegistrations(context.Background(), newAPIClient(t), 0, 2, 1)
	assert.Error(t, err)
}

func TestRunSmoke_PassesAgainstServer(t *testing.T) {
	client := newAPIClient(t)
	var out bytes.Buffer

	err := runSmoke(context.Background(), client, &out, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err, out.String())
	assert.Contains(t, out.String(), "ok   delete tournament keeps matches")
	assert.NotContains(t, out.String(), "FAIL")

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalMatches)
}

func TestBreakerConfig_FollowsFlagsAndWorkers(t *testing.T) {
	prevThreshold, prevCooldown, prevDisabled := breakerThreshold, breakerCooldown, noBreaker
	t.Cleanup(func() {
		breakerThreshold, breakerCooldown, noBreaker = prevThreshold, prevCooldown, prevDisabled
	})

	breakerThreshold, breakerCooldown, noBreaker = 2, 30*time.Second, false
	cfg, err := breakerConfig(4)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 8, cfg.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.OpenTimeout)
	assert.Equal(t, 4, cfg.HalfOpenMaxReq)

	noBreaker = true
	cfg, err = breakerConfig(1)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)

	noBreaker, breakerThreshold = false, -1
	_, err = breakerConfig(1)
	assert.Error(t, err)
}
