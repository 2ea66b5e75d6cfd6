package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-tournament/internal/config"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

type betterStackSink struct {
	mu       sync.Mutex
	requests int
	auth     string
	records  []map[string]any
}

func (s *betterStackSink) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var batch []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			t.Errorf("decode batch: %v", err)
		}
		s.mu.Lock()
		s.requests++
		s.auth = r.Header.Get("Authorization")
		s.records = append(s.records, batch...)
		s.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})
}

func betterStackConfig(endpoint string) config.Config {
	return config.Config{
		BetterStackEnabled:  true,
		BetterStackEndpoint: endpoint,
		BetterStackToken:    "secret-token",
		BetterStackTimeout:  2 * time.Second,
		BetterStackMinLevel: logging.LevelWarn,
		ServiceName:         "cricket-tournament-api",
		AppEnv:              config.EnvDev,
		StorageDriver:       config.StorageMemory,
	}
}

func TestInitBetterStackLogger_ShipsMaskedBatch(t *testing.T) {
	sink := &betterStackSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackConfig(server.URL), logging.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	logger.WarnContext(ctx, "register user failed", "client_ip", "198.51.100.23", "error", assert.AnError)
	logger.ErrorContext(ctx, "list matches of deleted tournament failed", "tournament_id", "trn-karnataka-2026")
	logger.InfoContext(ctx, "user registered", "user_id", "usr-1")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, shutdown(shutdownCtx))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.GreaterOrEqual(t, sink.requests, 1)
	assert.Equal(t, "Bearer secret-token", sink.auth)
	require.Len(t, sink.records, 2)

	first := sink.records[0]
	assert.Equal(t, "register user failed", first["msg"])
	assert.Equal(t, "198.51.100.0", first["client_ip"])
	assert.Equal(t, "cricket-tournament-api", first["service"])
	assert.Equal(t, config.StorageMemory, first["storage"])
	assert.Equal(t, "trn-karnataka-2026", sink.records[1]["tournament_id"])
}

func TestInitBetterStackLogger_RespectsMinLevel(t *testing.T) {
	sink := &betterStackSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	logger, shutdown, err := InitBetterStackLogger(betterStackConfig(server.URL), logging.NewNop())
	require.NoError(t, err)

	logger.InfoContext(context.Background(), "tournament created", "tournament_id", "trn-1")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, shutdown(ctx))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Zero(t, sink.requests)
}

func TestInitBetterStackLogger_DisabledReturnsBase(t *testing.T) {
	base := logging.NewNop()
	logger, shutdown, err := InitBetterStackLogger(config.Config{}, base)
	require.NoError(t, err)
	assert.Same(t, base, logger)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNormalizeBetterStackEndpoint(t *testing.T) {
	assert.Equal(t, "https://in.logs.betterstack.com", normalizeBetterStackEndpoint(" in.logs.betterstack.com "))
	assert.Equal(t, "http://localhost:9000", normalizeBetterStackEndpoint("http://localhost:9000"))
	assert.Empty(t, normalizeBetterStackEndpoint(""))
}

func TestBetterStackShipper_PostsQueuedRecordsAsOneArray(t *testing.T) {
	sink := &betterStackSink{}
	server := httptest.NewServer(sink.handler(t))
	defer server.Close()

	shipper := newBetterStackShipper(server.URL, "", time.Second)
	for _, line := range []string{`{"msg":"match created"}`, `{"msg":"match status updated"}`, "  \n"} {
		_, err := shipper.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, shipper.Close(context.Background()))

	_, err := shipper.Write([]byte(`{"msg":"after close"}`))
	require.NoError(t, err)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, 1, sink.requests)
	require.Len(t, sink.records, 2)
	assert.Equal(t, "match status updated", sink.records[1]["msg"])
	assert.Empty(t, sink.auth)
}
