package observability

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-tournament/internal/config"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

func TestProfileRouteGroups_LabelsRequestContext(t *testing.T) {
	var group string
	handler := ProfileRouteGroups(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		group, _ = pprof.Label(r.Context(), "route_group")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/tournaments/trn-1/status", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, RouteGroupTournaments, group)
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: config.EnvDev, ServiceName: "cricket-tournament-api", StorageDriver: config.StoragePostgres})
	assert.Equal(t, map[string]string{"env": config.EnvDev, "service": "cricket-tournament-api", "storage": config.StoragePostgres}, tags)
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, stop())
}

func TestPprofMux_ServesDebugRoutesOnly(t *testing.T) {
	mux := pprofMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, srv)
	assert.NoError(t, StopPprofServer(srv, nil, 0))
}
