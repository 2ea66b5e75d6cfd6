package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"

	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

func attrMap(attrs []otellog.KeyValue) map[string]otellog.Value {
	out := make(map[string]otellog.Value, len(attrs))
	for _, kv := range attrs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestShouldSkipUptraceLog(t *testing.T) {
	cases := []struct {
		msg  string
		path string
		skip bool
	}{
		{msg: "http_request", path: "/healthz", skip: true},
		{msg: "http_request", path: "/api/health", skip: true},
		{msg: "http_request", path: "/metrics", skip: true},
		{msg: "http_request", path: "/docs/index.html", skip: true},
		{msg: "http_request", path: "/api/users", skip: false},
		{msg: "http_request", path: "/api/register", skip: false},
		{msg: "tournament created", path: "/healthz", skip: false},
	}
	for _, tc := range cases {
		got := shouldSkipUptraceLog(tc.msg, []any{"http_method", "GET", "http_path", tc.path})
		assert.Equal(t, tc.skip, got, "%s %s", tc.msg, tc.path)
	}
}

func TestMirrorRecord_DomainEvent(t *testing.T) {
	name, attrs := mirrorRecord("tournament status updated", []any{
		"tournament_id", "trn-karnataka-2026",
		"from", "upcoming",
		"to", "completed",
	})

	assert.Equal(t, "cricket.tournament.status_changed", name)
	got := attrMap(attrs)
	assert.Equal(t, "trn-karnataka-2026", got["tournament_id"].AsString())
	assert.Equal(t, "completed", got["to"].AsString())
	assert.Equal(t, "tournament", got["cricket.entity"].AsString())
	assert.Equal(t, "status_changed", got["cricket.action"].AsString())
}

func TestMirrorRecord_RequestLogMasksClientIP(t *testing.T) {
	name, attrs := mirrorRecord("http_request", []any{
		"http_method", "POST",
		"http_path", "/api/register",
		"http_status", 201,
		"client_ip", "203.0.113.77",
		"duration_ms", int64(12),
	})

	assert.Equal(t, "http_request", name)
	got := attrMap(attrs)
	assert.Equal(t, RouteGroupUsers, got["route_group"].AsString())
	assert.Equal(t, "203.0.113.0", got["client_ip"].AsString())
	assert.Equal(t, int64(201), got["http_status"].AsInt64())
	assert.Equal(t, int64(12), got["duration_ms"].AsInt64())
}

func TestMirrorRecord_RegistrationRejected(t *testing.T) {
	name, attrs := mirrorRecord("register user failed", []any{
		"client_ip", "2001:db8:abcd:12::1",
		"error", errors.New("email already exists"),
	})

	assert.Equal(t, "cricket.user.registration_rejected", name)
	got := attrMap(attrs)
	assert.Equal(t, "2001:db8:abcd::", got["client_ip"].AsString())
	assert.Equal(t, "email already exists", got["error"].AsString())
}

func TestBuildOTelLogAttributes(t *testing.T) {
	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	attrs := buildOTelLogAttributes([]any{"registration_deadline", deadline, "orphaned_matches", 2, "dangling"})
	require.Len(t, attrs, 3)

	assert.Equal(t, "2026-04-01T00:00:00Z", attrs[0].Value.AsString())
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, "dangling", attrs[2].Key)
	assert.Equal(t, otellog.KindEmpty, attrs[2].Value.Kind())
}

func TestToOTelSeverity(t *testing.T) {
	assert.Equal(t, otellog.SeverityInfo, toOTelSeverity(logging.LevelInfo))
	assert.Equal(t, otellog.SeverityWarn, toOTelSeverity(logging.LevelWarn))
	assert.Equal(t, otellog.SeverityError, toOTelSeverity(logging.LevelError))
	assert.Equal(t, otellog.SeverityDebug, toOTelSeverity(logging.LevelDebug))
}
