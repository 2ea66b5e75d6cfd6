package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	cases := map[string]string{
		"/api/register":                 RouteGroupUsers,
		"/api/users":                    RouteGroupUsers,
		"/api/users/usr-1/status":       RouteGroupUsers,
		"/api/usersx":                   RouteGroupSystem,
		"/api/tournaments/status/ended": RouteGroupTournaments,
		"/api/matches/tournament/trn-1": RouteGroupMatches,
		"/api/dashboard/stats":          RouteGroupDashboard,
		"/api/health":                   RouteGroupHealth,
		"/healthz":                      RouteGroupHealth,
		"/metrics":                      RouteGroupSystem,
	}
	for path, want := range cases {
		assert.Equal(t, want, RouteGroup(path), path)
	}
}

func TestMaskPII(t *testing.T) {
	got, masked := maskPII("email", "ravi.kumar@example.com")
	assert.True(t, masked)
	assert.Equal(t, "r***@example.com", got)

	got, _ = maskPII("whatsapp_number", "9876543210")
	assert.Equal(t, "******3210", got)

	got, _ = maskPII("client_ip", "not-an-ip")
	assert.Equal(t, "redacted", got)

	got, masked = maskPII("district", "Mysuru")
	assert.False(t, masked)
	assert.Equal(t, "Mysuru", got)
}
