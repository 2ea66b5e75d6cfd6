package observability

import (
	"net"
	"strings"
)

const requestLogMessage = "http_request"

// Route groups label profiles and request logs.
const (
	RouteGroupUsers       = "users"
	RouteGroupTournaments = "tournaments"
	RouteGroupMatches     = "matches"
	RouteGroupDashboard   = "dashboard"
	RouteGroupHealth      = "health"
	RouteGroupSystem      = "system"
)

// RouteGroup maps a request path to the resource it serves.
func RouteGroup(path string) string {
	switch {
	case path == "/api/register" || hasSegmentPrefix(path, "/api/users"):
		return RouteGroupUsers
	case hasSegmentPrefix(path, "/api/tournaments"):
		return RouteGroupTournaments
	case hasSegmentPrefix(path, "/api/matches"):
		return RouteGroupMatches
	case hasSegmentPrefix(path, "/api/dashboard"):
		return RouteGroupDashboard
	case path == "/api/health" || path == "/healthz":
		return RouteGroupHealth
	default:
		return RouteGroupSystem
	}
}

func hasSegmentPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

type domainEvent struct {
	entity string
	action string
}

func (e domainEvent) name() string {
	return "cricket." + e.entity + "." + e.action
}

// domainEvents names the records the use cases and handlers emit.
var domainEvents = map[string]domainEvent{
	"user registered":                                 {entity: "user", action: "registered"},
	"register user failed":                            {entity: "user", action: "registration_rejected"},
	"user status updated":                             {entity: "user", action: "status_changed"},
	"user deleted":                                    {entity: "user", action: "deleted"},
	"tournament created":                              {entity: "tournament", action: "created"},
	"tournament status updated":                       {entity: "tournament", action: "status_changed"},
	"tournament deleted":                              {entity: "tournament", action: "deleted"},
	"registration deadline is after tournament start": {entity: "tournament", action: "late_deadline"},
	"match created":                                   {entity: "match", action: "created"},
	"match status updated":                            {entity: "match", action: "status_changed"},
}

func lookupDomainEvent(msg string) (domainEvent, bool) {
	event, ok := domainEvents[msg]
	return event, ok
}

// piiMaskers rewrite registrant details before a record leaves the process.
var piiMaskers = map[string]func(string) string{
	"client_ip":       maskClientIP,
	"email":           maskEmail,
	"whatsapp_number": maskPhone,
}

func maskPII(key, value string) (string, bool) {
	mask, ok := piiMaskers[key]
	if !ok {
		return value, false
	}
	return mask(value), true
}

// maskClientIP keeps the /24 of an IPv4 address and the /48 of an IPv6 address.
func maskClientIP(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil {
		return "redacted"
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return ip.Mask(net.CIDRMask(48, 128)).String()
}

func maskEmail(raw string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(raw), "@")
	if !ok || local == "" {
		return "redacted"
	}
	return local[:1] + "***@" + domain
}

func maskPhone(raw string) string {
	digits := strings.TrimSpace(raw)
	if len(digits) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
