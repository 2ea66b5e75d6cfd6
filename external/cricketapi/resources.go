package cricketapi

import (
	"context"
	"net/http"
)

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &out)
	return out, err
}

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out)
	return out, err
}

// Register submits a public player registration.
func (c *Client) Register(ctx context.Context, in Registration) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/api/register", in, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, &out)
	return out, err
}

func (c *Client) ListUsersByStatus(ctx context.Context, status string) ([]User, error) {
	var out []User
	err := c.do(ctx, http.MethodGet, "/api/users/status/"+escape(status), nil, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/users/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) SetUserStatus(ctx context.Context, id string, change StatusChange) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/api/users/"+escape(id)+"/status", change, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+escape(id), nil, nil)
}

func (c *Client) CreateTournament(ctx context.Context, in Tournament) (Tournament, error) {
	var out Tournament
	err := c.do(ctx, http.MethodPost, "/api/tournaments", in, &out)
	return out, err
}

func (c *Client) ListTournaments(ctx context.Context) ([]Tournament, error) {
	var out []Tournament
	err := c.do(ctx, http.MethodGet, "/api/tournaments", nil, &out)
	return out, err
}

func (c *Client) GetTournament(ctx context.Context, id string) (Tournament, error) {
	var out Tournament
	err := c.do(ctx, http.MethodGet, "/api/tournaments/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) SetTournamentStatus(ctx context.Context, id, status string) (Tournament, error) {
	var out Tournament
	err := c.do(ctx, http.MethodPatch, "/api/tournaments/"+escape(id)+"/status", StatusChange{Status: status}, &out)
	return out, err
}

func (c *Client) DeleteTournament(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tournaments/"+escape(id), nil, nil)
}

func (c *Client) CreateMatch(ctx context.Context, in Match) (Match, error) {
	var out Match
	err := c.do(ctx, http.MethodPost, "/api/matches", in, &out)
	return out, err
}

func (c *Client) ListMatchesByTournament(ctx context.Context, tournamentID string) ([]Match, error) {
	var out []Match
	err := c.do(ctx, http.MethodGet, "/api/matches/tournament/"+escape(tournamentID), nil, &out)
	return out, err
}

func (c *Client) DeleteMatch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/matches/"+escape(id), nil, nil)
}
