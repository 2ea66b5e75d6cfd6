package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.Health)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/dashboard/stats", handler.GetDashboardStats)
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/users", handler.ListUsers)
	mux.HandleFunc("POST /api/users", handler.RegisterUser)
	mux.HandleFunc("POST /api/register", handler.RegisterUser)
	mux.HandleFunc("GET /api/users/status/{status}", handler.ListUsersByStatus)
	mux.HandleFunc("GET /api/users/{id}", handler.GetUser)
	mux.HandleFunc("PUT /api/users/{id}", handler.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", handler.DeleteUser)
	mux.HandleFunc("PATCH /api/users/{id}/status", handler.UpdateUserStatus)
	mux.HandleFunc("PUT /api/users/{id}/status", handler.UpdateUserStatus)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/tournaments", handler.ListTournaments)
	mux.HandleFunc("POST /api/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /api/tournaments/status/{status}", handler.ListTournamentsByStatus)
	mux.HandleFunc("GET /api/tournaments/{id}", handler.GetTournament)
	mux.HandleFunc("PUT /api/tournaments/{id}", handler.UpdateTournament)
	mux.HandleFunc("DELETE /api/tournaments/{id}", handler.DeleteTournament)
	mux.HandleFunc("PATCH /api/tournaments/{id}/status", handler.UpdateTournamentStatus)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("POST /api/matches", handler.CreateMatch)
	mux.HandleFunc("GET /api/matches/tournament/{id}", handler.ListMatchesByTournament)
	mux.HandleFunc("GET /api/matches/status/{status}", handler.ListMatchesByStatus)
	mux.HandleFunc("GET /api/matches/{id}", handler.GetMatch)
	mux.HandleFunc("PUT /api/matches/{id}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/matches/{id}", handler.DeleteMatch)
	mux.HandleFunc("PATCH /api/matches/{id}/status", handler.UpdateMatchStatus)
}
