package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health is the API-prefixed probe used by the front-ends; it also reports the storage backend.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"status":  "ok",
		"storage": h.storageDriver,
		"time":    h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardStats")
	defer span.End()

	stats, err := h.dashboardService.Stats(ctx)
	if err != nil {
		h.fail(ctx, w, "get dashboard stats failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardStatsDTO{
		TotalUsers:        stats.TotalUsers,
		PendingUsers:      stats.PendingUsers,
		ApprovedUsers:     stats.ApprovedUsers,
		TotalTournaments:  stats.TotalTournaments,
		ActiveTournaments: stats.ActiveTournaments,
		TotalMatches:      stats.TotalMatches,
	})
}
