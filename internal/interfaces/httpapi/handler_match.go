package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "create match failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	items, err := h.matchService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) ListMatchesByTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("id"))
	items, err := h.matchService.ListByTournament(ctx, tournamentID)
	if err != nil {
		h.fail(ctx, w, "list matches by tournament failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) ListMatchesByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByStatus")
	defer span.End()

	status := r.PathValue("status")
	items, err := h.matchService.ListByStatus(ctx, status)
	if err != nil {
		h.fail(ctx, w, "list matches by status failed", err, "status", status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, matchToDTO))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("id"))
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("id"))
	var req matchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, req.toUpdateInput(matchID))
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("id"))
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, statusRequestMessages); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateStatus(ctx, matchID, req.Status)
	if err != nil {
		h.fail(ctx, w, "update match status failed", err, "match_id", matchID, "status", req.Status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("id"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID, "message": "Match deleted successfully"})
}
