package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-tournament/internal/domain/tournament"
)

func (h *Handler) tournamentDTO(v tournament.Tournament) tournamentDTO {
	return tournamentToDTO(v, h.now())
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req tournamentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.Create(ctx, req.toDomain())
	if err != nil {
		h.fail(ctx, w, "create tournament failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, h.tournamentDTO(item))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.tournamentService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list tournaments failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, h.tournamentDTO))
}

func (h *Handler) ListTournamentsByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentsByStatus")
	defer span.End()

	status := r.PathValue("status")
	items, err := h.tournamentService.ListByStatus(ctx, status)
	if err != nil {
		h.fail(ctx, w, "list tournaments by status failed", err, "status", status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, h.tournamentDTO))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("id"))
	item, err := h.tournamentService.Get(ctx, tournamentID)
	if err != nil {
		h.fail(ctx, w, "get tournament failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.tournamentDTO(item))
}

func (h *Handler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("id"))
	var req tournamentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.Update(ctx, req.toUpdateInput(tournamentID))
	if err != nil {
		h.fail(ctx, w, "update tournament failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.tournamentDTO(item))
}

func (h *Handler) UpdateTournamentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournamentStatus")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("id"))
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, statusRequestMessages); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.tournamentService.UpdateStatus(ctx, tournamentID, req.Status)
	if err != nil {
		h.fail(ctx, w, "update tournament status failed", err, "tournament_id", tournamentID, "status", req.Status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, h.tournamentDTO(item))
}

func (h *Handler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("id"))
	if err := h.tournamentService.Delete(ctx, tournamentID); err != nil {
		h.fail(ctx, w, "delete tournament failed", err, "tournament_id", tournamentID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": tournamentID, "message": "Tournament deleted successfully"})
}
