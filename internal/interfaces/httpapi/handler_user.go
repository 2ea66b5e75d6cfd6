package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.Register(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "register user failed", err, "client_ip", resolveClientIP(r))
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(item))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	items, err := h.userService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list users failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, userToDTO))
}

func (h *Handler) ListUsersByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsersByStatus")
	defer span.End()

	status := r.PathValue("status")
	items, err := h.userService.ListByStatus(ctx, status)
	if err != nil {
		h.fail(ctx, w, "list users by status failed", err, "status", status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, userToDTO))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("id"))
	item, err := h.userService.Get(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "get user failed", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

// UpdateUser accepts a status-only body or any subset of registration fields.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("id"))
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.Update(ctx, req.toInput(userID))
	if err != nil {
		h.fail(ctx, w, "update user failed", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUserStatus")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("id"))
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req, statusRequestMessages); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.UpdateStatus(ctx, req.toUserInput(userID))
	if err != nil {
		h.fail(ctx, w, "update user status failed", err, "user_id", userID, "status", req.Status)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("id"))
	if err := h.userService.Delete(ctx, userID); err != nil {
		h.fail(ctx, w, "delete user failed", err, "user_id", userID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": userID, "message": "User deleted successfully"})
}
