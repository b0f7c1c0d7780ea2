package httpapi

import (
	"net/http"

	"github.com/riskibarqy/octofit-tracker/internal/usecase"
)

func (h *Handler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboard")
	defer span.End()

	entries, err := h.leaderboardService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(entries, leaderboardToDTO))
}

func (h *Handler) ListTopUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopUsers")
	defer span.End()

	limit, err := parseLimit(r.URL.Query().Get("limit"), usecase.DefaultTopUsersLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.leaderboardService.TopUsers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list top users failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(entries, leaderboardToDTO))
}

func (h *Handler) ListLeaderboardByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaderboardByTeam")
	defer span.End()

	teamName := r.URL.Query().Get("team")
	entries, err := h.leaderboardService.ListByTeam(ctx, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboard by team failed", "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(entries, leaderboardToDTO))
}

func (h *Handler) RecomputeLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeLeaderboard")
	defer span.End()

	entries, err := h.leaderboardService.Recompute(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(entries, leaderboardToDTO))
}

func (h *Handler) GetLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardEntry")
	defer span.End()

	entryID := r.PathValue("id")
	item, err := h.leaderboardService.Get(ctx, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard entry failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(item))
}

func (h *Handler) CreateLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeaderboardEntry")
	defer span.End()

	var req leaderboardRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leaderboardService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create leaderboard entry failed", "user", req.User, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leaderboardToDTO(item))
}

func (h *Handler) UpdateLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLeaderboardEntry")
	defer span.End()

	entryID := r.PathValue("id")
	var req leaderboardRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leaderboardService.Update(ctx, entryID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update leaderboard entry failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(item))
}

func (h *Handler) DeleteLeaderboardEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeaderboardEntry")
	defer span.End()

	entryID := r.PathValue("id")
	if err := h.leaderboardService.Delete(ctx, entryID); err != nil {
		h.logger.WarnContext(ctx, "delete leaderboard entry failed", "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Deleted: true})
}
