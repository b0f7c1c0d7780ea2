package httpapi

import "net/http"

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivities")
	defer span.End()

	activities, err := h.activityService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list activities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(activities, activityToDTO))
}

func (h *Handler) ListActivitiesByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivitiesByUser")
	defer span.End()

	username := r.URL.Query().Get("user")
	activities, err := h.activityService.ListByUser(ctx, username)
	if err != nil {
		h.logger.WarnContext(ctx, "list activities by user failed", "user", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(activities, activityToDTO))
}

func (h *Handler) ListActivitiesByType(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivitiesByType")
	defer span.End()

	activityType := r.URL.Query().Get("type")
	activities, err := h.activityService.ListByType(ctx, activityType)
	if err != nil {
		h.logger.WarnContext(ctx, "list activities by type failed", "type", activityType, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(activities, activityToDTO))
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActivity")
	defer span.End()

	activityID := r.PathValue("id")
	item, err := h.activityService.Get(ctx, activityID)
	if err != nil {
		h.logger.WarnContext(ctx, "get activity failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, activityToDTO(item))
}

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateActivity")
	defer span.End()

	var req activityRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.activityService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create activity failed", "user", req.User, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, activityToDTO(item))
}

func (h *Handler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateActivity")
	defer span.End()

	activityID := r.PathValue("id")
	var req activityRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.activityService.Update(ctx, activityID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update activity failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, activityToDTO(item))
}

func (h *Handler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteActivity")
	defer span.End()

	activityID := r.PathValue("id")
	if err := h.activityService.Delete(ctx, activityID); err != nil {
		h.logger.WarnContext(ctx, "delete activity failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Deleted: true})
}
