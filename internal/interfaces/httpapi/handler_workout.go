package httpapi

import "net/http"

func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWorkouts")
	defer span.End()

	workouts, err := h.workoutService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list workouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(workouts, workoutToDTO))
}

func (h *Handler) ListWorkoutsByDifficulty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWorkoutsByDifficulty")
	defer span.End()

	difficulty := r.URL.Query().Get("difficulty")
	workouts, err := h.workoutService.ListByDifficulty(ctx, difficulty)
	if err != nil {
		h.logger.WarnContext(ctx, "list workouts by difficulty failed", "difficulty", difficulty, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(workouts, workoutToDTO))
}

func (h *Handler) ListWorkoutsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWorkoutsByCategory")
	defer span.End()

	category := r.URL.Query().Get("category")
	workouts, err := h.workoutService.ListByCategory(ctx, category)
	if err != nil {
		h.logger.WarnContext(ctx, "list workouts by category failed", "category", category, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(workouts, workoutToDTO))
}

func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWorkout")
	defer span.End()

	workoutID := r.PathValue("id")
	item, err := h.workoutService.Get(ctx, workoutID)
	if err != nil {
		h.logger.WarnContext(ctx, "get workout failed", "workout_id", workoutID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, workoutToDTO(item))
}

func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWorkout")
	defer span.End()

	var req workoutRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.workoutService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create workout failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, workoutToDTO(item))
}

func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWorkout")
	defer span.End()

	workoutID := r.PathValue("id")
	var req workoutRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.workoutService.Update(ctx, workoutID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update workout failed", "workout_id", workoutID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, workoutToDTO(item))
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteWorkout")
	defer span.End()

	workoutID := r.PathValue("id")
	if err := h.workoutService.Delete(ctx, workoutID); err != nil {
		h.logger.WarnContext(ctx, "delete workout failed", "workout_id", workoutID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Deleted: true})
}
