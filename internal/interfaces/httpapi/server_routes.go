package httpapi

import (
	"net/http"
	"strings"
)

// handleCollection registers path (which ends in "/") both with and without the
// trailing slash, each matching exactly.
func handleCollection(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(method+" "+path+"{$}", h)
	mux.HandleFunc(method+" "+strings.TrimSuffix(path, "/"), h)
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Discovery)
	handleCollection(mux, http.MethodGet, "/api/", handler.Discovery)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler) {
	handleCollection(mux, http.MethodGet, "/api/users/", handler.ListUsers)
	handleCollection(mux, http.MethodPost, "/api/users/", handler.CreateUser)
	handleCollection(mux, http.MethodGet, "/api/users/by_team/", handler.ListUsersByTeam)
	handleCollection(mux, http.MethodGet, "/api/users/{id}/", handler.GetUser)
	handleCollection(mux, http.MethodPut, "/api/users/{id}/", handler.UpdateUser)
	handleCollection(mux, http.MethodDelete, "/api/users/{id}/", handler.DeleteUser)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	handleCollection(mux, http.MethodGet, "/api/teams/", handler.ListTeams)
	handleCollection(mux, http.MethodPost, "/api/teams/", handler.CreateTeam)
	handleCollection(mux, http.MethodGet, "/api/teams/{id}/", handler.GetTeam)
	handleCollection(mux, http.MethodPut, "/api/teams/{id}/", handler.UpdateTeam)
	handleCollection(mux, http.MethodDelete, "/api/teams/{id}/", handler.DeleteTeam)
	handleCollection(mux, http.MethodPost, "/api/teams/{id}/add_member/", handler.AddTeamMember)
	handleCollection(mux, http.MethodPost, "/api/teams/{id}/remove_member/", handler.RemoveTeamMember)
}

func registerActivityRoutes(mux *http.ServeMux, handler *Handler) {
	handleCollection(mux, http.MethodGet, "/api/activities/", handler.ListActivities)
	handleCollection(mux, http.MethodPost, "/api/activities/", handler.CreateActivity)
	handleCollection(mux, http.MethodGet, "/api/activities/by_user/", handler.ListActivitiesByUser)
	handleCollection(mux, http.MethodGet, "/api/activities/by_type/", handler.ListActivitiesByType)
	handleCollection(mux, http.MethodGet, "/api/activities/{id}/", handler.GetActivity)
	handleCollection(mux, http.MethodPut, "/api/activities/{id}/", handler.UpdateActivity)
	handleCollection(mux, http.MethodDelete, "/api/activities/{id}/", handler.DeleteActivity)
}

func registerLeaderboardRoutes(mux *http.ServeMux, handler *Handler) {
	handleCollection(mux, http.MethodGet, "/api/leaderboard/", handler.ListLeaderboard)
	handleCollection(mux, http.MethodPost, "/api/leaderboard/", handler.CreateLeaderboardEntry)
	handleCollection(mux, http.MethodGet, "/api/leaderboard/top_users/", handler.ListTopUsers)
	handleCollection(mux, http.MethodGet, "/api/leaderboard/by_team/", handler.ListLeaderboardByTeam)
	handleCollection(mux, http.MethodPost, "/api/leaderboard/recompute/", handler.RecomputeLeaderboard)
	handleCollection(mux, http.MethodGet, "/api/leaderboard/{id}/", handler.GetLeaderboardEntry)
	handleCollection(mux, http.MethodPut, "/api/leaderboard/{id}/", handler.UpdateLeaderboardEntry)
	handleCollection(mux, http.MethodDelete, "/api/leaderboard/{id}/", handler.DeleteLeaderboardEntry)
}

func registerWorkoutRoutes(mux *http.ServeMux, handler *Handler) {
	handleCollection(mux, http.MethodGet, "/api/workouts/", handler.ListWorkouts)
	handleCollection(mux, http.MethodPost, "/api/workouts/", handler.CreateWorkout)
	handleCollection(mux, http.MethodGet, "/api/workouts/by_difficulty/", handler.ListWorkoutsByDifficulty)
	handleCollection(mux, http.MethodGet, "/api/workouts/by_category/", handler.ListWorkoutsByCategory)
	handleCollection(mux, http.MethodGet, "/api/workouts/{id}/", handler.GetWorkout)
	handleCollection(mux, http.MethodPut, "/api/workouts/{id}/", handler.UpdateWorkout)
	handleCollection(mux, http.MethodDelete, "/api/workouts/{id}/", handler.DeleteWorkout)
}
