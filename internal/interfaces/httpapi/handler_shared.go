package httpapi

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields, and validates it.
func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func parseLimit(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	return limit, nil
}

type userRequest struct {
	Email     string  `json:"email" validate:"required,email,max=255"`
	Username  string  `json:"username" validate:"required,max=150"`
	Password  string  `json:"password" validate:"required"`
	FullName  string  `json:"full_name" validate:"required,max=255"`
	Team      *string `json:"team" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
}

type teamRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Captain     string   `json:"captain" validate:"required,max=150"`
	Members     []string `json:"members" validate:"omitempty,unique,dive,required"`
	TotalPoints int      `json:"total_points" validate:"gte=0"`
}

type teamMemberRequest struct {
	Username string `json:"username" validate:"required"`
}

type activityRequest struct {
	User         string    `json:"user" validate:"required,max=150"`
	ActivityType string    `json:"activity_type" validate:"required,max=100"`
	Duration     int       `json:"duration" validate:"gt=0"`
	Distance     float64   `json:"distance" validate:"gte=0"`
	Calories     int       `json:"calories" validate:"gte=0"`
	Points       int       `json:"points" validate:"gte=0"`
	Date         time.Time `json:"date"`
	Notes        string    `json:"notes"`
}

type leaderboardRequest struct {
	User            string `json:"user" validate:"required,max=150"`
	Team            string `json:"team" validate:"max=100"`
	TotalPoints     int    `json:"total_points" validate:"gte=0"`
	TotalActivities int    `json:"total_activities" validate:"gte=0"`
	Rank            int    `json:"rank" validate:"gte=0"`
}

type workoutRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Description    string   `json:"description" validate:"required"`
	Difficulty     string   `json:"difficulty" validate:"required,max=50"`
	Duration       int      `json:"duration" validate:"gt=0"`
	Category       string   `json:"category" validate:"required,max=100"`
	Exercises      []string `json:"exercises" validate:"omitempty,dive,required"`
	RecommendedFor string   `json:"recommended_for" validate:"max=100"`
}

func (r userRequest) toInput() usecase.UserInput {
	return usecase.UserInput{
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
		FullName:  r.FullName,
		Team:      r.Team,
		AvatarURL: r.AvatarURL,
	}
}

func (r teamRequest) toInput() usecase.TeamInput {
	return usecase.TeamInput{
		Name:        r.Name,
		Description: r.Description,
		Captain:     r.Captain,
		Members:     r.Members,
		TotalPoints: r.TotalPoints,
	}
}

func (r activityRequest) toInput() usecase.ActivityInput {
	return usecase.ActivityInput{
		User:         r.User,
		ActivityType: r.ActivityType,
		Duration:     r.Duration,
		Distance:     r.Distance,
		Calories:     r.Calories,
		Points:       r.Points,
		Date:         r.Date,
		Notes:        r.Notes,
	}
}

func (r leaderboardRequest) toInput() usecase.LeaderboardInput {
	return usecase.LeaderboardInput{
		User:            r.User,
		Team:            r.Team,
		TotalPoints:     r.TotalPoints,
		TotalActivities: r.TotalActivities,
		Rank:            r.Rank,
	}
}

func (r workoutRequest) toInput() usecase.WorkoutInput {
	return usecase.WorkoutInput{
		Name:           r.Name,
		Description:    r.Description,
		Difficulty:     r.Difficulty,
		Duration:       r.Duration,
		Category:       r.Category,
		Exercises:      r.Exercises,
		RecommendedFor: r.RecommendedFor,
	}
}

type discoveryDTO struct {
	Message   string                `json:"message"`
	BaseURL   string                `json:"base_url"`
	Endpoints discoveryEndpointsDTO `json:"endpoints"`
}

type discoveryEndpointsDTO struct {
	Users       string `json:"users"`
	Teams       string `json:"teams"`
	Activities  string `json:"activities"`
	Leaderboard string `json:"leaderboard"`
	Workouts    string `json:"workouts"`
}

// userDTO never carries the password hash.
type userDTO struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Team      *string `json:"team"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
}

type teamDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Captain     string   `json:"captain"`
	Members     []string `json:"members"`
	TotalPoints int      `json:"total_points"`
	CreatedAt   string   `json:"created_at"`
}

type teamMemberDTO struct {
	Status string  `json:"status"`
	Team   teamDTO `json:"team"`
}

type activityDTO struct {
	ID           string  `json:"id"`
	User         string  `json:"user"`
	ActivityType string  `json:"activity_type"`
	Duration     int     `json:"duration"`
	Distance     float64 `json:"distance"`
	Calories     int     `json:"calories"`
	Points       int     `json:"points"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
	CreatedAt    string  `json:"created_at"`
}

type leaderboardDTO struct {
	ID              string `json:"id"`
	User            string `json:"user"`
	Team            string `json:"team"`
	TotalPoints     int    `json:"total_points"`
	TotalActivities int    `json:"total_activities"`
	Rank            int    `json:"rank"`
	LastUpdated     string `json:"last_updated"`
}

type workoutDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Difficulty     string   `json:"difficulty"`
	Duration       int      `json:"duration"`
	Category       string   `json:"category"`
	Exercises      []string `json:"exercises"`
	RecommendedFor string   `json:"recommended_for"`
	CreatedAt      string   `json:"created_at"`
}

type deletedDTO struct {
	Deleted bool `json:"deleted"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Email:     v.Email,
		Username:  v.Username,
		FullName:  v.FullName,
		Team:      v.Team,
		AvatarURL: v.AvatarURL,
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Captain:     v.Captain,
		Members:     append([]string{}, v.Members...),
		TotalPoints: v.TotalPoints,
		CreatedAt:   formatTime(v.CreatedAt),
	}
}

func activityToDTO(v activity.Activity) activityDTO {
	return activityDTO{
		ID:           v.ID,
		User:         v.User,
		ActivityType: v.ActivityType,
		Duration:     v.Duration,
		Distance:     v.Distance,
		Calories:     v.Calories,
		Points:       v.Points,
		Date:         formatTime(v.Date),
		Notes:        v.Notes,
		CreatedAt:    formatTime(v.CreatedAt),
	}
}

func leaderboardToDTO(v leaderboard.Entry) leaderboardDTO {
	return leaderboardDTO{
		ID:              v.ID,
		User:            v.User,
		Team:            v.Team,
		TotalPoints:     v.TotalPoints,
		TotalActivities: v.TotalActivities,
		Rank:            v.Rank,
		LastUpdated:     formatTime(v.LastUpdated),
	}
}

func workoutToDTO(v workout.Workout) workoutDTO {
	return workoutDTO{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		Difficulty:     v.Difficulty,
		Duration:       v.Duration,
		Category:       v.Category,
		Exercises:      append([]string{}, v.Exercises...),
		RecommendedFor: v.RecommendedFor,
		CreatedAt:      formatTime(v.CreatedAt),
	}
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
