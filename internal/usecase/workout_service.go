package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
)

type WorkoutInput struct {
	Name           string
	Description    string
	Difficulty     string
	Duration       int
	Category       string
	Exercises      []string
	RecommendedFor string
}

type WorkoutService struct {
	repo   workout.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewWorkoutService(repo workout.Repository, logger *logging.Logger) *WorkoutService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WorkoutService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *WorkoutService) Create(ctx context.Context, input WorkoutInput) (workout.Workout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WorkoutService.Create")
	defer span.End()

	item := buildWorkout(input)
	if err := item.Validate(); err != nil {
		return workout.Workout{}, invalidInput(err)
	}
	item.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create workout failed", "name", item.Name, "error", err)
		return workout.Workout{}, storeError("create workout", err)
	}

	return created, nil
}

func (s *WorkoutService) Get(ctx context.Context, id string) (workout.Workout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WorkoutService.Get")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("get workout: %w", err)
	}
	if !exists {
		return workout.Workout{}, notFound("workout", id)
	}

	return item, nil
}

func (s *WorkoutService) List(ctx context.Context) ([]workout.Workout, error) {
	return s.list(ctx, "usecase.WorkoutService.List", workout.Filter{})
}

func (s *WorkoutService) ListByDifficulty(ctx context.Context, difficulty string) ([]workout.Workout, error) {
	difficulty = strings.TrimSpace(difficulty)
	if difficulty == "" {
		return nil, requiredParam("difficulty")
	}
	return s.list(ctx, "usecase.WorkoutService.ListByDifficulty", workout.Filter{Difficulty: difficulty})
}

func (s *WorkoutService) ListByCategory(ctx context.Context, category string) ([]workout.Workout, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, requiredParam("category")
	}
	return s.list(ctx, "usecase.WorkoutService.ListByCategory", workout.Filter{Category: category})
}

func (s *WorkoutService) Update(ctx context.Context, id string, input WorkoutInput) (workout.Workout, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WorkoutService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return workout.Workout{}, err
	}

	item := buildWorkout(input)
	if err := item.Validate(); err != nil {
		return workout.Workout{}, invalidInput(err)
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "update workout failed", "workout_id", id, "error", err)
		return workout.Workout{}, storeError("update workout", err)
	}
	if !exists {
		return workout.Workout{}, notFound("workout", id)
	}

	return updated, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WorkoutService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if !deleted {
		return notFound("workout", id)
	}

	return nil
}

func (s *WorkoutService) list(ctx context.Context, spanName string, filter workout.Filter) ([]workout.Workout, error) {
	ctx, span := startUsecaseSpan(ctx, spanName)
	defer span.End()

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	return items, nil
}

func buildWorkout(input WorkoutInput) workout.Workout {
	exercises := input.Exercises
	if exercises == nil {
		exercises = []string{}
	}
	return workout.Workout{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Difficulty:     strings.TrimSpace(input.Difficulty),
		Duration:       input.Duration,
		Category:       strings.TrimSpace(input.Category),
		Exercises:      exercises,
		RecommendedFor: strings.TrimSpace(input.RecommendedFor),
	}
}
