package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
)

type ActivityInput struct {
	User         string
	ActivityType string
	Duration     int
	Distance     float64
	Calories     int
	Points       int
	Date         time.Time
	Notes        string
}

type ActivityService struct {
	repo   activity.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewActivityService(repo activity.Repository, logger *logging.Logger) *ActivityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ActivityService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ActivityService) Create(ctx context.Context, input ActivityInput) (activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Create")
	defer span.End()

	item := buildActivity(input)
	if err := item.Validate(); err != nil {
		return activity.Activity{}, invalidInput(err)
	}
	item.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create activity failed", "user", item.User, "error", err)
		return activity.Activity{}, storeError("create activity", err)
	}

	return created, nil
}

func (s *ActivityService) Get(ctx context.Context, id string) (activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Get")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("get activity: %w", err)
	}
	if !exists {
		return activity.Activity{}, notFound("activity", id)
	}

	return item, nil
}

func (s *ActivityService) List(ctx context.Context) ([]activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.List")
	defer span.End()

	items, err := s.repo.List(ctx, activity.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return items, nil
}

func (s *ActivityService) ListByUser(ctx context.Context, username string) ([]activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.ListByUser")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, requiredParam("user")
	}

	items, err := s.repo.List(ctx, activity.Filter{User: username})
	if err != nil {
		return nil, fmt.Errorf("list activities by user: %w", err)
	}

	return items, nil
}

func (s *ActivityService) ListByType(ctx context.Context, activityType string) ([]activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.ListByType")
	defer span.End()

	activityType = strings.TrimSpace(activityType)
	if activityType == "" {
		return nil, requiredParam("type")
	}

	items, err := s.repo.List(ctx, activity.Filter{ActivityType: activityType})
	if err != nil {
		return nil, fmt.Errorf("list activities by type: %w", err)
	}

	return items, nil
}

func (s *ActivityService) Update(ctx context.Context, id string, input ActivityInput) (activity.Activity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return activity.Activity{}, err
	}

	item := buildActivity(input)
	if err := item.Validate(); err != nil {
		return activity.Activity{}, invalidInput(err)
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "update activity failed", "activity_id", id, "error", err)
		return activity.Activity{}, storeError("update activity", err)
	}
	if !exists {
		return activity.Activity{}, notFound("activity", id)
	}

	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if !deleted {
		return notFound("activity", id)
	}

	return nil
}

func buildActivity(input ActivityInput) activity.Activity {
	return activity.Activity{
		User:         strings.TrimSpace(input.User),
		ActivityType: strings.TrimSpace(input.ActivityType),
		Duration:     input.Duration,
		Distance:     input.Distance,
		Calories:     input.Calories,
		Points:       input.Points,
		Date:         input.Date.UTC(),
		Notes:        input.Notes,
	}
}
