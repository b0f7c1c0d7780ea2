package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultTopUsersLimit = 10

type LeaderboardInput struct {
	User            string
	Team            string
	TotalPoints     int
	TotalActivities int
	Rank            int
}

type LeaderboardService struct {
	repo         leaderboard.Repository
	activityRepo activity.Repository
	userRepo     user.Repository
	metrics      MetricsRecorder
	logger       *logging.Logger
	now          func() time.Time
}

func NewLeaderboardService(
	repo leaderboard.Repository,
	activityRepo activity.Repository,
	userRepo user.Repository,
	metrics MetricsRecorder,
	logger *logging.Logger,
) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &LeaderboardService{
		repo:         repo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *LeaderboardService) Create(ctx context.Context, input LeaderboardInput) (leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Create")
	defer span.End()

	item := buildEntry(input)
	if err := item.Validate(); err != nil {
		return leaderboard.Entry{}, invalidInput(err)
	}
	item.LastUpdated = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create leaderboard entry failed", "user", item.User, "error", err)
		return leaderboard.Entry{}, storeError("create leaderboard entry", err)
	}

	return created, nil
}

func (s *LeaderboardService) Get(ctx context.Context, id string) (leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("get leaderboard entry: %w", err)
	}
	if !exists {
		return leaderboard.Entry{}, notFound("leaderboard entry", id)
	}

	return item, nil
}

func (s *LeaderboardService) List(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.List")
	defer span.End()

	items, err := s.repo.List(ctx, leaderboard.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	return items, nil
}

// TopUsers returns the first limit entries in standing order.
func (s *LeaderboardService) TopUsers(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopUsers", attribute.Int("leaderboard.limit", limit))
	defer span.End()

	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive integer", ErrInvalidInput)
	}

	items, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top users: %w", err)
	}

	return items, nil
}

func (s *LeaderboardService) ListByTeam(ctx context.Context, teamName string) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.ListByTeam")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, requiredParam("team")
	}

	items, err := s.repo.List(ctx, leaderboard.Filter{Team: teamName})
	if err != nil {
		return nil, fmt.Errorf("list leaderboard by team: %w", err)
	}

	return items, nil
}

func (s *LeaderboardService) Update(ctx context.Context, id string, input LeaderboardInput) (leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return leaderboard.Entry{}, err
	}

	item := buildEntry(input)
	if err := item.Validate(); err != nil {
		return leaderboard.Entry{}, invalidInput(err)
	}
	item.ID = current.ID

	return s.save(ctx, item)
}

func (s *LeaderboardService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete leaderboard entry: %w", err)
	}
	if !deleted {
		return notFound("leaderboard entry", id)
	}

	return nil
}

// Recompute rebuilds per-user totals from every stored activity, upserts one entry
// per active user with the user's current team, then re-ranks all entries.
// Entries of users without activities keep their stored totals.
func (s *LeaderboardService) Recompute(ctx context.Context) (out []leaderboard.Entry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Recompute")
	defer span.End()

	started := time.Now()
	defer func() {
		s.metrics.ObserveLeaderboardRecompute(len(out), time.Since(started), err)
	}()

	activities, err := s.activityRepo.List(ctx, activity.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	users, err := s.userRepo.List(ctx, user.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	teamByUser := make(map[string]string, len(users))
	for _, u := range users {
		teamByUser[u.Username] = u.TeamName()
	}

	for _, tally := range leaderboard.TallyActivities(activities) {
		entry, exists, err := s.repo.GetByUser(ctx, tally.User)
		if err != nil {
			return nil, fmt.Errorf("get leaderboard entry for %s: %w", tally.User, err)
		}
		if teamName, ok := teamByUser[tally.User]; ok || !exists {
			entry.Team = teamName
		}
		entry.User = tally.User
		entry.TotalPoints = tally.TotalPoints
		entry.TotalActivities = tally.TotalActivities
		entry.LastUpdated = s.now().UTC()

		if exists {
			_, _, err = s.repo.Update(ctx, entry)
		} else {
			_, err = s.repo.Create(ctx, entry)
		}
		if err != nil {
			return nil, storeError("upsert leaderboard entry", err)
		}
	}

	entries, err := s.repo.List(ctx, leaderboard.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	ranked := leaderboard.Rank(entries)
	out = make([]leaderboard.Entry, 0, len(ranked))
	for _, entry := range ranked {
		saved, err := s.save(ctx, entry)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}

	s.logger.InfoContext(ctx, "leaderboard recomputed",
		"entries", len(out),
		"activities", len(activities),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return out, nil
}

func (s *LeaderboardService) save(ctx context.Context, item leaderboard.Entry) (leaderboard.Entry, error) {
	item.LastUpdated = s.now().UTC()
	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "update leaderboard entry failed", "entry_id", item.ID, "error", err)
		return leaderboard.Entry{}, storeError("update leaderboard entry", err)
	}
	if !exists {
		return leaderboard.Entry{}, notFound("leaderboard entry", item.ID)
	}

	return updated, nil
}

func buildEntry(input LeaderboardInput) leaderboard.Entry {
	return leaderboard.Entry{
		User:            strings.TrimSpace(input.User),
		Team:            strings.TrimSpace(input.Team),
		TotalPoints:     input.TotalPoints,
		TotalActivities: input.TotalActivities,
		Rank:            input.Rank,
	}
}
