package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/platform/password"
	"github.com/sourcegraph/conc/pool"
)

const (
	seedMinActivities = 3
	seedMaxActivities = 7
	seedMinDuration   = 20
	seedMaxDuration   = 120
	seedMinDistance   = 2.0
	seedMaxDistance   = 25.0
	seedMinCalFactor  = 5
	seedMaxCalFactor  = 12
	seedMaxDaysAgo    = 30

	defaultSeedWorkers = 4
)

type SeedRepositories struct {
	Users       user.Repository
	Teams       team.Repository
	Activities  activity.Repository
	Leaderboard leaderboard.Repository
	Workouts    workout.Repository
}

type SeedOptions struct {
	Workers int
	// RandomSeed makes generated magnitudes reproducible. Zero picks a time-based seed.
	RandomSeed uint64
}

type SeedSummary struct {
	Teams              int `json:"teams"`
	Users              int `json:"users"`
	Activities         int `json:"activities"`
	LeaderboardEntries int `json:"leaderboard_entries"`
	Workouts           int `json:"workouts"`
}

// SeedService wipes the store and loads the demo data set: two teams of six
// users, 3 to 7 random activities per user, the derived leaderboard and the
// workout catalog.
type SeedService struct {
	repos       SeedRepositories
	leaderboard *LeaderboardService
	hasher      password.Hasher
	workers     int
	metrics     MetricsRecorder
	logger      *logging.Logger
	now         func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeedService(
	repos SeedRepositories,
	leaderboardSvc *LeaderboardService,
	hasher password.Hasher,
	opts SeedOptions,
	metrics MetricsRecorder,
	logger *logging.Logger,
) *SeedService {
	if logger == nil {
		logger = logging.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultSeedWorkers
	}
	seed := opts.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &SeedService{
		repos:       repos,
		leaderboard: leaderboardSvc,
		hasher:      hasher,
		workers:     workers,
		metrics:     metrics,
		logger:      logger.Named("seed"),
		now:         time.Now,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SeedService) Run(ctx context.Context) (summary SeedSummary, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeedService.Run")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	defer func() {
		s.metrics.ObserveSeed(summary.Activities, time.Since(started), err)
	}()

	if err = s.clear(ctx); err != nil {
		return SeedSummary{}, err
	}
	s.logger.InfoContext(ctx, "collections cleared")

	teams, err := s.createTeams(ctx)
	if err != nil {
		return SeedSummary{}, err
	}
	if err = s.createUsers(ctx); err != nil {
		return SeedSummary{}, err
	}

	planned := s.planActivities(s.now().UTC())
	if err = s.persistActivities(ctx, planned); err != nil {
		return SeedSummary{}, err
	}
	if err = s.accumulateTeamPoints(ctx, teams, planned); err != nil {
		return SeedSummary{}, err
	}

	entries, err := s.leaderboard.Recompute(ctx)
	if err != nil {
		return SeedSummary{}, fmt.Errorf("build leaderboard: %w", err)
	}

	workouts, err := s.createWorkouts(ctx)
	if err != nil {
		return SeedSummary{}, err
	}

	summary = SeedSummary{
		Teams:              len(teams),
		Users:              len(seedUsers),
		Activities:         len(planned),
		LeaderboardEntries: len(entries),
		Workouts:           workouts,
	}
	s.logger.InfoContext(ctx, "seed completed",
		"teams", summary.Teams,
		"users", summary.Users,
		"activities", summary.Activities,
		"leaderboard_entries", summary.LeaderboardEntries,
		"workouts", summary.Workouts,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return summary, nil
}

func (s *SeedService) clear(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error { return wrapClear("users", s.repos.Users.DeleteAll(ctx)) })
	p.Go(func(ctx context.Context) error { return wrapClear("teams", s.repos.Teams.DeleteAll(ctx)) })
	p.Go(func(ctx context.Context) error { return wrapClear("activities", s.repos.Activities.DeleteAll(ctx)) })
	p.Go(func(ctx context.Context) error { return wrapClear("leaderboard", s.repos.Leaderboard.DeleteAll(ctx)) })
	p.Go(func(ctx context.Context) error { return wrapClear("workouts", s.repos.Workouts.DeleteAll(ctx)) })
	return p.Wait()
}

func wrapClear(collection string, err error) error {
	if err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	return nil
}

func (s *SeedService) createTeams(ctx context.Context) (map[string]team.Team, error) {
	out := make(map[string]team.Team, len(seedTeams))
	for _, item := range seedTeams {
		created, err := s.repos.Teams.Create(ctx, team.Team{
			Name:        item.Name,
			Description: item.Description,
			Captain:     item.Captain,
			Members:     append([]string(nil), item.Members...),
			CreatedAt:   s.now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("create team %s: %w", item.Name, err)
		}
		out[created.Name] = created
	}
	return out, nil
}

func (s *SeedService) createUsers(ctx context.Context) error {
	for _, item := range seedUsers {
		hash, err := s.hasher.Hash(item.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", item.Username, err)
		}
		teamName := item.Team
		if _, err := s.repos.Users.Create(ctx, user.User{
			Email:        item.Email,
			Username:     item.Username,
			PasswordHash: hash,
			FullName:     item.FullName,
			Team:         &teamName,
			CreatedAt:    s.now().UTC(),
		}); err != nil {
			return fmt.Errorf("create user %s: %w", item.Username, err)
		}
	}
	return nil
}

// planActivities draws every random magnitude up front so the sequence depends
// only on the random seed, not on write scheduling.
func (s *SeedService) planActivities(now time.Time) []activity.Activity {
	out := make([]activity.Activity, 0, len(seedUsers)*seedMaxActivities)
	for _, u := range seedUsers {
		count := s.intBetween(seedMinActivities, seedMaxActivities)
		for range count {
			activityType := seedActivityTypes[s.rng.IntN(len(seedActivityTypes))]
			duration := s.intBetween(seedMinDuration, seedMaxDuration)

			distance := 0.0
			if _, ok := seedDistanceTypes[activityType]; ok {
				raw := seedMinDistance + s.rng.Float64()*(seedMaxDistance-seedMinDistance)
				distance = math.Round(raw*100) / 100
			}

			daysAgo := s.intBetween(0, seedMaxDaysAgo)
			out = append(out, activity.Activity{
				User:         u.Username,
				ActivityType: activityType,
				Duration:     duration,
				Distance:     distance,
				Calories:     duration * s.intBetween(seedMinCalFactor, seedMaxCalFactor),
				Points:       ActivityPoints(duration, distance),
				Date:         now.AddDate(0, 0, -daysAgo),
				Notes:        fmt.Sprintf("%s session by %s", activityType, u.FullName),
				CreatedAt:    now,
			})
		}
	}
	return out
}

// ActivityPoints is duration plus ten points per kilometre, truncated.
func ActivityPoints(duration int, distance float64) int {
	return duration + int(distance*10)
}

func (s *SeedService) persistActivities(ctx context.Context, items []activity.Activity) error {
	workers, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var (
		wg       sync.WaitGroup
		failed   atomic.Int32
		errMu    sync.Mutex
		firstErr error
	)
	for _, item := range items {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			if _, err := s.repos.Activities.Create(ctx, item); err != nil {
				failed.Add(1)
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("create activity for %s: %w", item.User, err)
				}
				errMu.Unlock()
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit activity to worker pool: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		s.logger.WarnContext(ctx, "persist activities failed", "failed", failed.Load(), "total", len(items))
		return firstErr
	}
	return nil
}

func (s *SeedService) accumulateTeamPoints(ctx context.Context, teams map[string]team.Team, items []activity.Activity) error {
	teamByUser := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		teamByUser[u.Username] = u.Team
	}

	points := make(map[string]int, len(teams))
	for _, item := range items {
		points[teamByUser[item.User]] += item.Points
	}

	for _, seeded := range seedTeams {
		current, ok := teams[seeded.Name]
		if !ok {
			continue
		}
		current.TotalPoints += points[seeded.Name]
		updated, exists, err := s.repos.Teams.Update(ctx, current)
		if err != nil {
			return fmt.Errorf("update team points %s: %w", seeded.Name, err)
		}
		if !exists {
			return fmt.Errorf("update team points %s: %w", seeded.Name, ErrNotFound)
		}
		teams[seeded.Name] = updated
	}
	return nil
}

func (s *SeedService) createWorkouts(ctx context.Context) (int, error) {
	for _, item := range seedWorkouts {
		if _, err := s.repos.Workouts.Create(ctx, workout.Workout{
			Name:           item.Name,
			Description:    item.Description,
			Difficulty:     item.Difficulty,
			Duration:       item.Duration,
			Category:       item.Category,
			Exercises:      append([]string(nil), item.Exercises...),
			RecommendedFor: item.RecommendedFor,
			CreatedAt:      s.now().UTC(),
		}); err != nil {
			return 0, fmt.Errorf("create workout %s: %w", item.Name, err)
		}
	}
	return len(seedWorkouts), nil
}

// intBetween returns a uniform integer in [lo, hi].
func (s *SeedService) intBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}
