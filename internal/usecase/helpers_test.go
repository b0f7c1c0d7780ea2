package usecase

import (
	"errors"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
)

type prefixHasher struct{}

func (prefixHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("empty password")
	}
	return "hashed:" + plain, nil
}

func (prefixHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type services struct {
	store       *memory.Store
	users       *UserService
	teams       *TeamService
	activities  *ActivityService
	leaderboard *LeaderboardService
	workouts    *WorkoutService
}

func newServices() services {
	store := memory.NewStore(nil)
	logger := logging.NewNop()
	return services{
		store:       store,
		users:       NewUserService(store.Users, prefixHasher{}, logger),
		teams:       NewTeamService(store.Teams, logger),
		activities:  NewActivityService(store.Activities, logger),
		leaderboard: NewLeaderboardService(store.Leaderboard, store.Activities, store.Users, nil, logger),
		workouts:    NewWorkoutService(store.Workouts, logger),
	}
}

func strPtr(v string) *string {
	return &v
}
