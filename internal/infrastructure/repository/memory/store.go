package memory

import idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"

// Store bundles the in-process repositories sharing one id generator.
type Store struct {
	Users       *UserRepository
	Teams       *TeamRepository
	Activities  *ActivityRepository
	Leaderboard *LeaderboardRepository
	Workouts    *WorkoutRepository
}

func NewStore(ids idgen.Generator) *Store {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &Store{
		Users:       NewUserRepository(ids),
		Teams:       NewTeamRepository(ids),
		Activities:  NewActivityRepository(ids),
		Leaderboard: NewLeaderboardRepository(ids),
		Workouts:    NewWorkoutRepository(ids),
	}
}
