package postgres

import "github.com/jmoiron/sqlx"

// Store bundles the Postgres repositories sharing one connection pool.
type Store struct {
	Users       *UserRepository
	Teams       *TeamRepository
	Activities  *ActivityRepository
	Leaderboard *LeaderboardRepository
	Workouts    *WorkoutRepository
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Users:       NewUserRepository(db),
		Teams:       NewTeamRepository(db),
		Activities:  NewActivityRepository(db),
		Leaderboard: NewLeaderboardRepository(db),
		Workouts:    NewWorkoutRepository(db),
	}
}
