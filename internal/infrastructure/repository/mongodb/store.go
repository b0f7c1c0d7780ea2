package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Store bundles the MongoDB repositories of one database.
type Store struct {
	Users       *UserRepository
	Teams       *TeamRepository
	Activities  *ActivityRepository
	Leaderboard *LeaderboardRepository
	Workouts    *WorkoutRepository

	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Users:       NewUserRepository(db),
		Teams:       NewTeamRepository(db),
		Activities:  NewActivityRepository(db),
		Leaderboard: NewLeaderboardRepository(db),
		Workouts:    NewWorkoutRepository(db),
		db:          db,
	}
}

// Connect opens a client and verifies the deployment is reachable.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, nil, fmt.Errorf("mongo uri is required")
	}
	if strings.TrimSpace(database) == "" {
		return nil, nil, fmt.Errorf("mongo database is required")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the uniqueness and lookup indexes. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "team", Value: 1}}},
		},
		teamsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		activitiesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
			{Keys: bson.D{{Key: "activity_type", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		leaderboardCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "team", Value: 1}}},
			{Keys: bson.D{{Key: "total_points", Value: -1}, {Key: "user", Value: 1}}},
		},
		workoutsCollection: {
			{Keys: bson.D{{Key: "difficulty", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}

	for _, name := range []string{usersCollection, teamsCollection, activitiesCollection, leaderboardCollection, workoutsCollection} {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, specs[name]); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}
