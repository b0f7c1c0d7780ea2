package mongodb

import (
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Email     string             `bson:"email"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	FullName  string             `bson:"full_name"`
	Team      *string            `bson:"team"`
	AvatarURL *string            `bson:"avatar_url"`
	CreatedAt time.Time          `bson:"created_at"`
}

func newUserDocument(id primitive.ObjectID, item user.User) userDocument {
	return userDocument{
		ID:        id,
		Email:     item.Email,
		Username:  item.Username,
		Password:  item.PasswordHash,
		FullName:  item.FullName,
		Team:      item.Team,
		AvatarURL: item.AvatarURL,
		CreatedAt: item.CreatedAt,
	}
}

func (d userDocument) toDomain() user.User {
	return user.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.Password,
		FullName:     d.FullName,
		Team:         d.Team,
		AvatarURL:    d.AvatarURL,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

type teamDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Captain     string             `bson:"captain"`
	Members     []string           `bson:"members"`
	TotalPoints int                `bson:"total_points"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func newTeamDocument(id primitive.ObjectID, item team.Team) teamDocument {
	members := item.Members
	if members == nil {
		members = []string{}
	}
	return teamDocument{
		ID:          id,
		Name:        item.Name,
		Description: item.Description,
		Captain:     item.Captain,
		Members:     members,
		TotalPoints: item.TotalPoints,
		CreatedAt:   item.CreatedAt,
	}
}

func (d teamDocument) toDomain() team.Team {
	members := d.Members
	if members == nil {
		members = []string{}
	}
	return team.Team{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Captain:     d.Captain,
		Members:     members,
		TotalPoints: d.TotalPoints,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

type activityDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	User         string             `bson:"user"`
	ActivityType string             `bson:"activity_type"`
	Duration     int                `bson:"duration"`
	Distance     float64            `bson:"distance"`
	Calories     int                `bson:"calories"`
	Points       int                `bson:"points"`
	Date         time.Time          `bson:"date"`
	Notes        string             `bson:"notes"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func newActivityDocument(id primitive.ObjectID, item activity.Activity) activityDocument {
	return activityDocument{
		ID:           id,
		User:         item.User,
		ActivityType: item.ActivityType,
		Duration:     item.Duration,
		Distance:     item.Distance,
		Calories:     item.Calories,
		Points:       item.Points,
		Date:         item.Date,
		Notes:        item.Notes,
		CreatedAt:    item.CreatedAt,
	}
}

func (d activityDocument) toDomain() activity.Activity {
	return activity.Activity{
		ID:           d.ID.Hex(),
		User:         d.User,
		ActivityType: d.ActivityType,
		Duration:     d.Duration,
		Distance:     d.Distance,
		Calories:     d.Calories,
		Points:       d.Points,
		Date:         d.Date.UTC(),
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

type leaderboardDocument struct {
	ID              primitive.ObjectID `bson:"_id"`
	User            string             `bson:"user"`
	Team            string             `bson:"team"`
	TotalPoints     int                `bson:"total_points"`
	TotalActivities int                `bson:"total_activities"`
	Rank            int                `bson:"rank"`
	LastUpdated     time.Time          `bson:"last_updated"`
}

func newLeaderboardDocument(id primitive.ObjectID, item leaderboard.Entry) leaderboardDocument {
	return leaderboardDocument{
		ID:              id,
		User:            item.User,
		Team:            item.Team,
		TotalPoints:     item.TotalPoints,
		TotalActivities: item.TotalActivities,
		Rank:            item.Rank,
		LastUpdated:     item.LastUpdated,
	}
}

func (d leaderboardDocument) toDomain() leaderboard.Entry {
	return leaderboard.Entry{
		ID:              d.ID.Hex(),
		User:            d.User,
		Team:            d.Team,
		TotalPoints:     d.TotalPoints,
		TotalActivities: d.TotalActivities,
		Rank:            d.Rank,
		LastUpdated:     d.LastUpdated.UTC(),
	}
}

type workoutDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Description    string             `bson:"description"`
	Difficulty     string             `bson:"difficulty"`
	Duration       int                `bson:"duration"`
	Category       string             `bson:"category"`
	Exercises      []string           `bson:"exercises"`
	RecommendedFor string             `bson:"recommended_for"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func newWorkoutDocument(id primitive.ObjectID, item workout.Workout) workoutDocument {
	exercises := item.Exercises
	if exercises == nil {
		exercises = []string{}
	}
	return workoutDocument{
		ID:             id,
		Name:           item.Name,
		Description:    item.Description,
		Difficulty:     item.Difficulty,
		Duration:       item.Duration,
		Category:       item.Category,
		Exercises:      exercises,
		RecommendedFor: item.RecommendedFor,
		CreatedAt:      item.CreatedAt,
	}
}

func (d workoutDocument) toDomain() workout.Workout {
	exercises := d.Exercises
	if exercises == nil {
		exercises = []string{}
	}
	return workout.Workout{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Description:    d.Description,
		Difficulty:     d.Difficulty,
		Duration:       d.Duration,
		Category:       d.Category,
		Exercises:      exercises,
		RecommendedFor: d.RecommendedFor,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}
