package mongodb

import (
	"context"

	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkoutRepository struct {
	coll *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{coll: db.Collection(workoutsCollection)}
}

func (r *WorkoutRepository) Create(ctx context.Context, item workout.Workout) (workout.Workout, error) {
	doc := newWorkoutDocument(primitive.NewObjectID(), item)
	if err := insertOne(ctx, r.coll, doc); err != nil {
		return workout.Workout{}, err
	}
	return doc.toDomain(), nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id string) (workout.Workout, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return workout.Workout{}, false, nil
	}
	doc, found, err := findOne[workoutDocument](ctx, r.coll, bson.M{"_id": oid})
	if err != nil || !found {
		return workout.Workout{}, false, err
	}
	return doc.toDomain(), true, nil
}

func (r *WorkoutRepository) List(ctx context.Context, filter workout.Filter) ([]workout.Workout, error) {
	query := optionalEq(bson.M{}, "difficulty", filter.Difficulty)
	query = optionalEq(query, "category", filter.Category)

	docs, err := findMany[workoutDocument](ctx, r.coll, query,
		options.Find().SetSort(bson.D{{Key: "difficulty", Value: 1}, {Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]workout.Workout, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, item workout.Workout) (workout.Workout, bool, error) {
	oid, ok := objectID(item.ID)
	if !ok {
		return workout.Workout{}, false, nil
	}
	doc := newWorkoutDocument(oid, item)
	matched, err := replaceByID(ctx, r.coll, oid, doc)
	if err != nil || !matched {
		return workout.Workout{}, matched, err
	}
	return doc.toDomain(), true, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *WorkoutRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.coll)
}
