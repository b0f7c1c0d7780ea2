package mongodb

import (
	"context"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

func (r *ActivityRepository) Create(ctx context.Context, item activity.Activity) (activity.Activity, error) {
	doc := newActivityDocument(primitive.NewObjectID(), item)
	if err := insertOne(ctx, r.coll, doc); err != nil {
		return activity.Activity{}, err
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (activity.Activity, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return activity.Activity{}, false, nil
	}
	doc, found, err := findOne[activityDocument](ctx, r.coll, bson.M{"_id": oid})
	if err != nil || !found {
		return activity.Activity{}, false, err
	}
	return doc.toDomain(), true, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter activity.Filter) ([]activity.Activity, error) {
	query := optionalEq(bson.M{}, "user", filter.User)
	query = optionalEq(query, "activity_type", filter.ActivityType)

	docs, err := findMany[activityDocument](ctx, r.coll, query,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]activity.Activity, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *ActivityRepository) Update(ctx context.Context, item activity.Activity) (activity.Activity, bool, error) {
	oid, ok := objectID(item.ID)
	if !ok {
		return activity.Activity{}, false, nil
	}
	doc := newActivityDocument(oid, item)
	matched, err := replaceByID(ctx, r.coll, oid, doc)
	if err != nil || !matched {
		return activity.Activity{}, matched, err
	}
	return doc.toDomain(), true, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.coll)
}
