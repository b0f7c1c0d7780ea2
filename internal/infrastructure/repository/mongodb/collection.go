package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection       = "users"
	teamsCollection       = "teams"
	activitiesCollection  = "activities"
	leaderboardCollection = "leaderboard"
	workoutsCollection    = "workouts"
)

// objectID parses a public id. Ids that are not ObjectID hex strings can never match a document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (T, bool, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return doc, false, nil
		}
		return doc, false, fmt.Errorf("find one in %s: %w", coll.Name(), err)
	}
	return doc, true, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return nil
}

// replaceByID reports false when no document has the id.
func replaceByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc any) (bool, error) {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return true, fmt.Errorf("replace in %s: %w", coll.Name(), err)
	}
	return res.MatchedCount > 0, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

func deleteAll(ctx context.Context, coll *mongo.Collection) error {
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", coll.Name(), err)
	}
	return nil
}

// optionalEq adds key=value to filter when value is non-empty.
func optionalEq(filter bson.M, key, value string) bson.M {
	if value != "" {
		filter[key] = value
	}
	return filter
}
