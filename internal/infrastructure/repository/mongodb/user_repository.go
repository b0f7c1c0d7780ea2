package mongodb

import (
	"context"
	"fmt"

	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	doc := newUserDocument(primitive.NewObjectID(), item)
	if err := insertOne(ctx, r.coll, doc); err != nil {
		return user.User{}, userWriteError(err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return user.User{}, false, nil
	}
	doc, found, err := findOne[userDocument](ctx, r.coll, bson.M{"_id": oid})
	if err != nil || !found {
		return user.User{}, false, err
	}
	return doc.toDomain(), true, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]user.User, error) {
	docs, err := findMany[userDocument](ctx, r.coll,
		optionalEq(bson.M{}, "team", filter.Team),
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]user.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, item user.User) (user.User, bool, error) {
	oid, ok := objectID(item.ID)
	if !ok {
		return user.User{}, false, nil
	}
	doc := newUserDocument(oid, item)
	matched, err := replaceByID(ctx, r.coll, oid, doc)
	if err != nil {
		return user.User{}, true, userWriteError(err)
	}
	if !matched {
		return user.User{}, false, nil
	}
	return doc.toDomain(), true, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.coll)
}

func userWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", user.ErrDuplicate, err)
	}
	return err
}
