package mongodb

import (
	"context"
	"fmt"

	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// standing order: total points descending, then username
var leaderboardSort = bson.D{
	{Key: "total_points", Value: -1},
	{Key: "user", Value: 1},
	{Key: "_id", Value: 1},
}

type LeaderboardRepository struct {
	coll *mongo.Collection
}

func NewLeaderboardRepository(db *mongo.Database) *LeaderboardRepository {
	return &LeaderboardRepository{coll: db.Collection(leaderboardCollection)}
}

func (r *LeaderboardRepository) Create(ctx context.Context, item leaderboard.Entry) (leaderboard.Entry, error) {
	doc := newLeaderboardDocument(primitive.NewObjectID(), item)
	if err := insertOne(ctx, r.coll, doc); err != nil {
		return leaderboard.Entry{}, leaderboardWriteError(err)
	}
	return doc.toDomain(), nil
}

func (r *LeaderboardRepository) GetByID(ctx context.Context, id string) (leaderboard.Entry, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return leaderboard.Entry{}, false, nil
	}
	return r.getOne(ctx, bson.M{"_id": oid})
}

func (r *LeaderboardRepository) GetByUser(ctx context.Context, username string) (leaderboard.Entry, bool, error) {
	return r.getOne(ctx, bson.M{"user": username})
}

func (r *LeaderboardRepository) List(ctx context.Context, filter leaderboard.Filter) ([]leaderboard.Entry, error) {
	return r.find(ctx, optionalEq(bson.M{}, "team", filter.Team), options.Find().SetSort(leaderboardSort))
}

func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	opts := options.Find().SetSort(leaderboardSort)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{}, opts)
}

func (r *LeaderboardRepository) Update(ctx context.Context, item leaderboard.Entry) (leaderboard.Entry, bool, error) {
	oid, ok := objectID(item.ID)
	if !ok {
		return leaderboard.Entry{}, false, nil
	}
	doc := newLeaderboardDocument(oid, item)
	matched, err := replaceByID(ctx, r.coll, oid, doc)
	if err != nil {
		return leaderboard.Entry{}, true, leaderboardWriteError(err)
	}
	if !matched {
		return leaderboard.Entry{}, false, nil
	}
	return doc.toDomain(), true, nil
}

func (r *LeaderboardRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.coll)
}

func (r *LeaderboardRepository) getOne(ctx context.Context, filter bson.M) (leaderboard.Entry, bool, error) {
	doc, found, err := findOne[leaderboardDocument](ctx, r.coll, filter)
	if err != nil || !found {
		return leaderboard.Entry{}, false, err
	}
	return doc.toDomain(), true, nil
}

func (r *LeaderboardRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]leaderboard.Entry, error) {
	docs, err := findMany[leaderboardDocument](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, err
	}

	out := make([]leaderboard.Entry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func leaderboardWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", leaderboard.ErrDuplicate, err)
	}
	return err
}
