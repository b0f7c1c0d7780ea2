package mongodb

import (
	"context"
	"fmt"

	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamsCollection)}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	doc := newTeamDocument(primitive.NewObjectID(), item)
	if err := insertOne(ctx, r.coll, doc); err != nil {
		return team.Team{}, teamWriteError(err)
	}
	return doc.toDomain(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return team.Team{}, false, nil
	}
	return r.getOne(ctx, bson.M{"_id": oid})
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, bson.M{"name": name})
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	docs, err := findMany[teamDocument](ctx, r.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	oid, ok := objectID(item.ID)
	if !ok {
		return team.Team{}, false, nil
	}
	doc := newTeamDocument(oid, item)
	matched, err := replaceByID(ctx, r.coll, oid, doc)
	if err != nil {
		return team.Team{}, true, teamWriteError(err)
	}
	if !matched {
		return team.Team{}, false, nil
	}
	return doc.toDomain(), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *TeamRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.coll)
}

func (r *TeamRepository) getOne(ctx context.Context, filter bson.M) (team.Team, bool, error) {
	doc, found, err := findOne[teamDocument](ctx, r.coll, filter)
	if err != nil || !found {
		return team.Team{}, false, err
	}
	return doc.toDomain(), true, nil
}

func teamWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", team.ErrDuplicate, err)
	}
	return err
}
