package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	qb "github.com/riskibarqy/octofit-tracker/internal/platform/querybuilder"
)

const leaderboardTable = "leaderboard"

// standing order: total points descending, then username in byte order
var leaderboardOrder = []string{"total_points DESC", `username COLLATE "C"`, "id"}

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) Create(ctx context.Context, item leaderboard.Entry) (leaderboard.Entry, error) {
	query, args, err := qb.InsertModel(leaderboardTable, leaderboardInsertModelFrom(item)).Returning("*").ToSQL()
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("build insert leaderboard entry query: %w", err)
	}

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return leaderboard.Entry{}, leaderboardWriteError("insert leaderboard entry", err)
	}

	return leaderboardFromRow(row), nil
}

func (r *LeaderboardRepository) GetByID(ctx context.Context, id string) (leaderboard.Entry, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return leaderboard.Entry{}, false, nil
	}
	return r.getOne(ctx, qb.Eq("id", key))
}

func (r *LeaderboardRepository) GetByUser(ctx context.Context, username string) (leaderboard.Entry, bool, error) {
	return r.getOne(ctx, qb.Eq("username", username))
}

func (r *LeaderboardRepository) List(ctx context.Context, filter leaderboard.Filter) ([]leaderboard.Entry, error) {
	return r.list(ctx, qb.Select("*").From(leaderboardTable).
		Where(qb.EqIf("team", filter.Team)).
		OrderBy(leaderboardOrder...))
}

func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	return r.list(ctx, qb.Select("*").From(leaderboardTable).
		OrderBy(leaderboardOrder...).
		Limit(limit))
}

func (r *LeaderboardRepository) Update(ctx context.Context, item leaderboard.Entry) (leaderboard.Entry, bool, error) {
	key, ok := parseID(item.ID)
	if !ok {
		return leaderboard.Entry{}, false, nil
	}

	query, args, err := qb.UpdateModel(leaderboardTable, leaderboardInsertModelFrom(item)).
		Where(qb.Eq("id", key)).
		Returning("*").
		ToSQL()
	if err != nil {
		return leaderboard.Entry{}, false, fmt.Errorf("build update leaderboard entry query: %w", err)
	}

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return leaderboard.Entry{}, false, nil
		}
		return leaderboard.Entry{}, true, leaderboardWriteError("update leaderboard entry", err)
	}

	return leaderboardFromRow(row), true, nil
}

func (r *LeaderboardRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return deleteByID(ctx, r.db, leaderboardTable, key)
}

func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, leaderboardTable)
}

func (r *LeaderboardRepository) getOne(ctx context.Context, cond qb.Condition) (leaderboard.Entry, bool, error) {
	query, args, err := qb.Select("*").From(leaderboardTable).Where(cond).Limit(1).ToSQL()
	if err != nil {
		return leaderboard.Entry{}, false, fmt.Errorf("build get leaderboard entry query: %w", err)
	}

	var row leaderboardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return leaderboard.Entry{}, false, nil
		}
		return leaderboard.Entry{}, false, fmt.Errorf("get leaderboard entry: %w", err)
	}

	return leaderboardFromRow(row), true, nil
}

func (r *LeaderboardRepository) list(ctx context.Context, builder *qb.SelectBuilder) ([]leaderboard.Entry, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leaderboard query: %w", err)
	}

	var rows []leaderboardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	out := make([]leaderboard.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboardFromRow(row))
	}
	return out, nil
}

func leaderboardWriteError(op string, err error) error {
	if constraint, ok := uniqueConstraint(err); ok {
		return fmt.Errorf("%w: %s", leaderboard.ErrDuplicate, constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func leaderboardInsertModelFrom(item leaderboard.Entry) leaderboardInsertModel {
	return leaderboardInsertModel{
		User:            item.User,
		Team:            item.Team,
		TotalPoints:     item.TotalPoints,
		TotalActivities: item.TotalActivities,
		Rank:            item.Rank,
		LastUpdated:     item.LastUpdated,
	}
}

func leaderboardFromRow(row leaderboardTableModel) leaderboard.Entry {
	return leaderboard.Entry{
		ID:              formatID(row.ID),
		User:            row.User,
		Team:            row.Team,
		TotalPoints:     row.TotalPoints,
		TotalActivities: row.TotalActivities,
		Rank:            row.Rank,
		LastUpdated:     row.LastUpdated.UTC(),
	}
}
