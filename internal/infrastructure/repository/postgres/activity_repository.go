package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	qb "github.com/riskibarqy/octofit-tracker/internal/platform/querybuilder"
)

const activitiesTable = "activities"

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, item activity.Activity) (activity.Activity, error) {
	query, args, err := qb.InsertModel(activitiesTable, activityInsertModelFrom(item)).Returning("*").ToSQL()
	if err != nil {
		return activity.Activity{}, fmt.Errorf("build insert activity query: %w", err)
	}

	var row activityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return activity.Activity{}, fmt.Errorf("insert activity: %w", err)
	}

	return activityFromRow(row), nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (activity.Activity, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return activity.Activity{}, false, nil
	}

	query, args, err := qb.Select("*").From(activitiesTable).
		Where(qb.Eq("id", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return activity.Activity{}, false, fmt.Errorf("build get activity query: %w", err)
	}

	var row activityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return activity.Activity{}, false, nil
		}
		return activity.Activity{}, false, fmt.Errorf("get activity: %w", err)
	}

	return activityFromRow(row), true, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter activity.Filter) ([]activity.Activity, error) {
	query, args, err := qb.Select("*").From(activitiesTable).
		Where(
			qb.EqIf("username", filter.User),
			qb.EqIf("activity_type", filter.ActivityType),
		).
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list activities query: %w", err)
	}

	var rows []activityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]activity.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, activityFromRow(row))
	}
	return out, nil
}

func (r *ActivityRepository) Update(ctx context.Context, item activity.Activity) (activity.Activity, bool, error) {
	key, ok := parseID(item.ID)
	if !ok {
		return activity.Activity{}, false, nil
	}

	query, args, err := qb.UpdateModel(activitiesTable, activityInsertModelFrom(item), "created_at").
		Where(qb.Eq("id", key)).
		Returning("*").
		ToSQL()
	if err != nil {
		return activity.Activity{}, false, fmt.Errorf("build update activity query: %w", err)
	}

	var row activityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return activity.Activity{}, false, nil
		}
		return activity.Activity{}, true, fmt.Errorf("update activity: %w", err)
	}

	return activityFromRow(row), true, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return deleteByID(ctx, r.db, activitiesTable, key)
}

func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, activitiesTable)
}

func activityInsertModelFrom(item activity.Activity) activityInsertModel {
	return activityInsertModel{
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

func activityFromRow(row activityTableModel) activity.Activity {
	return activity.Activity{
		ID:           formatID(row.ID),
		User:         row.User,
		ActivityType: row.ActivityType,
		Duration:     row.Duration,
		Distance:     row.Distance,
		Calories:     row.Calories,
		Points:       row.Points,
		Date:         row.Date.UTC(),
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
