package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	qb "github.com/riskibarqy/octofit-tracker/internal/platform/querybuilder"
)

const workoutsTable = "workouts"

type WorkoutRepository struct {
	db *sqlx.DB
}

func NewWorkoutRepository(db *sqlx.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(ctx context.Context, item workout.Workout) (workout.Workout, error) {
	query, args, err := qb.InsertModel(workoutsTable, workoutInsertModelFrom(item)).Returning("*").ToSQL()
	if err != nil {
		return workout.Workout{}, fmt.Errorf("build insert workout query: %w", err)
	}

	var row workoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return workout.Workout{}, fmt.Errorf("insert workout: %w", err)
	}

	return workoutFromRow(row), nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id string) (workout.Workout, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return workout.Workout{}, false, nil
	}

	query, args, err := qb.Select("*").From(workoutsTable).
		Where(qb.Eq("id", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return workout.Workout{}, false, fmt.Errorf("build get workout query: %w", err)
	}

	var row workoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return workout.Workout{}, false, nil
		}
		return workout.Workout{}, false, fmt.Errorf("get workout: %w", err)
	}

	return workoutFromRow(row), true, nil
}

func (r *WorkoutRepository) List(ctx context.Context, filter workout.Filter) ([]workout.Workout, error) {
	query, args, err := qb.Select("*").From(workoutsTable).
		Where(
			qb.EqIf("difficulty", filter.Difficulty),
			qb.EqIf("category", filter.Category),
		).
		OrderBy(`difficulty COLLATE "C"`, `name COLLATE "C"`, "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list workouts query: %w", err)
	}

	var rows []workoutTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	out := make([]workout.Workout, 0, len(rows))
	for _, row := range rows {
		out = append(out, workoutFromRow(row))
	}
	return out, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, item workout.Workout) (workout.Workout, bool, error) {
	key, ok := parseID(item.ID)
	if !ok {
		return workout.Workout{}, false, nil
	}

	query, args, err := qb.UpdateModel(workoutsTable, workoutInsertModelFrom(item), "created_at").
		Where(qb.Eq("id", key)).
		Returning("*").
		ToSQL()
	if err != nil {
		return workout.Workout{}, false, fmt.Errorf("build update workout query: %w", err)
	}

	var row workoutTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return workout.Workout{}, false, nil
		}
		return workout.Workout{}, true, fmt.Errorf("update workout: %w", err)
	}

	return workoutFromRow(row), true, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return deleteByID(ctx, r.db, workoutsTable, key)
}

func (r *WorkoutRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.db, workoutsTable)
}

func workoutInsertModelFrom(item workout.Workout) workoutInsertModel {
	return workoutInsertModel{
		Name:           item.Name,
		Description:    item.Description,
		Difficulty:     item.Difficulty,
		Duration:       item.Duration,
		Category:       item.Category,
		Exercises:      stringList(item.Exercises),
		RecommendedFor: item.RecommendedFor,
		CreatedAt:      item.CreatedAt,
	}
}

func workoutFromRow(row workoutTableModel) workout.Workout {
	exercises := []string(row.Exercises)
	if exercises == nil {
		exercises = []string{}
	}
	return workout.Workout{
		ID:             formatID(row.ID),
		Name:           row.Name,
		Description:    row.Description,
		Difficulty:     row.Difficulty,
		Duration:       row.Duration,
		Category:       row.Category,
		Exercises:      exercises,
		RecommendedFor: row.RecommendedFor,
		CreatedAt:      row.CreatedAt.UTC(),
	}
}
