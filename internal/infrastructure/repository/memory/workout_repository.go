package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/octofit-tracker/internal/domain/workout"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

type WorkoutRepository struct {
	t *table[workout.Workout]
}

func NewWorkoutRepository(ids idgen.Generator) *WorkoutRepository {
	return &WorkoutRepository{t: newTable[workout.Workout](ids)}
}

func (r *WorkoutRepository) Create(_ context.Context, item workout.Workout) (workout.Workout, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	return r.t.insert(cloneWorkout(item), func(w *workout.Workout, id string) { w.ID = id })
}

func (r *WorkoutRepository) GetByID(_ context.Context, id string) (workout.Workout, bool, error) {
	item, ok := r.t.get(id)
	return cloneWorkout(item), ok, nil
}

func (r *WorkoutRepository) List(_ context.Context, filter workout.Filter) ([]workout.Workout, error) {
	r.t.mu.RLock()
	rows := r.t.snapshot(func(w workout.Workout) bool {
		if filter.Difficulty != "" && w.Difficulty != filter.Difficulty {
			return false
		}
		if filter.Category != "" && w.Category != filter.Category {
			return false
		}
		return true
	})
	r.t.mu.RUnlock()

	for i := range rows {
		rows[i] = cloneWorkout(rows[i])
	}
	slices.SortStableFunc(rows, workout.Compare)
	return rows, nil
}

func (r *WorkoutRepository) Update(_ context.Context, item workout.Workout) (workout.Workout, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if _, ok := r.t.rows[item.ID]; !ok {
		return workout.Workout{}, false, nil
	}
	r.t.rows[item.ID] = cloneWorkout(item)
	return cloneWorkout(item), true, nil
}

func (r *WorkoutRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.t.delete(id), nil
}

func (r *WorkoutRepository) DeleteAll(_ context.Context) error {
	r.t.truncate()
	return nil
}

func cloneWorkout(w workout.Workout) workout.Workout {
	w.Exercises = slices.Clone(w.Exercises)
	if w.Exercises == nil {
		w.Exercises = []string{}
	}
	return w
}
