package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

type ActivityRepository struct {
	t *table[activity.Activity]
}

func NewActivityRepository(ids idgen.Generator) *ActivityRepository {
	return &ActivityRepository{t: newTable[activity.Activity](ids)}
}

func (r *ActivityRepository) Create(_ context.Context, item activity.Activity) (activity.Activity, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	return r.t.insert(item, func(a *activity.Activity, id string) { a.ID = id })
}

func (r *ActivityRepository) GetByID(_ context.Context, id string) (activity.Activity, bool, error) {
	item, ok := r.t.get(id)
	return item, ok, nil
}

func (r *ActivityRepository) List(_ context.Context, filter activity.Filter) ([]activity.Activity, error) {
	r.t.mu.RLock()
	rows := r.t.snapshot(func(a activity.Activity) bool {
		if filter.User != "" && a.User != filter.User {
			return false
		}
		if filter.ActivityType != "" && a.ActivityType != filter.ActivityType {
			return false
		}
		return true
	})
	r.t.mu.RUnlock()

	slices.SortStableFunc(rows, activity.Compare)
	return rows, nil
}

func (r *ActivityRepository) Update(_ context.Context, item activity.Activity) (activity.Activity, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if _, ok := r.t.rows[item.ID]; !ok {
		return activity.Activity{}, false, nil
	}
	r.t.rows[item.ID] = item
	return item, true, nil
}

func (r *ActivityRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.t.delete(id), nil
}

func (r *ActivityRepository) DeleteAll(_ context.Context) error {
	r.t.truncate()
	return nil
}
