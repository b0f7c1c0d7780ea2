package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

type LeaderboardRepository struct {
	t *table[leaderboard.Entry]
}

func NewLeaderboardRepository(ids idgen.Generator) *LeaderboardRepository {
	return &LeaderboardRepository{t: newTable[leaderboard.Entry](ids)}
}

func (r *LeaderboardRepository) Create(_ context.Context, item leaderboard.Entry) (leaderboard.Entry, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if err := r.checkUnique(item, ""); err != nil {
		return leaderboard.Entry{}, err
	}
	return r.t.insert(item, func(e *leaderboard.Entry, id string) { e.ID = id })
}

func (r *LeaderboardRepository) GetByID(_ context.Context, id string) (leaderboard.Entry, bool, error) {
	item, ok := r.t.get(id)
	return item, ok, nil
}

func (r *LeaderboardRepository) GetByUser(_ context.Context, username string) (leaderboard.Entry, bool, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	item, ok := r.t.find(func(e leaderboard.Entry) bool { return e.User == username })
	return item, ok, nil
}

func (r *LeaderboardRepository) List(_ context.Context, filter leaderboard.Filter) ([]leaderboard.Entry, error) {
	r.t.mu.RLock()
	rows := r.t.snapshot(func(e leaderboard.Entry) bool {
		return filter.Team == "" || e.Team == filter.Team
	})
	r.t.mu.RUnlock()

	slices.SortStableFunc(rows, leaderboard.Compare)
	return rows, nil
}

func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	rows, err := r.List(ctx, leaderboard.Filter{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *LeaderboardRepository) Update(_ context.Context, item leaderboard.Entry) (leaderboard.Entry, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if _, ok := r.t.rows[item.ID]; !ok {
		return leaderboard.Entry{}, false, nil
	}
	if err := r.checkUnique(item, item.ID); err != nil {
		return leaderboard.Entry{}, true, err
	}
	r.t.rows[item.ID] = item
	return item, true, nil
}

func (r *LeaderboardRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.t.delete(id), nil
}

func (r *LeaderboardRepository) DeleteAll(_ context.Context) error {
	r.t.truncate()
	return nil
}

func (r *LeaderboardRepository) checkUnique(item leaderboard.Entry, selfID string) error {
	if _, taken := r.t.find(func(e leaderboard.Entry) bool {
		return e.ID != selfID && e.User == item.User
	}); taken {
		return fmt.Errorf("%w: user=%s", leaderboard.ErrDuplicate, item.User)
	}
	return nil
}
