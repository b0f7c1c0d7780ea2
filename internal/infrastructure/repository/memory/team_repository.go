package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

type TeamRepository struct {
	t *table[team.Team]
}

func NewTeamRepository(ids idgen.Generator) *TeamRepository {
	return &TeamRepository{t: newTable[team.Team](ids)}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if err := r.checkUnique(item, ""); err != nil {
		return team.Team{}, err
	}
	return r.t.insert(cloneTeam(item), func(t *team.Team, id string) { t.ID = id })
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	item, ok := r.t.get(id)
	return cloneTeam(item), ok, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	item, ok := r.t.find(func(t team.Team) bool { return t.Name == name })
	return cloneTeam(item), ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.snapshot(nil)
	for i := range rows {
		rows[i] = cloneTeam(rows[i])
	}
	return rows, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if _, ok := r.t.rows[item.ID]; !ok {
		return team.Team{}, false, nil
	}
	if err := r.checkUnique(item, item.ID); err != nil {
		return team.Team{}, true, err
	}
	r.t.rows[item.ID] = cloneTeam(item)
	return cloneTeam(item), true, nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.t.delete(id), nil
}

func (r *TeamRepository) DeleteAll(_ context.Context) error {
	r.t.truncate()
	return nil
}

func (r *TeamRepository) checkUnique(item team.Team, selfID string) error {
	if _, taken := r.t.find(func(t team.Team) bool {
		return t.ID != selfID && t.Name == item.Name
	}); taken {
		return fmt.Errorf("%w: name=%s", team.ErrDuplicate, item.Name)
	}
	return nil
}

func cloneTeam(t team.Team) team.Team {
	t.Members = slices.Clone(t.Members)
	if t.Members == nil {
		t.Members = []string{}
	}
	return t
}
