package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

type UserRepository struct {
	t *table[user.User]
}

func NewUserRepository(ids idgen.Generator) *UserRepository {
	return &UserRepository{t: newTable[user.User](ids)}
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if err := r.checkUnique(item, ""); err != nil {
		return user.User{}, err
	}
	return r.t.insert(cloneUser(item), func(u *user.User, id string) { u.ID = id })
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	item, ok := r.t.get(id)
	return cloneUser(item), ok, nil
}

func (r *UserRepository) List(_ context.Context, filter user.Filter) ([]user.User, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	rows := r.t.snapshot(func(u user.User) bool {
		return filter.Team == "" || u.TeamName() == filter.Team
	})
	for i := range rows {
		rows[i] = cloneUser(rows[i])
	}
	return rows, nil
}

func (r *UserRepository) Update(_ context.Context, item user.User) (user.User, bool, error) {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if _, ok := r.t.rows[item.ID]; !ok {
		return user.User{}, false, nil
	}
	if err := r.checkUnique(item, item.ID); err != nil {
		return user.User{}, true, err
	}
	r.t.rows[item.ID] = cloneUser(item)
	return cloneUser(item), true, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.t.delete(id), nil
}

func (r *UserRepository) DeleteAll(_ context.Context) error {
	r.t.truncate()
	return nil
}

func (r *UserRepository) checkUnique(item user.User, selfID string) error {
	if _, taken := r.t.find(func(u user.User) bool {
		return u.ID != selfID && u.Email == item.Email
	}); taken {
		return fmt.Errorf("%w: email=%s", user.ErrDuplicate, item.Email)
	}
	if _, taken := r.t.find(func(u user.User) bool {
		return u.ID != selfID && u.Username == item.Username
	}); taken {
		return fmt.Errorf("%w: username=%s", user.ErrDuplicate, item.Username)
	}
	return nil
}

func cloneUser(u user.User) user.User {
	if u.Team != nil {
		v := *u.Team
		u.Team = &v
	}
	if u.AvatarURL != nil {
		v := *u.AvatarURL
		u.AvatarURL = &v
	}
	return u
}
