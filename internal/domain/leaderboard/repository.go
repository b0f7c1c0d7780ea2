package leaderboard

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by repositories when an entry for the user already exists.
var ErrDuplicate = errors.New("leaderboard entry for this user already exists")

// Filter selects entries by team. Zero value lists all.
type Filter struct {
	Team string
}

// Repository describes leaderboard persistence needs from use cases.
// List and Top return entries in standing order: total points descending, then username.
type Repository interface {
	Create(ctx context.Context, item Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, bool, error)
	GetByUser(ctx context.Context, username string) (Entry, bool, error)
	List(ctx context.Context, filter Filter) ([]Entry, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
	Update(ctx context.Context, item Entry) (Entry, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
