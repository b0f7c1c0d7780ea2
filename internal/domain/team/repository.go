package team

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by repositories when the team name is taken.
var ErrDuplicate = errors.New("team with this name already exists")

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) (Team, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
