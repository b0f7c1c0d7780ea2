package user

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by repositories when email or username is taken.
var ErrDuplicate = errors.New("user with this email or username already exists")

// Filter narrows List to users referencing one team. Zero value lists all.
type Filter struct {
	Team string
}

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item User) (User, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
	List(ctx context.Context, filter Filter) ([]User, error)
	Update(ctx context.Context, item User) (User, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
