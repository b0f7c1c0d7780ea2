package activity

import "context"

// Filter selects activities by a single field. Zero value lists all.
type Filter struct {
	User         string
	ActivityType string
}

// Repository describes activity persistence needs from use cases.
// List returns the most recent date first.
type Repository interface {
	Create(ctx context.Context, item Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, bool, error)
	List(ctx context.Context, filter Filter) ([]Activity, error)
	Update(ctx context.Context, item Activity) (Activity, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
