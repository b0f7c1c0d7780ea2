package workout

import "context"

// Filter selects workouts by a single field. Zero value lists all.
type Filter struct {
	Difficulty string
	Category   string
}

// Repository describes workout persistence needs from use cases.
// List returns workouts ordered by difficulty, then name.
type Repository interface {
	Create(ctx context.Context, item Workout) (Workout, error)
	GetByID(ctx context.Context, id string) (Workout, bool, error)
	List(ctx context.Context, filter Filter) ([]Workout, error)
	Update(ctx context.Context, item Workout) (Workout, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}
