package workout

import (
	"fmt"
	"strings"
	"time"
)

// Column widths of the workouts table.
const (
	MaxNameLength           = 255
	MaxDifficultyLength     = 50
	MaxCategoryLength       = 100
	MaxRecommendedForLength = 100
)

// Workout is a catalog entry of suggested exercises.
type Workout struct {
	ID             string
	Name           string
	Description    string
	Difficulty     string
	Duration       int
	Category       string
	Exercises      []string
	RecommendedFor string
	CreatedAt      time.Time
}

// Validate checks required fields and length limits.
func (w Workout) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("workout name is required")
	}
	if len(w.Name) > MaxNameLength {
		return fmt.Errorf("workout name must be at most %d characters", MaxNameLength)
	}
	if strings.TrimSpace(w.Description) == "" {
		return fmt.Errorf("workout description is required")
	}
	if strings.TrimSpace(w.Difficulty) == "" {
		return fmt.Errorf("workout difficulty is required")
	}
	if len(w.Difficulty) > MaxDifficultyLength {
		return fmt.Errorf("workout difficulty must be at most %d characters", MaxDifficultyLength)
	}
	if w.Duration <= 0 {
		return fmt.Errorf("workout duration must be > 0")
	}
	if strings.TrimSpace(w.Category) == "" {
		return fmt.Errorf("workout category is required")
	}
	if len(w.Category) > MaxCategoryLength {
		return fmt.Errorf("workout category must be at most %d characters", MaxCategoryLength)
	}
	if len(w.RecommendedFor) > MaxRecommendedForLength {
		return fmt.Errorf("workout recommended_for must be at most %d characters", MaxRecommendedForLength)
	}

	return nil
}

// Compare orders workouts by difficulty, then name.
func Compare(a, b Workout) int {
	if c := strings.Compare(a.Difficulty, b.Difficulty); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
