package activity

import (
	"fmt"
	"strings"
	"time"
)

const (
	MaxUserLength = 150
	MaxTypeLength = 100
)

// Activity is one logged exercise session. User is a username, not a foreign key.
type Activity struct {
	ID           string
	User         string
	ActivityType string
	Duration     int
	Distance     float64
	Calories     int
	Points       int
	Date         time.Time
	Notes        string
	CreatedAt    time.Time
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.User) == "" {
		return fmt.Errorf("activity user is required")
	}
	if len(a.User) > MaxUserLength {
		return fmt.Errorf("activity user must be at most %d characters", MaxUserLength)
	}
	if strings.TrimSpace(a.ActivityType) == "" {
		return fmt.Errorf("activity type is required")
	}
	if len(a.ActivityType) > MaxTypeLength {
		return fmt.Errorf("activity type must be at most %d characters", MaxTypeLength)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("activity duration must be > 0")
	}
	if a.Distance < 0 {
		return fmt.Errorf("activity distance must be >= 0")
	}
	if a.Calories < 0 {
		return fmt.Errorf("activity calories must be >= 0")
	}
	if a.Points < 0 {
		return fmt.Errorf("activity points must be >= 0")
	}
	if a.Date.IsZero() {
		return fmt.Errorf("activity date is required")
	}

	return nil
}

// Compare orders activities newest first, for use with slices.SortStableFunc.
func Compare(a, b Activity) int {
	return b.Date.Compare(a.Date)
}
