package leaderboard

import (
	"fmt"
	"strings"
	"time"
)

// Column widths of the leaderboard table.
const (
	MaxUserLength = 150
	MaxTeamLength = 100
)

// Entry is one user's standing. Entries are derived from activities by Recompute
// and are not kept in sync with later activity writes.
type Entry struct {
	ID              string
	User            string
	Team            string
	TotalPoints     int
	TotalActivities int
	Rank            int
	LastUpdated     time.Time
}

// Validate rejects blank users, oversized names and negative counters.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.User) == "" {
		return fmt.Errorf("leaderboard user is required")
	}
	if len(e.User) > MaxUserLength {
		return fmt.Errorf("leaderboard user must be at most %d characters", MaxUserLength)
	}
	if len(e.Team) > MaxTeamLength {
		return fmt.Errorf("leaderboard team must be at most %d characters", MaxTeamLength)
	}
	if e.TotalPoints < 0 {
		return fmt.Errorf("leaderboard total points must be >= 0")
	}
	if e.TotalActivities < 0 {
		return fmt.Errorf("leaderboard total activities must be >= 0")
	}
	if e.Rank < 0 {
		return fmt.Errorf("leaderboard rank must be >= 0")
	}

	return nil
}
