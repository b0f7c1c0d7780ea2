package leaderboard

import (
	"slices"
	"strings"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
)

// Tally is the aggregate of one user's activities.
type Tally struct {
	User            string
	TotalPoints     int
	TotalActivities int
}

// TallyActivities groups activities by user, in order of first appearance.
func TallyActivities(items []activity.Activity) []Tally {
	index := make(map[string]int, len(items))
	out := make([]Tally, 0)
	for _, item := range items {
		pos, ok := index[item.User]
		if !ok {
			pos = len(out)
			index[item.User] = pos
			out = append(out, Tally{User: item.User})
		}
		out[pos].TotalPoints += item.Points
		out[pos].TotalActivities++
	}

	return out
}

// Compare orders entries by total points descending. Equal totals fall back to
// username ascending so ranks do not depend on store order.
func Compare(a, b Entry) int {
	if a.TotalPoints != b.TotalPoints {
		if a.TotalPoints > b.TotalPoints {
			return -1
		}
		return 1
	}
	return strings.Compare(a.User, b.User)
}

// Rank returns a sorted copy of entries with dense ranks 1..n assigned.
func Rank(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, Compare)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
