package leaderboard

import (
	"testing"

	"github.com/riskibarqy/octofit-tracker/internal/domain/activity"
)

func TestTallyActivities(t *testing.T) {
	t.Parallel()

	got := TallyActivities([]activity.Activity{
		{User: "a", Points: 10},
		{User: "a", Points: 5},
		{User: "b", Points: 20},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 tallies, got %d", len(got))
	}
	if got[0] != (Tally{User: "a", TotalPoints: 15, TotalActivities: 2}) {
		t.Fatalf("unexpected tally for a: %+v", got[0])
	}
	if got[1] != (Tally{User: "b", TotalPoints: 20, TotalActivities: 1}) {
		t.Fatalf("unexpected tally for b: %+v", got[1])
	}
}

func TestTallyActivities_Empty(t *testing.T) {
	t.Parallel()

	if got := TallyActivities(nil); len(got) != 0 {
		t.Fatalf("expected no tallies, got %+v", got)
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       []Entry
		wantUser []string
	}{
		{
			name:     "descending points",
			in:       []Entry{{User: "a", TotalPoints: 15}, {User: "b", TotalPoints: 20}},
			wantUser: []string{"b", "a"},
		},
		{
			name:     "ties broken by username",
			in:       []Entry{{User: "zed", TotalPoints: 30}, {User: "amy", TotalPoints: 30}, {User: "kim", TotalPoints: 40}},
			wantUser: []string{"kim", "amy", "zed"},
		},
		{
			name:     "empty",
			in:       nil,
			wantUser: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.in)
			if len(got) != len(tt.wantUser) {
				t.Fatalf("unexpected length: got=%d want=%d", len(got), len(tt.wantUser))
			}
			for i, entry := range got {
				if entry.User != tt.wantUser[i] {
					t.Fatalf("position %d: got user %q want %q", i, entry.User, tt.wantUser[i])
				}
				if entry.Rank != i+1 {
					t.Fatalf("position %d: got rank %d want %d", i, entry.Rank, i+1)
				}
			}
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []Entry{{User: "a", TotalPoints: 1}, {User: "b", TotalPoints: 2}}
	_ = Rank(in)
	if in[0].User != "a" || in[0].Rank != 0 {
		t.Fatalf("input mutated: %+v", in)
	}
}
