package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	leaderboardmock "github.com/riskibarqy/octofit-tracker/internal/mocks/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type recordingMetrics struct {
	recomputes []int
	seeds      []int
}

func (m *recordingMetrics) ObserveLeaderboardRecompute(entries int, _ time.Duration, _ error) {
	m.recomputes = append(m.recomputes, entries)
}

func (m *recordingMetrics) ObserveSeed(activities int, _ time.Duration, _ error) {
	m.seeds = append(m.seeds, activities)
}

func seedRecomputeFixture(t *testing.T, svc services) {
	t.Helper()

	ctx := context.Background()
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, in := range []UserInput{
		{Email: "a@x.com", Username: "a", Password: "p", FullName: "A", Team: strPtr("Team Marvel")},
		{Email: "b@x.com", Username: "b", Password: "p", FullName: "B", Team: strPtr("Team DC")},
	} {
		if _, err := svc.users.Create(ctx, in); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	for _, in := range []ActivityInput{
		{User: "a", ActivityType: "Running", Duration: 10, Points: 10, Date: day},
		{User: "b", ActivityType: "Yoga", Duration: 20, Points: 20, Date: day},
		{User: "a", ActivityType: "Cycling", Duration: 5, Points: 5, Date: day.Add(time.Hour)},
	} {
		if _, err := svc.activities.Create(ctx, in); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}
}

func TestLeaderboardService_Recompute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	metrics := &recordingMetrics{}
	svc.leaderboard.metrics = metrics
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	svc.leaderboard.now = fixedClock(now)
	seedRecomputeFixture(t, svc)

	entries, err := svc.leaderboard.Recompute(ctx)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}

	want := []leaderboard.Entry{
		{User: "b", Team: "Team DC", TotalPoints: 20, TotalActivities: 1, Rank: 1},
		{User: "a", Team: "Team Marvel", TotalPoints: 15, TotalActivities: 2, Rank: 2},
	}
	for i, w := range want {
		got := entries[i]
		if got.User != w.User || got.Team != w.Team || got.TotalPoints != w.TotalPoints ||
			got.TotalActivities != w.TotalActivities || got.Rank != w.Rank {
			t.Fatalf("entry %d mismatch: got=%+v want=%+v", i, got, w)
		}
		if !got.LastUpdated.Equal(now) {
			t.Fatalf("entry %d last_updated not stamped: %v", i, got.LastUpdated)
		}
	}

	top, err := svc.leaderboard.TopUsers(ctx, 1)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(top) != 1 || top[0].User != "b" {
		t.Fatalf("unexpected top users: %+v", top)
	}

	if len(metrics.recomputes) != 1 || metrics.recomputes[0] != 2 {
		t.Fatalf("expected one recompute observation with 2 entries, got %v", metrics.recomputes)
	}
}

func TestLeaderboardService_RecomputeUpsertsExistingEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	seedRecomputeFixture(t, svc)

	if _, err := svc.leaderboard.Create(ctx, LeaderboardInput{User: "a", Team: "stale", TotalPoints: 999, Rank: 1}); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := svc.leaderboard.Create(ctx, LeaderboardInput{User: "idle", Team: "Team Ghost", TotalPoints: 17}); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	if _, err := svc.leaderboard.Recompute(ctx); err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	entries, err := svc.leaderboard.Recompute(ctx)
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected one entry per user, got %d: %+v", len(entries), entries)
	}

	byUser := make(map[string]leaderboard.Entry, len(entries))
	for _, e := range entries {
		byUser[e.User] = e
	}
	if got := byUser["a"]; got.TotalPoints != 15 || got.Team != "Team Marvel" {
		t.Fatalf("existing entry not recomputed: %+v", got)
	}
	if got := byUser["idle"]; got.TotalPoints != 17 || got.Rank != 2 {
		t.Fatalf("entry without activities should keep totals and be re-ranked: %+v", got)
	}
	if byUser["b"].Rank != 1 || byUser["a"].Rank != 3 {
		t.Fatalf("unexpected ranks: %+v", byUser)
	}
}

func TestLeaderboardService_RecomputeEmpty(t *testing.T) {
	t.Parallel()

	svc := newServices()
	entries, err := svc.leaderboard.Recompute(context.Background())
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}

func TestLeaderboardService_QueryValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()

	if _, err := svc.leaderboard.TopUsers(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
	if _, err := svc.leaderboard.TopUsers(ctx, -3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
	if _, err := svc.leaderboard.ListByTeam(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
	}
}

func TestLeaderboardService_DuplicateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	if _, err := svc.leaderboard.Create(ctx, LeaderboardInput{User: "a", TotalPoints: 1}); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := svc.leaderboard.Create(ctx, LeaderboardInput{User: "a", TotalPoints: 2}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate user, got %v", err)
	}
}

func TestLeaderboardService_TopUsersPassesLimitToRepository(t *testing.T) {
	t.Parallel()

	repo := leaderboardmock.NewRepository(t)
	svc := NewLeaderboardService(repo, nil, nil, nil, logging.NewNop())

	expected := []leaderboard.Entry{{ID: "1", User: "b", TotalPoints: 20, Rank: 1}}
	repo.On("Top", mock.Anything, 5).Return(expected, nil).Once()

	got, err := svc.TopUsers(context.Background(), 5)
	if err != nil {
		t.Fatalf("top users: %v", err)
	}
	if len(got) != 1 || got[0].User != "b" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestLeaderboardService_GetRepositoryError(t *testing.T) {
	t.Parallel()

	repo := leaderboardmock.NewRepository(t)
	svc := NewLeaderboardService(repo, nil, nil, nil, logging.NewNop())

	repo.On("GetByID", mock.Anything, "7").Return(leaderboard.Entry{}, false, errors.New("connection reset")).Once()

	_, err := svc.Get(context.Background(), "7")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
}
