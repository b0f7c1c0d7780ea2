package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func createTestTeam(t *testing.T, svc services) string {
	t.Helper()

	created, err := svc.teams.Create(context.Background(), TeamInput{
		Name:        "Team Marvel",
		Description: "Avengers assemble!",
		Captain:     "iron_man",
		Members:     []string{"iron_man", "thor"},
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	return created.ID
}

func TestTeamService_AddMember(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	teamID := createTestTeam(t, svc)

	updated, err := svc.teams.AddMember(ctx, teamID, "hulk")
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	want := []string{"iron_man", "thor", "hulk"}
	if !slices.Equal(updated.Members, want) {
		t.Fatalf("unexpected members: got=%v want=%v", updated.Members, want)
	}

	if _, err := svc.teams.AddMember(ctx, teamID, "hulk"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on duplicate add, got %v", err)
	}

	stored, err := svc.teams.Get(ctx, teamID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if !slices.Equal(stored.Members, want) {
		t.Fatalf("duplicate add changed members: %v", stored.Members)
	}
}

func TestTeamService_RemoveMember(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	teamID := createTestTeam(t, svc)

	if _, err := svc.teams.RemoveMember(ctx, teamID, "batman"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on non-member remove, got %v", err)
	}
	stored, _ := svc.teams.Get(ctx, teamID)
	if !slices.Equal(stored.Members, []string{"iron_man", "thor"}) {
		t.Fatalf("failed remove changed members: %v", stored.Members)
	}

	updated, err := svc.teams.RemoveMember(ctx, teamID, "thor")
	if err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if !slices.Equal(updated.Members, []string{"iron_man"}) {
		t.Fatalf("unexpected members after remove: %v", updated.Members)
	}
}

func TestTeamService_MemberOperationErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	teamID := createTestTeam(t, svc)

	if _, err := svc.teams.AddMember(ctx, teamID, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank username, got %v", err)
	}
	if _, err := svc.teams.AddMember(ctx, "missing", "hulk"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
	if _, err := svc.teams.RemoveMember(ctx, "missing", "thor"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestTeamService_DuplicateName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	createTestTeam(t, svc)

	_, err := svc.teams.Create(ctx, TeamInput{Name: "Team Marvel", Captain: "thor"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate team name, got %v", err)
	}
}

func TestTeamService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	teamID := createTestTeam(t, svc)

	updated, err := svc.teams.Update(ctx, teamID, TeamInput{Name: "Team Marvel", Captain: "thor", TotalPoints: 120})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if updated.Captain != "thor" || updated.TotalPoints != 120 || len(updated.Members) != 0 {
		t.Fatalf("unexpected updated team: %+v", updated)
	}

	if _, err := svc.teams.Update(ctx, teamID, TeamInput{Name: "Team Marvel", Captain: "thor", TotalPoints: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative points, got %v", err)
	}

	if err := svc.teams.Delete(ctx, teamID); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	if _, err := svc.teams.Get(ctx, teamID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
