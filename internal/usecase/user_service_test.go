package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	t.Parallel()

	svc := newServices()
	created, err := svc.users.Create(context.Background(), UserInput{
		Email:    "tony.stark@marvel.com",
		Username: "iron_man",
		Password: "jarvis123",
		FullName: "Tony Stark",
		Team:     strPtr("Team Marvel"),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if created.PasswordHash != "hashed:jarvis123" {
		t.Fatalf("password was not hashed: %q", created.PasswordHash)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
}

func TestUserService_DuplicateEmailOrUsername(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	base := UserInput{Email: "thor@asgard.com", Username: "thor", Password: "mjolnir123", FullName: "Thor Odinson"}
	if _, err := svc.users.Create(ctx, base); err != nil {
		t.Fatalf("create user: %v", err)
	}

	sameEmail := base
	sameEmail.Username = "thor2"
	if _, err := svc.users.Create(ctx, sameEmail); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate email, got %v", err)
	}

	sameUsername := base
	sameUsername.Email = "odinson@asgard.com"
	if _, err := svc.users.Create(ctx, sameUsername); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate username, got %v", err)
	}

	users, err := svc.users.List(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(users))
	}
}

func TestUserService_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input UserInput
	}{
		{name: "missing email", input: UserInput{Username: "a", Password: "p", FullName: "A"}},
		{name: "invalid email", input: UserInput{Email: "not-an-email", Username: "a", Password: "p", FullName: "A"}},
		{name: "missing username", input: UserInput{Email: "a@x.com", Password: "p", FullName: "A"}},
		{name: "missing password", input: UserInput{Email: "a@x.com", Username: "a", FullName: "A"}},
		{name: "missing full name", input: UserInput{Email: "a@x.com", Username: "a", Password: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newServices()
			if _, err := svc.users.Create(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserService_ListByTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	for _, in := range []UserInput{
		{Email: "a@x.com", Username: "a", Password: "p", FullName: "A", Team: strPtr("Team Marvel")},
		{Email: "b@x.com", Username: "b", Password: "p", FullName: "B", Team: strPtr("Team DC")},
		{Email: "c@x.com", Username: "c", Password: "p", FullName: "C", Team: strPtr("Team Ghost")},
	} {
		if _, err := svc.users.Create(ctx, in); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	if _, err := svc.users.ListByTeam(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
	}

	got, err := svc.users.ListByTeam(ctx, "Team Ghost")
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(got) != 1 || got[0].Username != "c" {
		t.Fatalf("orphaned team reference should still filter: %+v", got)
	}
}

func TestUserService_UpdateKeepsCreatedAt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.users.now = fixedClock(created)

	item, err := svc.users.Create(ctx, UserInput{Email: "a@x.com", Username: "a", Password: "p", FullName: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.users.now = fixedClock(created.Add(48 * time.Hour))
	updated, err := svc.users.Update(ctx, item.ID, UserInput{Email: "a@x.com", Username: "a2", Password: "p2", FullName: "A Two"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed: %v", updated.CreatedAt)
	}
	if updated.Username != "a2" || updated.PasswordHash != "hashed:p2" {
		t.Fatalf("unexpected updated user: %+v", updated)
	}
}

func TestUserService_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()

	if _, err := svc.users.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
	if _, err := svc.users.Update(ctx, "missing", UserInput{Email: "a@x.com", Username: "a", Password: "p", FullName: "A"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.users.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
