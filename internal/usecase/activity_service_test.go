package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestActivityService_ListFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	inputs := []ActivityInput{
		{User: "iron_man", ActivityType: "Running", Duration: 30, Points: 30, Date: day},
		{User: "iron_man", ActivityType: "Yoga", Duration: 45, Points: 45, Date: day.Add(24 * time.Hour)},
		{User: "batman", ActivityType: "Running", Duration: 20, Points: 20, Date: day.Add(48 * time.Hour)},
	}
	for _, in := range inputs {
		if _, err := svc.activities.Create(ctx, in); err != nil {
			t.Fatalf("create activity: %v", err)
		}
	}

	all, err := svc.activities.List(ctx)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(all) != 3 || all[0].User != "batman" {
		t.Fatalf("expected newest activity first, got %+v", all)
	}

	byUser, err := svc.activities.ListByUser(ctx, "iron_man")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 2 || byUser[0].ActivityType != "Yoga" {
		t.Fatalf("unexpected activities by user: %+v", byUser)
	}

	byType, err := svc.activities.ListByType(ctx, "Running")
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 2 {
		t.Fatalf("expected two running activities, got %d", len(byType))
	}

	if _, err := svc.activities.ListByType(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing type, got %v", err)
	}
	if _, err := svc.activities.ListByUser(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
}

func TestActivityService_CreateValidation(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input ActivityInput
	}{
		{name: "zero duration", input: ActivityInput{User: "a", ActivityType: "Running", Date: day}},
		{name: "negative distance", input: ActivityInput{User: "a", ActivityType: "Running", Duration: 10, Distance: -1, Date: day}},
		{name: "negative points", input: ActivityInput{User: "a", ActivityType: "Running", Duration: 10, Points: -5, Date: day}},
		{name: "missing user", input: ActivityInput{ActivityType: "Running", Duration: 10, Date: day}},
		{name: "missing date", input: ActivityInput{User: "a", ActivityType: "Running", Duration: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newServices()
			if _, err := svc.activities.Create(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestActivityService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices()
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := svc.activities.Create(ctx, ActivityInput{User: "a", ActivityType: "Running", Duration: 10, Points: 10, Date: day})
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}

	updated, err := svc.activities.Update(ctx, created.ID, ActivityInput{User: "a", ActivityType: "Cycling", Duration: 60, Distance: 12.5, Points: 185, Date: day})
	if err != nil {
		t.Fatalf("update activity: %v", err)
	}
	if updated.ActivityType != "Cycling" || updated.Points != 185 || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected updated activity: %+v", updated)
	}

	if err := svc.activities.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete activity: %v", err)
	}
	if err := svc.activities.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
