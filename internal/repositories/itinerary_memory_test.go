package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"tripwise/internal/models/response_models"
)

func sampleInput(shareID string) CreateItineraryInput {
	return CreateItineraryInput{
		Location:     "Goa",
		FromLocation: "Delhi",
		StartDate:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Duration:     3,
		Plan: response_models.Plan{
			DailyPlans: []response_models.DailyPlan{
				{Day: 1, Activities: []response_models.Activity{{Time: "9:00 AM", Activity: "Beach"}}},
			},
		},
		ShareID: shareID,
	}
}

func TestMemoryCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleInput("share-aaaa1"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	second, err := repo.Create(ctx, sampleInput("share-bbbb2"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || second.CreatedAt.IsZero() {
		t.Error("expected creation timestamps")
	}
}

func TestMemoryGetByShareID(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	ctx := context.Background()

	a, _ := repo.Create(ctx, sampleInput("share-aaaa1"))
	b, _ := repo.Create(ctx, sampleInput("share-bbbb2"))

	gotA, err := repo.GetByShareID(ctx, "share-aaaa1")
	if err != nil {
		t.Fatalf("GetByShareID() error: %v", err)
	}
	gotB, err := repo.GetByShareID(ctx, "share-bbbb2")
	if err != nil {
		t.Fatalf("GetByShareID() error: %v", err)
	}

	if gotA == nil || gotA.ID != a.ID {
		t.Errorf("share-aaaa1 resolved to %+v, want id %d", gotA, a.ID)
	}
	if gotB == nil || gotB.ID != b.ID {
		t.Errorf("share-bbbb2 resolved to %+v, want id %d", gotB, b.ID)
	}
}

func TestMemoryGetByShareIDMiss(t *testing.T) {
	repo := NewMemoryItineraryRepository()

	got, err := repo.GetByShareID(context.Background(), "never-created")
	if err != nil {
		t.Fatalf("GetByShareID() error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown share id, got %+v", got)
	}
}

func TestMemoryCreateConcurrentIDsAreUnique(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan uint, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			it, err := repo.Create(ctx, sampleInput(fmt.Sprintf("share-%05d", i)))
			if err != nil {
				t.Errorf("Create() error: %v", err)
				return
			}
			ids <- it.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemoryItineraryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, sampleInput("share-aaaa1"))
	created.Location = "Mutated"

	got, _ := repo.GetByShareID(ctx, "share-aaaa1")
	if got.Location != "Goa" {
		t.Errorf("stored record was mutated through the returned pointer: %q", got.Location)
	}
}
