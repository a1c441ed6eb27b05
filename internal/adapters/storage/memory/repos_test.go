package memory

import (
	"context"
	"sync"
	"testing"

	"zoo-inventory/internal/domain/animalcares"
	"zoo-inventory/internal/domain/animals"
	"zoo-inventory/internal/platform/apperr"
)

func TestAnimalRepo_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	const n = 50
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[int64]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := repo.Create(ctx, animals.Animal{Name: "x", Specie: "y", IsActive: true})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			mu.Lock()
			ids[a.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(ids))
	}
	for id := int64(1); id <= n; id++ {
		if !ids[id] {
			t.Fatalf("missing id %d", id)
		}
	}
}

func TestAnimalCareRepo_FirstByAnimal(t *testing.T) {
	repo := NewAnimalCareRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, animalcares.AnimalCare{CareID: 1, AnimalID: 2})
	_, _ = repo.Create(ctx, animalcares.AnimalCare{CareID: 5, AnimalID: 3})
	_, _ = repo.Create(ctx, animalcares.AnimalCare{CareID: 9, AnimalID: 3})

	got, err := repo.FirstByAnimalID(ctx, 3)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if got.ID != 2 || got.CareID != 5 {
		t.Fatalf("expected relation 2, got %+v", got)
	}

	if _, err := repo.FirstByAnimalID(ctx, 4); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
