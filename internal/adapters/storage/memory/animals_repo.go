package memory

import (
	"context"
	"sort"
	"sync"

	"zoo-inventory/internal/domain/animals"
	"zoo-inventory/internal/platform/apperr"
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[int64]animals.Animal
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[int64]animals.Animal),
	}
}

func (r *animalRepo) List(ctx context.Context, f animals.ListFilter) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, apperr.NotFound("Animal with id %d not found", id)
	}
	return a, nil
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = nextID(r.byID)
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id int64, p animals.Patch) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok || !a.IsActive {
		return animals.Animal{}, apperr.NotFound("Animal with id %d not found", id)
	}
	a = p.Apply(a)
	r.byID[id] = a
	return a, nil
}

func (r *animalRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok || !a.IsActive {
		return apperr.NotFound("Animal with id %d not found or already inactive", id)
	}
	a.IsActive = false
	r.byID[id] = a
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Animal with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}
