package memory

import (
	"context"
	"sort"
	"sync"

	"zoo-inventory/internal/domain/animalcares"
	"zoo-inventory/internal/platform/apperr"
)

type animalCareRepo struct {
	mu   sync.RWMutex
	byID map[int64]animalcares.AnimalCare
}

func NewAnimalCareRepo() animalcares.Repository {
	return &animalCareRepo{
		byID: make(map[int64]animalcares.AnimalCare),
	}
}

// filtered devuelve las relaciones ordenadas por ID. animalID == 0 => todas.
func (r *animalCareRepo) filtered(animalID int64) []animalcares.AnimalCare {
	out := make([]animalcares.AnimalCare, 0)
	for _, ac := range r.byID {
		if animalID != 0 && ac.AnimalID != animalID {
			continue
		}
		out = append(out, ac)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *animalCareRepo) List(ctx context.Context) ([]animalcares.AnimalCare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filtered(0), nil
}

func (r *animalCareRepo) ListByAnimalID(ctx context.Context, animalID int64) ([]animalcares.AnimalCare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if animalID == 0 {
		return []animalcares.AnimalCare{}, nil
	}
	return r.filtered(animalID), nil
}

func (r *animalCareRepo) GetByID(ctx context.Context, id int64) (animalcares.AnimalCare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ac, ok := r.byID[id]
	if !ok {
		return animalcares.AnimalCare{}, apperr.NotFound("Animal care with id %d not found", id)
	}
	return ac, nil
}

func (r *animalCareRepo) FirstByAnimalID(ctx context.Context, animalID int64) (animalcares.AnimalCare, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if animalID != 0 {
		if matches := r.filtered(animalID); len(matches) > 0 {
			return matches[0], nil
		}
	}
	return animalcares.AnimalCare{}, apperr.NotFound("Animal care for animal id %d not found", animalID)
}

func (r *animalCareRepo) Create(ctx context.Context, ac animalcares.AnimalCare) (animalcares.AnimalCare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ac.ID = nextID(r.byID)
	r.byID[ac.ID] = ac
	return ac, nil
}

func (r *animalCareRepo) Update(ctx context.Context, id int64, p animalcares.Patch) (animalcares.AnimalCare, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ac, ok := r.byID[id]
	if !ok {
		return animalcares.AnimalCare{}, apperr.NotFound("Animal care with id %d not found", id)
	}
	ac = p.Apply(ac)
	r.byID[id] = ac
	return ac, nil
}

func (r *animalCareRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Animal care with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}
