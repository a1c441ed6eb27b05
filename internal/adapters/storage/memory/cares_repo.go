package memory

import (
	"context"
	"sort"
	"sync"

	"zoo-inventory/internal/domain/cares"
	"zoo-inventory/internal/platform/apperr"
)

type careRepo struct {
	mu   sync.RWMutex
	byID map[int64]cares.Care
}

func NewCareRepo() cares.Repository {
	return &careRepo{
		byID: make(map[int64]cares.Care),
	}
}

func (r *careRepo) List(ctx context.Context) ([]cares.Care, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cares.Care, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *careRepo) GetByID(ctx context.Context, id int64) (cares.Care, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cares.Care{}, apperr.NotFound("Care with id %d not found", id)
	}
	return c, nil
}

func (r *careRepo) Create(ctx context.Context, c cares.Care) (cares.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = nextID(r.byID)
	r.byID[c.ID] = c
	return c, nil
}

func (r *careRepo) Update(ctx context.Context, id int64, p cares.Patch) (cares.Care, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return cares.Care{}, apperr.NotFound("Care with id %d not found", id)
	}
	c = p.Apply(c)
	r.byID[id] = c
	return c, nil
}

func (r *careRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Care with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}
