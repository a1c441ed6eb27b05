package animalcares

import (
	"context"
	"sort"
	"testing"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/patch"
)

type testRepo struct {
	byID map[int64]AnimalCare
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]AnimalCare{}}
}

func (r *testRepo) sorted() []AnimalCare {
	out := make([]AnimalCare, 0, len(r.byID))
	for _, ac := range r.byID {
		out = append(out, ac)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *testRepo) List(ctx context.Context) ([]AnimalCare, error) {
	return r.sorted(), nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (AnimalCare, error) {
	ac, ok := r.byID[id]
	if !ok {
		return AnimalCare{}, apperr.NotFound("Animal care with id %d not found", id)
	}
	return ac, nil
}

func (r *testRepo) FirstByAnimalID(ctx context.Context, animalID int64) (AnimalCare, error) {
	for _, ac := range r.sorted() {
		if ac.AnimalID == animalID {
			return ac, nil
		}
	}
	return AnimalCare{}, apperr.NotFound("Animal care for animal id %d not found", animalID)
}

func (r *testRepo) ListByAnimalID(ctx context.Context, animalID int64) ([]AnimalCare, error) {
	out := make([]AnimalCare, 0)
	for _, ac := range r.sorted() {
		if ac.AnimalID == animalID {
			out = append(out, ac)
		}
	}
	return out, nil
}

func (r *testRepo) Create(ctx context.Context, ac AnimalCare) (AnimalCare, error) {
	ac.ID = int64(len(r.byID)) + 1
	r.byID[ac.ID] = ac
	return ac, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, p Patch) (AnimalCare, error) {
	ac, ok := r.byID[id]
	if !ok {
		return AnimalCare{}, apperr.NotFound("Animal care with id %d not found", id)
	}
	ac = p.Apply(ac)
	r.byID[id] = ac
	return ac, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Animal care with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestService_Create_AcceptsTimestampDate(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})

	ac, err := svc.Create(context.Background(), CreateInput{
		DateOfCare: strPtr("2024-05-10T14:22:01.123Z"),
		CareID:     3,
		AnimalID:   7,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ac.DateOfCare == nil || ac.DateOfCare.String() != "2024-05-10" {
		t.Fatalf("expected 2024-05-10, got %v", ac.DateOfCare)
	}
	if ac.CareID != 3 || ac.AnimalID != 7 {
		t.Fatalf("unexpected fks: %+v", ac)
	}
}

func TestService_Create_DoesNotValidateForeignKeys(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})

	if _, err := svc.Create(context.Background(), CreateInput{CareID: 999, AnimalID: 999}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_GetByAnimalID_ReturnsFirstOnly(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})
	ctx := context.Background()

	first, _ := svc.Create(ctx, CreateInput{CareID: 1, AnimalID: 5, DateOfCare: strPtr("01/03/2024")})
	_, _ = svc.Create(ctx, CreateInput{CareID: 2, AnimalID: 6})
	_, _ = svc.Create(ctx, CreateInput{CareID: 2, AnimalID: 5})

	got, err := svc.GetByAnimalID(ctx, 5)
	if err != nil {
		t.Fatalf("get by animal: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected first relation %d, got %d", first.ID, got.ID)
	}

	all, _ := svc.ListByAnimalID(ctx, 5)
	if len(all) != 2 {
		t.Fatalf("expected 2 relations for animal 5, got %d", len(all))
	}

	if _, err := svc.GetByAnimalID(ctx, 404); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_Update(t *testing.T) {
	svc := NewService(newTestRepo(), Options{Dates: dates.Policy{Strict: true}})
	ctx := context.Background()
	ac, _ := svc.Create(ctx, CreateInput{CareID: 1, AnimalID: 5, DateOfCare: strPtr("2024-03-01")})

	got, err := svc.Update(ctx, ac.ID, UpdateInput{CareID: patch.Set[int64](4)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CareID != 4 || got.AnimalID != 5 || got.DateOfCare.String() != "2024-03-01" {
		t.Fatalf("unexpected relation: %+v", got)
	}

	if _, err := svc.Update(ctx, ac.ID, UpdateInput{DateOfCare: patch.Set("32/01/2024")}); !apperr.IsValidation(err) {
		t.Fatalf("strict date: expected validation error, got %v", err)
	}
	if _, err := svc.Update(ctx, ac.ID, UpdateInput{AnimalID: patch.Null[int64]()}); !apperr.IsValidation(err) {
		t.Fatalf("null fk: expected validation error, got %v", err)
	}

	got, err = svc.Update(ctx, ac.ID, UpdateInput{DateOfCare: patch.Null[string]()})
	if err != nil || got.DateOfCare != nil {
		t.Fatalf("expected cleared date, got %+v err=%v", got, err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})
	ctx := context.Background()
	ac, _ := svc.Create(ctx, CreateInput{CareID: 1, AnimalID: 1})

	if err := svc.Delete(ctx, ac.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, ac.ID); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
