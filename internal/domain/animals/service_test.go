package animals

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/patch"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[int64]Animal
	creates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}}
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, apperr.NotFound("Animal with id %d not found", id)
	}
	return a, nil
}

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	r.creates++
	var max int64
	for id := range r.byID {
		if id > max {
			max = id
		}
	}
	a.ID = max + 1
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, p Patch) (Animal, error) {
	a, ok := r.byID[id]
	if !ok || !a.IsActive {
		return Animal{}, apperr.NotFound("Animal with id %d not found", id)
	}
	a = p.Apply(a)
	r.byID[id] = a
	return a, nil
}

func (r *testRepo) Deactivate(ctx context.Context, id int64) error {
	a, ok := r.byID[id]
	if !ok || !a.IsActive {
		return apperr.NotFound("Animal with id %d not found or already inactive", id)
	}
	a.IsActive = false
	r.byID[id] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Animal with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesDMYDate(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})

	a, err := svc.Create(context.Background(), CreateInput{
		Name:        "Leo",
		Specie:      "Lion",
		Habitat:     strPtr("Savanna"),
		DateOfBirth: strPtr("01/02/2020"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("expected id 1, got %d", a.ID)
	}
	if !a.IsActive {
		t.Fatalf("new animals must be active")
	}
	if a.DateOfBirth == nil || a.DateOfBirth.String() != "2020-02-01" {
		t.Fatalf("expected 2020-02-01, got %v", a.DateOfBirth)
	}
}

func TestService_Create_RequiresNameAndSpecie(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, Options{})

	cases := []struct {
		name string
		in   CreateInput
		msg  string
	}{
		{"empty name", CreateInput{Name: "", Specie: "Lion"}, "Name is required and cannot be empty"},
		{"blank name", CreateInput{Name: "   ", Specie: "Lion"}, "Name is required and cannot be empty"},
		{"empty specie", CreateInput{Name: "Leo", Specie: ""}, "Specie is required and cannot be empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, err.Error())
			}
		})
	}
	if repo.creates != 0 {
		t.Fatalf("repo must not be touched on validation errors, got %d creates", repo.creates)
	}
}

func TestService_Create_InvalidDate_LenientStoresNull(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})

	a, err := svc.Create(context.Background(), CreateInput{
		Name:        "Leo",
		Specie:      "Lion",
		DateOfBirth: strPtr("not-a-date"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.DateOfBirth != nil {
		t.Fatalf("expected nil date, got %v", a.DateOfBirth)
	}
}

func TestService_Create_InvalidDate_StrictRejects(t *testing.T) {
	svc := NewService(newTestRepo(), Options{Dates: dates.Policy{Strict: true}})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:        "Leo",
		Specie:      "Lion",
		DateOfBirth: strPtr("31/02/2020"),
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "date_of_birth:") {
		t.Fatalf("expected date_of_birth error, got %q", err.Error())
	}
}

func TestService_Update_OnlyTouchesPresentFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, Options{})

	orig, err := svc.Create(context.Background(), CreateInput{
		Name:            "Leo",
		Specie:          "Lion",
		Habitat:         strPtr("Savanna"),
		Description:     strPtr("big cat"),
		CountryOfOrigin: strPtr("Kenya"),
		DateOfBirth:     strPtr("2020-02-01"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(context.Background(), orig.ID, UpdateInput{
		Habitat: patch.Set("Enclosure B"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if *got.Habitat != "Enclosure B" {
		t.Fatalf("habitat not updated: %v", *got.Habitat)
	}
	if got.Name != "Leo" || got.Specie != "Lion" || *got.Description != "big cat" || *got.CountryOfOrigin != "Kenya" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.DateOfBirth == nil || !got.DateOfBirth.Equal(dates.New(2020, time.February, 1)) {
		t.Fatalf("date changed: %v", got.DateOfBirth)
	}
}

func TestService_Update_NullClearsOptional_RejectsRequired(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, Options{})

	orig, _ := svc.Create(context.Background(), CreateInput{
		Name:        "Leo",
		Specie:      "Lion",
		Habitat:     strPtr("Savanna"),
		DateOfBirth: strPtr("2020-02-01"),
	})

	got, err := svc.Update(context.Background(), orig.ID, UpdateInput{
		Habitat:     patch.Null[string](),
		DateOfBirth: patch.Null[string](),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Habitat != nil || got.DateOfBirth != nil {
		t.Fatalf("expected cleared fields, got habitat=%v dob=%v", got.Habitat, got.DateOfBirth)
	}

	_, err = svc.Update(context.Background(), orig.ID, UpdateInput{Name: patch.Null[string]()})
	if !apperr.IsValidation(err) {
		t.Fatalf("null name: expected validation error, got %v", err)
	}
	_, err = svc.Update(context.Background(), orig.ID, UpdateInput{Specie: patch.Set("  ")})
	if !apperr.IsValidation(err) {
		t.Fatalf("blank specie: expected validation error, got %v", err)
	}
}

func TestService_Update_UnparseableDate_LenientKeepsStored(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})
	orig, _ := svc.Create(context.Background(), CreateInput{
		Name: "Leo", Specie: "Lion", DateOfBirth: strPtr("2020-02-01"),
	})

	got, err := svc.Update(context.Background(), orig.ID, UpdateInput{DateOfBirth: patch.Set("garbage")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DateOfBirth == nil || got.DateOfBirth.String() != "2020-02-01" {
		t.Fatalf("expected stored date kept, got %v", got.DateOfBirth)
	}
}

func TestService_Deactivate_SecondCallNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), Options{ListActiveOnly: true})
	a, _ := svc.Create(context.Background(), CreateInput{Name: "Leo", Specie: "Lion"})

	if err := svc.Deactivate(context.Background(), a.ID); err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	if err := svc.Deactivate(context.Background(), a.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second deactivate: expected not found, got %v", err)
	}

	// sigue existiendo, pero no en el listado de activos
	got, err := svc.GetByID(context.Background(), a.ID)
	if err != nil || got.IsActive {
		t.Fatalf("expected inactive animal, got %+v err=%v", got, err)
	}
	list, _ := svc.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("expected empty active list, got %d", len(list))
	}

	if _, err := svc.Update(context.Background(), a.ID, UpdateInput{Name: patch.Set("Leon")}); !apperr.IsNotFound(err) {
		t.Fatalf("update inactive: expected not found, got %v", err)
	}
}

func TestService_List_AllWhenActiveOnlyDisabled(t *testing.T) {
	svc := NewService(newTestRepo(), Options{ListActiveOnly: false})
	a, _ := svc.Create(context.Background(), CreateInput{Name: "Leo", Specie: "Lion"})
	_, _ = svc.Create(context.Background(), CreateInput{Name: "Dumbo", Specie: "Elephant"})
	_ = svc.Deactivate(context.Background(), a.ID)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected both animals ordered by id, got %+v", list)
	}
}

func TestService_Delete_Missing(t *testing.T) {
	svc := NewService(newTestRepo(), Options{})
	err := svc.Delete(context.Background(), 99)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Animal with id 99 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
