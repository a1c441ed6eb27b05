package cares

import (
	"context"
	"testing"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/patch"
)

type testRepo struct {
	byID   map[int64]Care
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Care{}, nextID: 1}
}

func (r *testRepo) List(ctx context.Context) ([]Care, error) {
	out := make([]Care, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Care, error) {
	c, ok := r.byID[id]
	if !ok {
		return Care{}, apperr.NotFound("Care with id %d not found", id)
	}
	return c, nil
}

func (r *testRepo) Create(ctx context.Context, c Care) (Care, error) {
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, p Patch) (Care, error) {
	c, ok := r.byID[id]
	if !ok {
		return Care{}, apperr.NotFound("Care with id %d not found", id)
	}
	c = p.Apply(c)
	r.byID[id] = c
	return c, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Care with id %d not found", id)
	}
	delete(r.byID, id)
	return nil
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Create(context.Background(), CreateInput{TypeOfCare: " ", Frequency: "daily"})
	if !apperr.IsValidation(err) || err.Error() != "Type of care is required and cannot be empty" {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{TypeOfCare: "Feeding", Frequency: ""})
	if !apperr.IsValidation(err) || err.Error() != "Frequency is required and cannot be empty" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CreateThenGet(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	desc := "twice a day"

	c, err := svc.Create(context.Background(), CreateInput{TypeOfCare: "Feeding", Frequency: "daily", Description: &desc})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TypeOfCare != "Feeding" || got.Frequency != "daily" || got.Description == nil || *got.Description != desc {
		t.Fatalf("unexpected care: %+v", got)
	}
}

func TestService_Update_Partial(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	desc := "bath"
	c, _ := svc.Create(context.Background(), CreateInput{TypeOfCare: "Cleaning", Frequency: "weekly", Description: &desc})

	got, err := svc.Update(context.Background(), c.ID, UpdateInput{Frequency: patch.Set("monthly")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Frequency != "monthly" || got.TypeOfCare != "Cleaning" || *got.Description != "bath" {
		t.Fatalf("unexpected care: %+v", got)
	}

	got, err = svc.Update(context.Background(), c.ID, UpdateInput{Description: patch.Null[string]()})
	if err != nil || got.Description != nil {
		t.Fatalf("expected cleared description, got %+v err=%v", got, err)
	}

	if _, err := svc.Update(context.Background(), c.ID, UpdateInput{TypeOfCare: patch.Set("")}); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 42, UpdateInput{Frequency: patch.Set("daily")}); !apperr.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	c, _ := svc.Create(context.Background(), CreateInput{TypeOfCare: "Vet", Frequency: "yearly"})

	if err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), c.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), c.ID); !apperr.IsNotFound(err) {
		t.Fatalf("get after delete: expected not found, got %v", err)
	}
}
