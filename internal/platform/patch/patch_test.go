package patch

import (
	"strings"
	"testing"
)

func TestGet_TracksPresence(t *testing.T) {
	o, err := Decode(strings.NewReader(`{"name":"Leo","habitat":null,"age":3}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	name, err := Get[string](o, "name")
	if err != nil || !name.Present || name.Value == nil || *name.Value != "Leo" {
		t.Fatalf("name: %+v err=%v", name, err)
	}

	habitat, err := Get[string](o, "habitat")
	if err != nil || !habitat.IsNull() {
		t.Fatalf("habitat: expected explicit null, got %+v err=%v", habitat, err)
	}

	desc, err := Get[string](o, "description")
	if err != nil || desc.Present {
		t.Fatalf("description: expected absent, got %+v err=%v", desc, err)
	}

	age, err := Get[int64](o, "age")
	if err != nil || *age.Value != 3 {
		t.Fatalf("age: %+v err=%v", age, err)
	}
}

func TestGet_WrongType(t *testing.T) {
	o, err := Decode(strings.NewReader(`{"name":42}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := Get[string](o, "name"); err == nil {
		t.Fatalf("expected type error")
	}
}

func TestDecode_IgnoresUnknown_RejectsNonObject(t *testing.T) {
	o, err := Decode(strings.NewReader(`{"animal_id":3,"name":"Leo"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f, _ := Get[string](o, "name"); !f.Present || *f.Value != "Leo" {
		t.Fatalf("expected name to be decoded, got %+v", f)
	}
	if _, err := Decode(strings.NewReader(`null`)); err == nil {
		t.Fatalf("expected error for null body")
	}
	if _, err := Decode(strings.NewReader(`{`)); err == nil {
		t.Fatalf("expected error for broken json")
	}
}
