// Package patch decodifica cuerpos de actualización parcial detectando presencia de campos.
//
// Un campo puede venir:
//   - ausente:  no se toca la columna
//   - null:     se limpia la columna (solo campos opcionales)
//   - un valor: se sobrescribe
package patch

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Field guarda presencia + valor. Present && Value == nil significa null explícito.
type Field[T any] struct {
	Present bool
	Value   *T
}

func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: &v}
}

func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

func (f Field[T]) IsNull() bool { return f.Present && f.Value == nil }

// Object es el cuerpo crudo: cada key conserva su JSON original.
type Object map[string]json.RawMessage

// Decode lee un objeto JSON. Keys desconocidas se ignoran (el frontend manda el objeto completo).
func Decode(r io.Reader) (Object, error) {
	var raw Object
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid json: body must be an object")
	}
	return raw, nil
}

// Get decodifica la key si vino en el cuerpo.
func Get[T any](o Object, key string) (Field[T], error) {
	v, exists := o[key]
	if !exists {
		return Field[T]{}, nil
	}
	if strings.TrimSpace(string(v)) == "null" {
		return Null[T](), nil
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return Field[T]{}, fmt.Errorf("field %q: %w", key, err)
	}
	return Set(out), nil
}
