// Package httpx junta los helpers HTTP que antes estaban duplicados en cada módulo
// (writeJSON y compañía). Con animals, cares y animal-cares ya tocaba extraerlos.
package httpx

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"zoo-inventory/internal/platform/apperr"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// DecodeJSON decodifica el cuerpo en dst. Un cuerpo inválido es error de validación (400).
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(fmt.Sprintf("invalid json: %v", err))
	}
	return nil
}

// PathID lee un parámetro entero de la ruta (ej: {id}).
func PathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.Validation(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return id, nil
}
