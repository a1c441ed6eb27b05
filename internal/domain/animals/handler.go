package animals

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/httpx"
	"zoo-inventory/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service, rs apperr.Responder) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/list", listAnimalsHandler(svc, rs))
		ar.Get("/animals/{id}", getAnimalHandler(svc, rs))
		ar.Post("/add", createAnimalHandler(svc, rs))
		ar.Put("/update/{id}", updateAnimalHandler(svc, rs))

		// Soft delete
		ar.Post("/deactivate/{id}", deactivateAnimalHandler(svc, rs))
		// Hard delete
		ar.Delete("/delete/{id}", deleteAnimalHandler(svc, rs))
	})
}

// createAnimalRequest es el cuerpo para dar de alta un animal.
type createAnimalRequest struct {
	Name            string  `json:"name"`
	Specie          string  `json:"specie"`
	Habitat         *string `json:"habitat"`
	Description     *string `json:"description"`
	CountryOfOrigin *string `json:"country_of_origin"`
	DateOfBirth     *string `json:"date_of_birth"` // DD/MM/YYYY o YYYY-MM-DD
}

// updateAnimalRequest documenta el PUT parcial: solo se tocan los campos enviados; null limpia opcionales.
type updateAnimalRequest struct {
	Name            *string `json:"name"`
	Specie          *string `json:"specie"`
	Habitat         *string `json:"habitat"`
	Description     *string `json:"description"`
	CountryOfOrigin *string `json:"country_of_origin"`
	DateOfBirth     *string `json:"date_of_birth"`
}

// animalResponse es un animal tal como lo devuelve la API. Fechas siempre YYYY-MM-DD.
type animalResponse struct {
	ID              int64       `json:"animal_id"`
	Name            string      `json:"name"`
	Specie          string      `json:"specie"`
	Habitat         *string     `json:"habitat"`
	Description     *string     `json:"description"`
	CountryOfOrigin *string     `json:"country_of_origin"`
	DateOfBirth     *dates.Date `json:"date_of_birth" swaggertype:"string" format:"date"`
	IsActive        bool        `json:"is_active"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista animales ordenados por animal_id ascendente. Según configuración, solo los activos.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals/list [get]
func listAnimalsHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal por ID
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "Animal with id N not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/animals/{id} [get]
func getAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Crea un animal. name y specie son obligatorios. El ID se asigna como MAX(animal_id)+1.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / campos obligatorios vacíos"
// @Failure 500 {string} string "internal error"
// @Router /animals/add [post]
func createAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			rs.Write(w, r, err)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Name,
			Specie:          req.Specie,
			Habitat:         req.Habitat,
			Description:     req.Description,
			CountryOfOrigin: req.CountryOfOrigin,
			DateOfBirth:     req.DateOfBirth,
		})
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal (parcial)
// @Description Sobrescribe solo los campos enviados. null limpia un campo opcional. Animales inactivos devuelven 404.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / campos obligatorios vacíos"
// @Failure 404 {string} string "Animal with id N not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/update/{id} [put]
func updateAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		in, err := decodeUpdateAnimal(r)
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deactivateAnimalHandler godoc
// @Summary Dar de baja un animal (soft delete)
// @Description Marca is_active=false. Un animal ya inactivo devuelve 404.
// @Tags animals
// @Param id path int true "ID del animal"
// @Success 204
// @Failure 404 {string} string "Animal with id N not found or already inactive"
// @Failure 500 {string} string "internal error"
// @Router /animals/deactivate/{id} [post]
func deactivateAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		if err := svc.Deactivate(r.Context(), id); err != nil {
			rs.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal (hard delete)
// @Tags animals
// @Param id path int true "ID del animal"
// @Success 204
// @Failure 404 {string} string "Animal with id N not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/delete/{id} [delete]
func deleteAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			rs.Write(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeUpdateAnimal detecta presencia de cada campo (para distinguir "no enviado" de null).
func decodeUpdateAnimal(r *http.Request) (UpdateInput, error) {
	raw, err := patch.Decode(r.Body)
	if err != nil {
		return UpdateInput{}, apperr.Validation(err.Error())
	}

	var in UpdateInput
	fields := []struct {
		key string
		dst *patch.Field[string]
	}{
		{"name", &in.Name},
		{"specie", &in.Specie},
		{"habitat", &in.Habitat},
		{"description", &in.Description},
		{"country_of_origin", &in.CountryOfOrigin},
		{"date_of_birth", &in.DateOfBirth},
	}
	for _, f := range fields {
		v, err := patch.Get[string](raw, f.key)
		if err != nil {
			return UpdateInput{}, apperr.Validation(err.Error())
		}
		*f.dst = v
	}
	return in, nil
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:              a.ID,
		Name:            a.Name,
		Specie:          a.Specie,
		Habitat:         a.Habitat,
		Description:     a.Description,
		CountryOfOrigin: a.CountryOfOrigin,
		DateOfBirth:     a.DateOfBirth,
		IsActive:        a.IsActive,
	}
}
