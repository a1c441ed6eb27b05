package animalcares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/httpx"
	"zoo-inventory/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service, rs apperr.Responder) {
	r.Route("/animal-cares", func(ar chi.Router) {
		ar.Get("/list", listHandler(svc, rs))
		ar.Get("/by-id/{id}", getHandler(svc, rs))
		ar.Get("/by-animal/by-id/{id}", getByAnimalHandler(svc, rs))
		ar.Get("/by-animal/list/{id}", listByAnimalHandler(svc, rs))
		ar.Post("/add", createHandler(svc, rs))
		ar.Put("/update/{id}", updateHandler(svc, rs))
		ar.Delete("/delete/{id}", deleteHandler(svc, rs))
	})
}

type createAnimalCareRequest struct {
	DateOfCare *string `json:"date_of_care"`
	CareID     int64   `json:"fk_cares_cares_id"`
	AnimalID   int64   `json:"fk_animal_animal_id"`
}

type updateAnimalCareRequest struct {
	DateOfCare *string `json:"date_of_care"`
	CareID     *int64  `json:"fk_cares_cares_id"`
	AnimalID   *int64  `json:"fk_animal_animal_id"`
}

type animalCareResponse struct {
	ID         int64       `json:"animal_care_id"`
	DateOfCare *dates.Date `json:"date_of_care" swaggertype:"string" format:"date"`
	CareID     int64       `json:"fk_cares_cares_id"`
	AnimalID   int64       `json:"fk_animal_animal_id"`
}

// listHandler godoc
// @Summary Listar relaciones animal-cuidado
// @Tags animal-cares
// @Produce json
// @Success 200 {array} animalCareResponse
// @Router /animal-cares/list [get]
func listHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponses(items))
	}
}

// getHandler godoc
// @Summary Obtener relación por ID
// @Tags animal-cares
// @Produce json
// @Param id path int true "ID de la relación"
// @Success 200 {object} animalCareResponse
// @Failure 404 {string} string "Animal care with id N not found"
// @Router /animal-cares/by-id/{id} [get]
func getHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		ac, err := svc.GetByID(r.Context(), id)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(ac))
	}
}

// getByAnimalHandler godoc
// @Summary Primera relación de un animal
// @Description Devuelve solo la relación de menor ID aunque existan varias. Ver /animal-cares/by-animal/list/{id}.
// @Tags animal-cares
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} animalCareResponse
// @Failure 404 {string} string "Animal care for animal id N not found"
// @Router /animal-cares/by-animal/by-id/{id} [get]
func getByAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		ac, err := svc.GetByAnimalID(r.Context(), id)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(ac))
	}
}

// listByAnimalHandler godoc
// @Summary Todas las relaciones de un animal
// @Tags animal-cares
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {array} animalCareResponse
// @Router /animal-cares/by-animal/list/{id} [get]
func listByAnimalHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		items, err := svc.ListByAnimalID(r.Context(), id)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponses(items))
	}
}

// createHandler godoc
// @Summary Registrar cuidado para un animal
// @Tags animal-cares
// @Accept json
// @Produce json
// @Param payload body createAnimalCareRequest true "Relación"
// @Success 201 {object} animalCareResponse
// @Failure 400 {string} string "invalid json"
// @Router /animal-cares/add [post]
func createHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalCareRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			rs.Write(w, r, err)
			return
		}
		ac, err := svc.Create(r.Context(), CreateInput{
			DateOfCare: req.DateOfCare,
			CareID:     req.CareID,
			AnimalID:   req.AnimalID,
		})
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(ac))
	}
}

// updateHandler godoc
// @Summary Actualizar relación (parcial)
// @Tags animal-cares
// @Accept json
// @Produce json
// @Param id path int true "ID de la relación"
// @Param payload body updateAnimalCareRequest true "Campos a modificar"
// @Success 200 {object} animalCareResponse
// @Failure 404 {string} string "Animal care with id N not found"
// @Router /animal-cares/update/{id} [put]
func updateHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		in, err := decodeUpdate(r)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		ac, err := svc.Update(r.Context(), id, in)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(ac))
	}
}

// deleteHandler godoc
// @Summary Borrar relación
// @Tags animal-cares
// @Param id path int true "ID de la relación"
// @Success 204
// @Failure 404 {string} string "Animal care with id N not found"
// @Router /animal-cares/delete/{id} [delete]
func deleteHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
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

func decodeUpdate(r *http.Request) (UpdateInput, error) {
	raw, err := patch.Decode(r.Body)
	if err != nil {
		return UpdateInput{}, apperr.Validation(err.Error())
	}

	var in UpdateInput
	if in.DateOfCare, err = patch.Get[string](raw, "date_of_care"); err != nil {
		return UpdateInput{}, apperr.Validation(err.Error())
	}
	if in.CareID, err = patch.Get[int64](raw, "fk_cares_cares_id"); err != nil {
		return UpdateInput{}, apperr.Validation(err.Error())
	}
	if in.AnimalID, err = patch.Get[int64](raw, "fk_animal_animal_id"); err != nil {
		return UpdateInput{}, apperr.Validation(err.Error())
	}
	return in, nil
}

func toResponse(ac AnimalCare) animalCareResponse {
	return animalCareResponse{
		ID:         ac.ID,
		DateOfCare: ac.DateOfCare,
		CareID:     ac.CareID,
		AnimalID:   ac.AnimalID,
	}
}

func toResponses(items []AnimalCare) []animalCareResponse {
	out := make([]animalCareResponse, 0, len(items))
	for _, ac := range items {
		out = append(out, toResponse(ac))
	}
	return out
}
