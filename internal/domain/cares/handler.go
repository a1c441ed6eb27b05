package cares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/httpx"
	"zoo-inventory/internal/platform/patch"
)

func RegisterRoutes(r chi.Router, svc *Service, rs apperr.Responder) {
	r.Route("/cares", func(cr chi.Router) {
		cr.Get("/list", listCaresHandler(svc, rs))
		cr.Get("/by-id/{id}", getCareHandler(svc, rs))
		cr.Post("/add", createCareHandler(svc, rs))
		cr.Put("/update/{id}", updateCareHandler(svc, rs))
		cr.Delete("/delete/{id}", deleteCareHandler(svc, rs))
	})
}

type createCareRequest struct {
	TypeOfCare  string  `json:"type_of_care"`
	Frequency   string  `json:"frequency"`
	Description *string `json:"description"`
}

type updateCareRequest struct {
	TypeOfCare  *string `json:"type_of_care"`
	Frequency   *string `json:"frequency"`
	Description *string `json:"description"`
}

type careResponse struct {
	ID          int64   `json:"cares_id"`
	TypeOfCare  string  `json:"type_of_care"`
	Frequency   string  `json:"frequency"`
	Description *string `json:"description"`
}

// listCaresHandler godoc
// @Summary Listar cuidados
// @Tags cares
// @Produce json
// @Success 200 {array} careResponse
// @Failure 500 {string} string "internal error"
// @Router /cares/list [get]
func listCaresHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		out := make([]careResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCareResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getCareHandler godoc
// @Summary Obtener cuidado por ID
// @Tags cares
// @Produce json
// @Param id path int true "ID del cuidado"
// @Success 200 {object} careResponse
// @Failure 404 {string} string "Care with id N not found"
// @Router /cares/by-id/{id} [get]
func getCareHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCareResponse(c))
	}
}

// createCareHandler godoc
// @Summary Crear cuidado
// @Tags cares
// @Accept json
// @Produce json
// @Param payload body createCareRequest true "Datos del cuidado"
// @Success 201 {object} careResponse
// @Failure 400 {string} string "Type of care is required and cannot be empty"
// @Router /cares/add [post]
func createCareHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCareRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			rs.Write(w, r, err)
			return
		}
		c, err := svc.Create(r.Context(), CreateInput{
			TypeOfCare:  req.TypeOfCare,
			Frequency:   req.Frequency,
			Description: req.Description,
		})
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toCareResponse(c))
	}
}

// updateCareHandler godoc
// @Summary Actualizar cuidado (parcial)
// @Tags cares
// @Accept json
// @Produce json
// @Param id path int true "ID del cuidado"
// @Param payload body updateCareRequest true "Campos a modificar"
// @Success 200 {object} careResponse
// @Failure 400 {string} string "campo obligatorio vacío"
// @Failure 404 {string} string "Care with id N not found"
// @Router /cares/update/{id} [put]
func updateCareHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Write(w, r, err)
			return
		}

		raw, err := patch.Decode(r.Body)
		if err != nil {
			rs.Write(w, r, apperr.Validation(err.Error()))
			return
		}
		var in UpdateInput
		if in.TypeOfCare, err = patch.Get[string](raw, "type_of_care"); err == nil {
			if in.Frequency, err = patch.Get[string](raw, "frequency"); err == nil {
				in.Description, err = patch.Get[string](raw, "description")
			}
		}
		if err != nil {
			rs.Write(w, r, apperr.Validation(err.Error()))
			return
		}

		c, err := svc.Update(r.Context(), id, in)
		if err != nil {
			rs.Write(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toCareResponse(c))
	}
}

// deleteCareHandler godoc
// @Summary Borrar cuidado
// @Tags cares
// @Param id path int true "ID del cuidado"
// @Success 204
// @Failure 404 {string} string "Care with id N not found"
// @Router /cares/delete/{id} [delete]
func deleteCareHandler(svc *Service, rs apperr.Responder) http.HandlerFunc {
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

func toCareResponse(c Care) careResponse {
	return careResponse{
		ID:          c.ID,
		TypeOfCare:  c.TypeOfCare,
		Frequency:   c.Frequency,
		Description: c.Description,
	}
}
