package dogs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"training-pets/internal/platform/schema"
	"training-pets/internal/platform/web"
	"training-pets/internal/ports/store"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc))
	})
}

// createDogHandler godoc
// @Summary Registrar un perro
// @Description Crea el perfil de un perro. `name` es obligatorio; `age_months` y `weight_kg` deben ser >= 0.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body Dog true "Perfil del perro"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "invalid json / validación por campo"
// @Failure 500 {object} map[string]string "database not available"
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d Dog
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := schema.Check(d); fields != nil {
			web.WriteValidationError(w, fields)
			return
		}

		id, err := svc.Create(r.Context(), d)
		if err != nil {
			if errors.Is(err, store.ErrUnavailable) {
				web.WriteError(w, http.StatusInternalServerError, "database not available")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// listDogsHandler godoc
// @Summary Listar perros
// @Tags dogs
// @Produce json
// @Param limit query int false "Máximo de registros (1-500). Por defecto 100"
// @Success 200 {object} map[string]any
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := web.ParseLimit(r, defaultLimit, maxLimit)

		items, err := svc.List(r.Context(), limit)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}
