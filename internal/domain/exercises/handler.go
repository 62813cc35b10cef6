package exercises

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
	defaultLimit = 200
	maxLimit     = 1000
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/exercises", func(er chi.Router) {
		er.Post("/", createExerciseHandler(svc))
		er.Get("/", listExercisesHandler(svc))
	})
}

// createExerciseHandler godoc
// @Summary Crear ejercicio de catálogo
// @Description `title` es obligatorio. `difficulty` por defecto "beginner"; `duration_min` por defecto 5.
// @Tags exercises
// @Accept json
// @Produce json
// @Param payload body Exercise true "Ejercicio"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /exercises [post]
func createExerciseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e Exercise
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := schema.Check(e); fields != nil {
			web.WriteValidationError(w, fields)
			return
		}

		id, err := svc.Create(r.Context(), e)
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

// listExercisesHandler godoc
// @Summary Listar ejercicios
// @Tags exercises
// @Produce json
// @Param limit query int false "Máximo de registros (1-1000). Por defecto 200"
// @Success 200 {object} map[string]any
// @Router /exercises [get]
func listExercisesHandler(svc *Service) http.HandlerFunc {
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
