package progress

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
	r.Route("/progress", func(pr chi.Router) {
		pr.Post("/", logProgressHandler(svc))
		pr.Get("/", listProgressHandler(svc))
	})
}

// logProgressHandler godoc
// @Summary Registrar progreso de una tarea
// @Description Evento append-only. `task_id` y `success` son obligatorios; `score` debe estar en [0,1].
// @Tags progress
// @Accept json
// @Produce json
// @Param payload body ProgressLog true "Resultado del intento"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /progress [post]
func logProgressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p ProgressLog
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := schema.Check(p); fields != nil {
			web.WriteValidationError(w, fields)
			return
		}

		id, err := svc.Create(r.Context(), p)
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

// listProgressHandler godoc
// @Summary Listar progreso
// @Tags progress
// @Produce json
// @Param dog_id query string false "Filtrar por perro"
// @Param task_id query string false "Filtrar por tarea"
// @Param limit query int false "Máximo de registros (1-1000). Por defecto 200"
// @Success 200 {object} map[string]any
// @Router /progress [get]
func listProgressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := web.ParseLimit(r, defaultLimit, maxLimit)

		items, err := svc.List(r.Context(), ListFilter{
			DogID:  r.URL.Query().Get("dog_id"),
			TaskID: r.URL.Query().Get("task_id"),
		}, limit)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}
