package tasks

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"training-pets/internal/platform/schema"
	"training-pets/internal/platform/web"
	"training-pets/internal/ports/store"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc))
		tr.Get("/", listTasksHandler(svc))

		tr.Patch("/{taskID}", updateTaskHandler(svc))
		tr.Post("/{taskID}/complete", completeTaskHandler(svc))
	})
}

// createTaskHandler godoc
// @Summary Agendar una tarea de entrenamiento
// @Description `title` es obligatorio. `status` por defecto "pending", `language` por defecto "en". Las referencias dog_id/exercise_id no se validan contra existencia.
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body Task true "Tarea"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /tasks [post]
func createTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t Task
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := schema.Check(t); fields != nil {
			web.WriteValidationError(w, fields)
			return
		}

		id, err := svc.Create(r.Context(), t)
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

// listTasksHandler godoc
// @Summary Listar tareas
// @Tags tasks
// @Produce json
// @Param dog_id query string false "Filtrar por perro"
// @Param status query string false "Filtrar por status exacto (ej: pending, completed)"
// @Param limit query int false "Máximo de registros (1-500). Por defecto 50"
// @Success 200 {object} map[string]any
// @Router /tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := web.ParseLimit(r, defaultLimit, maxLimit)

		items, err := svc.List(r.Context(), ListFilter{
			DogID:  r.URL.Query().Get("dog_id"),
			Status: r.URL.Query().Get("status"),
		}, limit)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// taskUpdateRequest documenta el cuerpo del PATCH. La decodificación real va
// por raw map para distinguir "campo ausente" de "campo en null"; punteros
// nil acá equivalen a "no tocar".
type taskUpdateRequest struct {
	Title        *string   `json:"title"`
	Steps        *[]string `json:"steps"`
	Status       *string   `json:"status"`
	ScheduledFor *string   `json:"scheduled_for"` // RFC3339
	Language     *string   `json:"language"`
}

// updateTaskHandler godoc
// @Summary Actualización parcial de una tarea
// @Description PATCH sparse: solo los campos presentes y no-null se aplican (title, steps, status, scheduled_for, language). Siempre estampa updated_at.
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Param payload body taskUpdateRequest true "Subconjunto de campos a actualizar"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "invalid json / id mal formado / campo desconocido"
// @Failure 404 {object} map[string]string "task not found"
// @Failure 500 {object} map[string]string "database not available"
// @Router /tasks/{taskID} [patch]
func updateTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID := chi.URLParam(r, "taskID")
		if !store.ValidID(taskID) {
			web.WriteError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		// Decodificamos a raw map para distinguir "campo ausente" de
		// "campo en null": solo lo presente y no-null entra al descriptor.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		set, errMsg := buildUpdateSet(raw)
		if errMsg != "" {
			web.WriteError(w, http.StatusBadRequest, errMsg)
			return
		}

		if err := svc.Update(r.Context(), taskID, set); err != nil {
			writeTaskError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
	}
}

// completeTaskHandler godoc
// @Summary Marcar una tarea como completada
// @Description Fuerza status=completed sin importar el estado anterior. Idempotente.
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID de la tarea"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "id mal formado"
// @Failure 404 {object} map[string]string "task not found"
// @Failure 500 {object} map[string]string "database not available"
// @Router /tasks/{taskID}/complete [post]
func completeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID := chi.URLParam(r, "taskID")
		if !store.ValidID(taskID) {
			web.WriteError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		if err := svc.Complete(r.Context(), taskID); err != nil {
			writeTaskError(w, err)
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]bool{"completed": true})
	}
}

// buildUpdateSet arma el descriptor sparse del PATCH.
// Devuelve mensaje de error para 400 (campo desconocido o tipo inválido).
func buildUpdateSet(raw map[string]json.RawMessage) (store.Document, string) {
	set := store.Document{}

	for field, val := range raw {
		if string(val) == "null" {
			// null = "no tocar", no "limpiar". Ver nota en el modelo.
			continue
		}

		switch field {
		case "title", "status", "language":
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return nil, field + " must be a string"
			}
			set[field] = s
		case "steps":
			var steps []string
			if err := json.Unmarshal(val, &steps); err != nil {
				return nil, "steps must be a list of strings"
			}
			set[field] = steps
		case "scheduled_for":
			var t time.Time
			if err := json.Unmarshal(val, &t); err != nil {
				return nil, "scheduled_for must be RFC3339"
			}
			set[field] = t.UTC()
		default:
			return nil, "unknown field: " + field
		}
	}

	return set, ""
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		web.WriteError(w, http.StatusBadRequest, "invalid task id")
	case errors.Is(err, store.ErrNotFound):
		web.WriteError(w, http.StatusNotFound, "task not found")
	case errors.Is(err, store.ErrUnavailable):
		web.WriteError(w, http.StatusInternalServerError, "database not available")
	default:
		web.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
