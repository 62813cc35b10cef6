package live

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"training-pets/internal/platform/logger"
	"training-pets/internal/platform/schema"
	"training-pets/internal/platform/web"
	"training-pets/internal/ports/store"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

var upgrader = websocket.Upgrader{
	// El backend original acepta cualquier origen (CORS abierto).
	CheckOrigin: func(r *http.Request) bool { return true },
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/ws/live", channelHandler(log))

	r.Route("/live/sessions", func(lr chi.Router) {
		lr.Post("/", createSessionHandler(svc))
		lr.Get("/", listSessionsHandler(svc))
	})
}

// welcomeFrame es el primer frame tras conectar, siempre.
type welcomeFrame struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type echoFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// channelHandler godoc
// @Summary Canal websocket de coaching en vivo
// @Description Dos estados: conectado y desconectado. Al conectar envía un frame welcome; después devuelve un frame echo por cada mensaje de texto. Sin estado de sesión persistido.
// @Tags live
// @Router /ws/live [get]
func channelHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("websocket upgrade failed", map[string]any{"error": err.Error()})
			return
		}
		defer ws.Close()

		sessionID := uuid.NewString()
		log.Info("live client connected", map[string]any{"session_id": sessionID})

		if err := ws.WriteJSON(welcomeFrame{
			Type:      "welcome",
			Message:   "Connected to training-pets live coach",
			SessionID: sessionID,
		}); err != nil {
			return
		}

		// Loop secuencial: un mensaje recibido, una respuesta. La desconexión
		// del cliente corta el loop sin propagar error (no hay nada que limpiar).
		for {
			_, msg, err := ws.ReadMessage()
			if err != nil {
				log.Info("live client disconnected", map[string]any{"session_id": sessionID})
				return
			}

			if err := ws.WriteJSON(echoFrame{Type: "echo", Text: string(msg)}); err != nil {
				return
			}
		}
	}
}

// createSessionHandler godoc
// @Summary Registrar una sesión en vivo
// @Description `status` por defecto "idle". Las referencias dog_id/task_id no se validan contra existencia.
// @Tags live
// @Accept json
// @Produce json
// @Param payload body LiveSession true "Sesión"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /live/sessions [post]
func createSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ls LiveSession
		if err := json.NewDecoder(r.Body).Decode(&ls); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if fields := schema.Check(ls); fields != nil {
			web.WriteValidationError(w, fields)
			return
		}

		id, err := svc.Create(r.Context(), ls)
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

// listSessionsHandler godoc
// @Summary Listar sesiones en vivo
// @Tags live
// @Produce json
// @Param dog_id query string false "Filtrar por perro"
// @Param limit query int false "Máximo de registros (1-500). Por defecto 100"
// @Success 200 {object} map[string]any
// @Router /live/sessions [get]
func listSessionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := web.ParseLimit(r, defaultLimit, maxLimit)

		items, err := svc.List(r.Context(), r.URL.Query().Get("dog_id"), limit)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}
