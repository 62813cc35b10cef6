package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"training-pets/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/analytics/summary", summaryHandler(svc))
}

// summaryHandler godoc
// @Summary Resumen de entrenamiento
// @Description Tareas totales y completadas, más tasa de éxito sobre los ProgressLog (null si no hay registros). Escaneo completo en cada llamada.
// @Tags analytics
// @Produce json
// @Param dog_id query string false "Limitar el resumen a un perro"
// @Success 200 {object} Summary
// @Router /analytics/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summarize(r.Context(), r.URL.Query().Get("dog_id"))
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, sum)
	}
}
