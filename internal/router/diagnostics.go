package router

import (
	"net/http"
	"os"

	"training-pets/internal/platform/web"
	"training-pets/internal/ports/store"
)

// healthHandler godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "training-pets backend running"})
	}
}

// diagnosticsHandler godoc
// @Summary Diagnóstico de conectividad
// @Description Estado del store, presencia de env vars y primeras 10 colecciones. El formato (emojis incluidos) se conserva del backend original.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]any
// @Router /test [get]
func diagnosticsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      envStatus("DATABASE_URL"),
			"database_name":     envStatus("DATABASE_NAME"),
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if st.Status().State == store.StateConnected {
			resp["database"] = "✅ Connected & Working"
			resp["connection_status"] = "Connected"

			names, err := st.CollectionNames(r.Context())
			if err != nil {
				// Leniencia deliberada y exclusiva de este endpoint: el fallo a
				// mitad de consulta se reporta inline, no como 500.
				resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				resp["collections"] = names
			}
		}

		web.WriteJSON(w, http.StatusOK, resp)
	}
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate corta por runas, no por bytes: un mensaje de error con
// multibyte no debe salir con UTF-8 inválido en el diagnóstico.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
