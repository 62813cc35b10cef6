package web

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Helpers HTTP comunes a todos los módulos de dominio.
// Con dos módulos el writeJSON vivía duplicado por paquete; con cinco
// ya conviene el helper compartido.

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde `{"error": msg}` con el status dado.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// WriteValidationError responde 400 con detalle por campo.
func WriteValidationError(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// ParseLimit lee ?limit= con default y tope por endpoint.
// Valores inválidos o fuera de rango caen al default (no son error).
func ParseLimit(r *http.Request, def, max int) int64 {
	limit := def
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= max {
			limit = n
		}
	}
	return int64(limit)
}
