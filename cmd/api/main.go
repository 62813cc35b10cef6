package main

import (
	"net/http"
	"os"

	"training-pets/internal/platform/logger"
	"training-pets/internal/router"
)

// @title training-pets API
// @version 0.1.0
// @description Backend de entrenamiento canino: perros, ejercicios, tareas, progreso y canal de coaching en vivo.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	// Sin Read/WriteTimeout: el canal websocket es una conexión larga y el
	// diseño no define deadlines sobre el store.
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
